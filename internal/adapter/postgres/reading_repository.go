package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"plate-ads/internal/core/domain"
	"plate-ads/internal/core/port"
)

// maxTxAttempts bounds the retry loop for serialization conflicts. Unique
// violations are never retried.
const maxTxAttempts = 3

// ReadingRepository implements port.ReadingRepository using pgxpool for
// PostgreSQL. The exposure-count check and insert run under a serializable
// transaction so concurrent submissions for the same plate and campaign
// cannot both observe a stale count.
type ReadingRepository struct {
	pool *pgxpool.Pool
}

// NewReadingRepository returns a new repository instance.
func NewReadingRepository(pool *pgxpool.Pool) *ReadingRepository {
	return &ReadingRepository{pool: pool}
}

// RecordReading stores the reading and at most one exposure in a single
// serializable transaction. Candidates are walked in the order given; the
// first campaign whose per-plate exposure count is below its cap is
// admitted. Serialization conflicts retry the whole unit of work up to
// maxTxAttempts times; a duplicate reading_id fails with
// port.ErrDuplicateReading and writes nothing.
func (r *ReadingRepository) RecordReading(ctx context.Context, reading domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
	var (
		exp *domain.Exposure
		err error
	)
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		exp, err = r.recordOnce(ctx, reading, candidates)
		if err == nil || !isSerializationFailure(err) {
			return exp, err
		}
	}
	return nil, err
}

func (r *ReadingRepository) recordOnce(ctx context.Context, reading domain.Reading, candidates []domain.Campaign) (_ *domain.Exposure, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO license_plate_readings
    (reading_id, timestamp, license_plate, checkpoint_id, latitude, longitude)
VALUES ($1,$2,$3,$4,$5,$6)`,
		reading.ReadingID, reading.Timestamp, reading.LicensePlate,
		reading.CheckpointID, reading.Latitude, reading.Longitude)
	if err != nil {
		if isUniqueViolation(err) {
			err = port.ErrDuplicateReading
		}
		return nil, err
	}

	for _, c := range candidates {
		var count int64
		err = tx.QueryRow(ctx, `SELECT count(*) FROM ad_exposures ae
JOIN license_plate_readings lpr ON ae.reading_id = lpr.reading_id
WHERE lpr.license_plate = $1 AND ae.campaign_id = $2`,
			reading.LicensePlate, c.ID).Scan(&count)
		if err != nil {
			return nil, err
		}
		if count >= int64(c.MaxExposures) {
			continue
		}
		exp := &domain.Exposure{
			ReadingID:  reading.ReadingID,
			CampaignID: c.ID,
			AdContent:  c.AdContent,
			Timestamp:  reading.Timestamp,
		}
		err = tx.QueryRow(ctx, `INSERT INTO ad_exposures
    (reading_id, campaign_id, ad_content, exposure_timestamp)
VALUES ($1,$2,$3,$4) RETURNING id`,
			exp.ReadingID, exp.CampaignID, exp.AdContent, exp.Timestamp).Scan(&exp.ID)
		if err != nil {
			return nil, err
		}
		return exp, nil
	}
	return nil, nil
}

// CountExposures returns the committed exposure count for the plate and
// campaign pair.
func (r *ReadingRepository) CountExposures(ctx context.Context, licensePlate, campaignID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ad_exposures ae
JOIN license_plate_readings lpr ON ae.reading_id = lpr.reading_id
WHERE lpr.license_plate = $1 AND ae.campaign_id = $2`,
		licensePlate, campaignID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetMetrics runs the three aggregate queries inside one repeatable-read,
// read-only transaction so the result sets come from a single snapshot.
func (r *ReadingRepository) GetMetrics(ctx context.Context, limit int) (_ *port.Metrics, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `SELECT checkpoint_id, count(*) AS total_readings
FROM license_plate_readings
GROUP BY checkpoint_id
ORDER BY checkpoint_id`)
	if err != nil {
		return nil, err
	}
	byCheckpoint, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CheckpointCount, error) {
		var c port.CheckpointCount
		err := row.Scan(&c.CheckpointID, &c.TotalReadings)
		return c, err
	})
	if err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `SELECT campaign_id, count(*) AS total_ads_shown
FROM ad_exposures
GROUP BY campaign_id
ORDER BY campaign_id`)
	if err != nil {
		return nil, err
	}
	byCampaign, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignCount, error) {
		var c port.CampaignCount
		err := row.Scan(&c.CampaignID, &c.TotalAdsShown)
		return c, err
	})
	if err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `SELECT
    ae.id,
    ae.campaign_id,
    ae.ad_content,
    ae.exposure_timestamp,
    lpr.reading_id,
    lpr.license_plate,
    lpr.checkpoint_id
FROM ad_exposures ae
JOIN license_plate_readings lpr ON ae.reading_id = lpr.reading_id
ORDER BY ae.exposure_timestamp DESC, ae.id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	recent, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.RecentExposure, error) {
		var e port.RecentExposure
		err := row.Scan(&e.ExposureID, &e.CampaignID, &e.AdContent,
			&e.Timestamp, &e.ReadingID, &e.LicensePlate, &e.CheckpointID)
		return e, err
	})
	if err != nil {
		return nil, err
	}

	return &port.Metrics{
		ReadingsByCheckpoint: byCheckpoint,
		AdsByCampaign:        byCampaign,
		RecentExposures:      recent,
	}, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isSerializationFailure reports whether err is a serialization failure or
// deadlock (SQLSTATE 40001/40P01), both safe to retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
