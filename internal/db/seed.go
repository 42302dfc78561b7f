package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"plate-ads/internal/core/domain"
)

// Seed inserts demo readings and exposures into the database. Exposures
// honour the per-plate campaign caps so seeded data satisfies the same
// invariants live traffic does.
func Seed(ctx context.Context, db *pgxpool.Pool, cat domain.Catalog) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	checkpoints := []string{"CHECK_01", "CHECK_02", "CHECK_03", "CHECK_04", "CHECK_05"}
	exposures := make(map[string]int)

	for i := 0; i < 200; i++ {
		readingID := uuid.NewString()
		plate := fmt.Sprintf("PLATE%03d", r.Intn(40)+1)
		checkpoint := checkpoints[r.Intn(len(checkpoints))]
		ts := time.Now().UTC().Add(-time.Duration(r.Intn(24*60)) * time.Minute)
		lat := -90 + r.Float64()*180
		lon := -180 + r.Float64()*360

		_, err := db.Exec(ctx, `INSERT INTO license_plate_readings
    (reading_id, timestamp, license_plate, checkpoint_id, latitude, longitude)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			readingID, ts, plate, checkpoint, lat, lon)
		if err != nil {
			return err
		}

		reading := domain.Reading{
			ReadingID:    readingID,
			Timestamp:    ts,
			LicensePlate: plate,
			CheckpointID: checkpoint,
		}
		for _, c := range cat.Candidates(checkpoint, reading.TimeOfDay()) {
			key := plate + "/" + c.ID
			if exposures[key] >= c.MaxExposures {
				continue
			}
			_, err = db.Exec(ctx, `INSERT INTO ad_exposures
    (reading_id, campaign_id, ad_content, exposure_timestamp)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
				readingID, c.ID, c.AdContent, ts)
			if err != nil {
				return err
			}
			exposures[key]++
			break
		}
	}
	return nil
}
