package port

import (
	"context"
	"errors"
	"time"

	"plate-ads/internal/core/domain"
)

// ErrDuplicateReading is returned when a reading_id has already been
// ingested. The colliding call performs no writes.
var ErrDuplicateReading = errors.New("duplicate reading_id")

// ReadingRepository is the outbound port for the exposure ledger.
// Implementations must be concurrency-safe and keep the exposure-count
// check and insert atomic with respect to concurrent calls for the same
// (license_plate, campaign_id) pair.
type ReadingRepository interface {
	// RecordReading durably stores the reading and, walking candidates in
	// order, the exposure for the first campaign whose per-plate cap is not
	// yet reached. Reading and exposure are written in a single atomic unit;
	// the returned exposure is nil when no candidate is admitted. A repeated
	// reading_id fails with ErrDuplicateReading and writes nothing.
	RecordReading(ctx context.Context, reading domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error)
	// CountExposures returns the number of committed exposures for the
	// (license_plate, campaign_id) pair.
	CountExposures(ctx context.Context, licensePlate, campaignID string) (int64, error)
	// GetMetrics aggregates readings and exposures from one consistent
	// snapshot, returning at most limit recent exposures.
	GetMetrics(ctx context.Context, limit int) (*Metrics, error)
}

// CheckpointCount is the number of readings ingested at one checkpoint.
type CheckpointCount struct {
	CheckpointID  string `json:"checkpoint_id"`
	TotalReadings int64  `json:"total_readings"`
}

// CampaignCount is the number of ads served for one campaign.
type CampaignCount struct {
	CampaignID    string `json:"campaign_id"`
	TotalAdsShown int64  `json:"total_ads_shown"`
}

// RecentExposure is one recently served ad joined with its owning reading.
type RecentExposure struct {
	ExposureID   int64     `json:"exposure_id"`
	CampaignID   string    `json:"campaign_id"`
	AdContent    string    `json:"ad_content"`
	Timestamp    time.Time `json:"timestamp"`
	ReadingID    string    `json:"reading_id"`
	LicensePlate string    `json:"license_plate"`
	CheckpointID string    `json:"checkpoint_id"`
}

// MetricsMetadata echoes the validated query parameters.
type MetricsMetadata struct {
	LimitApplied int `json:"limit_applied"`
}

// Metrics is the aggregate view over stored readings and exposures. All
// three result sets reflect a single snapshot of the ledger.
type Metrics struct {
	ReadingsByCheckpoint []CheckpointCount `json:"readings_by_checkpoint"`
	AdsByCampaign        []CampaignCount   `json:"ads_by_campaign"`
	RecentExposures      []RecentExposure  `json:"recent_exposures"`
	Metadata             MetricsMetadata   `json:"metadata"`
}
