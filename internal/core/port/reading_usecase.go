package port

import (
	"context"

	"plate-ads/internal/core/domain"
)

// ReadingUseCase defines the business operations exposed by the engine.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type ReadingUseCase interface {
	// SubmitReading validates the inbound record, matches it against the
	// campaign catalog and durably records the reading plus the exposure
	// when a campaign applies. A reading that matches no campaign is a
	// successful outcome with a nil AdServed. Malformed input fails with
	// *domain.ValidationError; a repeated reading_id fails with
	// ErrDuplicateReading.
	SubmitReading(ctx context.Context, in domain.ReadingInput) (*SubmitResult, error)

	// QueryMetrics returns aggregate counts and the limit most recent
	// exposures. A non-positive limit fails with *domain.ValidationError.
	QueryMetrics(ctx context.Context, limit int) (*Metrics, error)
}

// AdServed identifies the campaign ad returned for a matched reading.
type AdServed struct {
	CampaignID string `json:"campaign_id"`
	AdContent  string `json:"ad_content"`
}

// SubmitResult is the outcome of one reading submission. AdServed is nil
// when no campaign applied.
type SubmitResult struct {
	ReadingID string    `json:"reading_id"`
	Processed bool      `json:"processed"`
	AdServed  *AdServed `json:"ad_served"`
}
