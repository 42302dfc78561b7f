package usecase

import (
	"context"
	"time"

	"plate-ads/internal/core/domain"
	"plate-ads/internal/core/port"
)

// defaultTimeout bounds each unit of work against the ledger. Aborted work
// surfaces as a transient failure; callers may retry because duplicate
// reading ids are rejected safely.
const defaultTimeout = 30 * time.Second

// ReadingUseCase implements the reading validation, campaign matching and
// metrics aggregation logic. The campaign catalog is an immutable value
// fixed at construction; all mutable state lives behind the repository.
type ReadingUseCase struct {
	repo    port.ReadingRepository
	catalog domain.Catalog
	timeout time.Duration
}

// NewReadingUseCase creates a new usecase over the given repository and
// campaign catalog.
func NewReadingUseCase(repo port.ReadingRepository, catalog domain.Catalog) *ReadingUseCase {
	return &ReadingUseCase{repo: repo, catalog: catalog, timeout: defaultTimeout}
}

// SubmitReading validates the inbound record, selects the campaigns whose
// locations and time windows admit it and delegates the atomic
// cap-check-and-record to the repository. Candidates reach the repository
// in ascending campaign id order, so a multi-campaign match resolves to
// the lowest id deterministically. A reading matching no campaign is a
// successful outcome with a nil AdServed.
func (u *ReadingUseCase) SubmitReading(ctx context.Context, in domain.ReadingInput) (*port.SubmitResult, error) {
	reading, err := domain.ParseReading(in)
	if err != nil {
		return nil, err
	}

	candidates := u.catalog.Candidates(reading.CheckpointID, reading.TimeOfDay())

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	exposure, err := u.repo.RecordReading(ctx, reading, candidates)
	if err != nil {
		return nil, err
	}

	result := &port.SubmitResult{ReadingID: reading.ReadingID, Processed: true}
	if exposure != nil {
		result.AdServed = &port.AdServed{
			CampaignID: exposure.CampaignID,
			AdContent:  exposure.AdContent,
		}
	}
	return result, nil
}

// QueryMetrics returns aggregate counts over stored readings and exposures
// plus the limit most recent exposures, read from a single snapshot.
func (u *ReadingUseCase) QueryMetrics(ctx context.Context, limit int) (*port.Metrics, error) {
	if limit <= 0 {
		return nil, &domain.ValidationError{Field: "limit", Reason: "must be a positive integer"}
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	metrics, err := u.repo.GetMetrics(ctx, limit)
	if err != nil {
		return nil, err
	}
	metrics.Metadata = port.MetricsMetadata{LimitApplied: limit}
	return metrics, nil
}
