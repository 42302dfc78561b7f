package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"plate-ads/internal/core/domain"
	"plate-ads/internal/core/port"
	"plate-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

func testCatalog(t *testing.T) domain.Catalog {
	t.Helper()
	w1, err := domain.ParseTimeWindow("08:00", "20:00")
	if err != nil {
		t.Fatal(err)
	}
	w2, err := domain.ParseTimeWindow("10:00", "22:00")
	if err != nil {
		t.Fatal(err)
	}
	cat, err := domain.NewCatalog([]domain.Campaign{
		{ID: "CAMP_001", Locations: []string{"CHECK_01", "CHECK_02"}, Window: w1, MaxExposures: 3, AdContent: "AD_001"},
		{ID: "CAMP_002", Locations: []string{"CHECK_03", "CHECK_04"}, Window: w2, MaxExposures: 5, AdContent: "AD_002"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func input(readingID, checkpoint, plate, ts string) domain.ReadingInput {
	return domain.ReadingInput{
		ReadingID:    strp(readingID),
		Timestamp:    strp(ts),
		LicensePlate: strp(plate),
		CheckpointID: strp(checkpoint),
		Location:     &domain.LocationInput{Latitude: f64p(40.0), Longitude: f64p(-3.7)},
	}
}

// TestSubmitReadingServesAd covers the happy path: a reading at an assigned
// checkpoint inside the window with no prior exposures gets the campaign ad.
func TestSubmitReadingServesAd(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		RunAndReturn(func(ctx context.Context, r domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
			if len(candidates) != 1 || candidates[0].ID != "CAMP_001" {
				t.Fatalf("unexpected candidates: %+v", candidates)
			}
			c := candidates[0]
			return &domain.Exposure{
				ID:         1,
				ReadingID:  r.ReadingID,
				CampaignID: c.ID,
				AdContent:  c.AdContent,
				Timestamp:  r.Timestamp,
			}, nil
		})

	svc := NewReadingUseCase(repo, testCatalog(t))

	res, err := svc.SubmitReading(context.Background(), input("READ123", "CHECK_01", "ABC123", "2024-05-01T14:30:00Z"))
	if err != nil {
		t.Fatalf("SubmitReading error: %v", err)
	}
	if res.ReadingID != "READ123" || !res.Processed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.AdServed == nil || res.AdServed.CampaignID != "CAMP_001" || res.AdServed.AdContent != "AD_001" {
		t.Fatalf("unexpected ad: %+v", res.AdServed)
	}
}

// TestSubmitReadingUnassignedCheckpoint: a checkpoint belonging to no
// campaign is still recorded but serves no ad.
func TestSubmitReadingUnassignedCheckpoint(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		RunAndReturn(func(ctx context.Context, r domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
			if len(candidates) != 0 {
				t.Fatalf("expected no candidates, got %+v", candidates)
			}
			return nil, nil
		})

	svc := NewReadingUseCase(repo, testCatalog(t))

	res, err := svc.SubmitReading(context.Background(), input("READ200", "CHECK_05", "ABC123", "2024-05-01T14:30:00Z"))
	if err != nil {
		t.Fatalf("SubmitReading error: %v", err)
	}
	if !res.Processed || res.AdServed != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestSubmitReadingOutsideWindow: right checkpoint, wrong time of day.
func TestSubmitReadingOutsideWindow(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		RunAndReturn(func(ctx context.Context, r domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
			if len(candidates) != 0 {
				t.Fatalf("expected no candidates, got %+v", candidates)
			}
			return nil, nil
		})

	svc := NewReadingUseCase(repo, testCatalog(t))

	res, err := svc.SubmitReading(context.Background(), input("READ201", "CHECK_01", "ABC123", "2024-05-01T07:59:59Z"))
	if err != nil {
		t.Fatalf("SubmitReading error: %v", err)
	}
	if res.AdServed != nil {
		t.Fatalf("no ad expected before the window opens, got %+v", res.AdServed)
	}
}

// TestSubmitReadingValidationFailure: malformed input never reaches the
// repository.
func TestSubmitReadingValidationFailure(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)
	svc := NewReadingUseCase(repo, testCatalog(t))

	in := input("READ202", "CHECK_01", "ABC123", "2024-05-01T14:30:00Z")
	in.Location = nil

	_, err := svc.SubmitReading(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestSubmitReadingDuplicate: a repeated reading_id surfaces the conflict
// unchanged.
func TestSubmitReadingDuplicate(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		Return(nil, port.ErrDuplicateReading)

	svc := NewReadingUseCase(repo, testCatalog(t))

	_, err := svc.SubmitReading(context.Background(), input("READ123", "CHECK_01", "ABC123", "2024-05-01T14:30:00Z"))
	if !errors.Is(err, port.ErrDuplicateReading) {
		t.Fatalf("expected ErrDuplicateReading, got %v", err)
	}
}

// TestExposureCapConcurrent submits many qualifying readings for one plate
// concurrently against a ledger that enforces the cap under a mutex. The
// number of served ads must never exceed the campaign cap.
func TestExposureCapConcurrent(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	var (
		mu        sync.Mutex
		exposures = map[string]int{}
	)

	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		RunAndReturn(func(ctx context.Context, r domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, c := range candidates {
				key := r.LicensePlate + "/" + c.ID
				if exposures[key] >= c.MaxExposures {
					continue
				}
				exposures[key]++
				return &domain.Exposure{ReadingID: r.ReadingID, CampaignID: c.ID, AdContent: c.AdContent, Timestamp: r.Timestamp}, nil
			}
			return nil, nil
		})

	svc := NewReadingUseCase(repo, testCatalog(t))

	var (
		wg     sync.WaitGroup
		served sync.Map
	)
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			id := "READ" + string(rune('A'+i))
			res, err := svc.SubmitReading(context.Background(), input(id, "CHECK_01", "ABC123", "2024-05-01T14:30:00Z"))
			if err != nil {
				t.Errorf("SubmitReading error: %v", err)
				return
			}
			if res.AdServed != nil {
				served.Store(id, struct{}{})
			}
		}(i)
	}
	wg.Wait()

	total := 0
	served.Range(func(_, _ any) bool { total++; return true })
	if total != 3 {
		t.Fatalf("exposure cap violated: %d ads served, want 3", total)
	}
}

// TestSubmitReadingDeterministicLowestID: with two overlapping campaigns the
// first candidate handed to the ledger is the lexicographically lowest id.
func TestSubmitReadingDeterministicLowestID(t *testing.T) {
	w, err := domain.ParseTimeWindow("00:00", "23:59")
	if err != nil {
		t.Fatal(err)
	}
	cat, err := domain.NewCatalog([]domain.Campaign{
		{ID: "CAMP_B", Locations: []string{"CHECK_01"}, Window: w, MaxExposures: 1, AdContent: "B"},
		{ID: "CAMP_A", Locations: []string{"CHECK_01"}, Window: w, MaxExposures: 1, AdContent: "A"},
	})
	if err != nil {
		t.Fatal(err)
	}

	repo := mocks.NewMockReadingRepository(t)
	repo.EXPECT().
		RecordReading(mock.Anything, mock.AnythingOfType("domain.Reading"), mock.AnythingOfType("[]domain.Campaign")).
		RunAndReturn(func(ctx context.Context, r domain.Reading, candidates []domain.Campaign) (*domain.Exposure, error) {
			if len(candidates) != 2 || candidates[0].ID != "CAMP_A" || candidates[1].ID != "CAMP_B" {
				t.Fatalf("candidates not in id order: %+v", candidates)
			}
			c := candidates[0]
			return &domain.Exposure{ReadingID: r.ReadingID, CampaignID: c.ID, AdContent: c.AdContent}, nil
		})

	svc := NewReadingUseCase(repo, cat)
	res, err := svc.SubmitReading(context.Background(), input("READ300", "CHECK_01", "XYZ789", "2024-05-01T14:30:00Z"))
	if err != nil {
		t.Fatalf("SubmitReading error: %v", err)
	}
	if res.AdServed == nil || res.AdServed.CampaignID != "CAMP_A" {
		t.Fatalf("expected CAMP_A to win, got %+v", res.AdServed)
	}
}

func TestQueryMetricsValidatesLimit(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)
	svc := NewReadingUseCase(repo, testCatalog(t))

	for _, limit := range []int{0, -1, -10} {
		_, err := svc.QueryMetrics(context.Background(), limit)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("limit %d: expected ValidationError, got %v", limit, err)
		}
	}
}

func TestQueryMetricsAppliesLimit(t *testing.T) {
	repo := mocks.NewMockReadingRepository(t)

	now := time.Now().UTC()
	repo.EXPECT().
		GetMetrics(mock.Anything, 2).
		Return(&port.Metrics{
			ReadingsByCheckpoint: []port.CheckpointCount{{CheckpointID: "CHECK_01", TotalReadings: 4}},
			AdsByCampaign:        []port.CampaignCount{{CampaignID: "CAMP_001", TotalAdsShown: 2}},
			RecentExposures: []port.RecentExposure{
				{ExposureID: 2, CampaignID: "CAMP_001", Timestamp: now},
				{ExposureID: 1, CampaignID: "CAMP_001", Timestamp: now.Add(-time.Minute)},
			},
		}, nil)

	svc := NewReadingUseCase(repo, testCatalog(t))

	m, err := svc.QueryMetrics(context.Background(), 2)
	if err != nil {
		t.Fatalf("QueryMetrics error: %v", err)
	}
	if m.Metadata.LimitApplied != 2 {
		t.Fatalf("limit_applied = %d, want 2", m.Metadata.LimitApplied)
	}
	if len(m.RecentExposures) != 2 {
		t.Fatalf("recent exposures = %d, want 2", len(m.RecentExposures))
	}
}
