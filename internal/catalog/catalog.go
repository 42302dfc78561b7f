// Package catalog loads the campaign catalog the matcher runs against.
// Campaigns are externally owned; this service only reads them, once per
// process lifetime.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"plate-ads/internal/core/domain"
)

//go:embed default.json
var defaultFS embed.FS

type timeWindowRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type campaignRecord struct {
	CampaignID   string           `json:"campaign_id"`
	Locations    []string         `json:"locations"`
	TimeWindow   timeWindowRecord `json:"time_window"`
	MaxExposures int              `json:"max_exposures_per_plate"`
	AdContent    string           `json:"ad_content"`
}

// Load reads the campaign file at path and builds the catalog. An empty
// path falls back to the embedded default catalog.
func Load(path string) (domain.Catalog, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = defaultFS.ReadFile("default.json")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read campaign file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a JSON campaign list into a validated catalog.
func Parse(raw []byte) (domain.Catalog, error) {
	var records []campaignRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode campaign file: %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(records))
	for _, rec := range records {
		window, err := domain.ParseTimeWindow(rec.TimeWindow.Start, rec.TimeWindow.End)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("campaign %s: time window: %w", rec.CampaignID, err)
		}
		campaigns = append(campaigns, domain.Campaign{
			ID:           rec.CampaignID,
			Locations:    rec.Locations,
			Window:       window,
			MaxExposures: rec.MaxExposures,
			AdContent:    rec.AdContent,
		})
	}

	cat, err := domain.NewCatalog(campaigns)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("invalid campaign catalog: %w", err)
	}
	return cat, nil
}
