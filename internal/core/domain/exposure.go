package domain

import "time"

// Exposure records that a campaign's ad was served in response to one
// reading. At most one exposure exists per reading; exposures are never
// updated or deleted.
type Exposure struct {
	ID         int64
	ReadingID  string
	CampaignID string
	AdContent  string
	Timestamp  time.Time
}
