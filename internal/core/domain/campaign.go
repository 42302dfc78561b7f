package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TimeWindow is a daily time window with an inclusive start and exclusive
// end, expressed as offsets from midnight. A window whose end is less than
// or equal to its start is interpreted as wrapping past midnight; equal
// endpoints therefore denote a full-day window.
type TimeWindow struct {
	Start time.Duration
	End   time.Duration
}

// ParseTimeWindow parses "HH:MM" start and end strings into a TimeWindow.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	s, err := parseClock(start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("start: %w", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("end: %w", err)
	}
	return TimeWindow{Start: s, End: e}, nil
}

func parseClock(s string) (time.Duration, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// Contains reports whether the time of day d falls inside the window.
func (w TimeWindow) Contains(d time.Duration) bool {
	if w.End <= w.Start {
		return d >= w.Start || d < w.End
	}
	return d >= w.Start && d < w.End
}

// Campaign is one advertising rule bundle: the checkpoints it covers, the
// daily time window it runs in, the per-plate exposure cap and the ad
// content served on a match. Campaigns are externally owned and read-only
// to this service.
type Campaign struct {
	ID           string
	Locations    []string
	Window       TimeWindow
	MaxExposures int
	AdContent    string
}

// Catalog is the immutable set of campaigns loaded at startup. Campaigns
// are kept sorted by id so that matching is deterministic: when a reading
// qualifies for more than one campaign, the lowest campaign id wins.
type Catalog struct {
	campaigns []Campaign
}

// NewCatalog validates the campaigns and builds a Catalog. Every campaign
// must have an id, at least one location, a positive exposure cap and ad
// content; duplicate ids are rejected.
func NewCatalog(campaigns []Campaign) (Catalog, error) {
	cs := slices.Clone(campaigns)
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		if c.ID == "" {
			return Catalog{}, fmt.Errorf("campaign with empty id")
		}
		if _, dup := seen[c.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate campaign id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		if len(c.Locations) == 0 {
			return Catalog{}, fmt.Errorf("campaign %s: no locations", c.ID)
		}
		if c.MaxExposures <= 0 {
			return Catalog{}, fmt.Errorf("campaign %s: max exposures must be positive", c.ID)
		}
		if c.AdContent == "" {
			return Catalog{}, fmt.Errorf("campaign %s: no ad content", c.ID)
		}
	}
	slices.SortFunc(cs, func(a, b Campaign) int {
		return strings.Compare(a.ID, b.ID)
	})
	return Catalog{campaigns: cs}, nil
}

// Candidates returns the campaigns covering the checkpoint whose time
// window contains the given time of day, in ascending campaign id order.
func (c Catalog) Candidates(checkpointID string, timeOfDay time.Duration) []Campaign {
	var out []Campaign
	for _, camp := range c.campaigns {
		if !slices.Contains(camp.Locations, checkpointID) {
			continue
		}
		if !camp.Window.Contains(timeOfDay) {
			continue
		}
		out = append(out, camp)
	}
	return out
}

// Campaigns returns all campaigns in ascending id order.
func (c Catalog) Campaigns() []Campaign {
	return slices.Clone(c.campaigns)
}
