package domain

import (
	"fmt"
	"time"
)

// ValidationError describes an inbound record that failed validation. Field
// names the offending field when known. It is always a client-side error and
// is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// LocationInput is the location object of an inbound reading. Pointer fields
// distinguish absent keys from zero values after JSON decoding.
type LocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ReadingInput is an untyped inbound detection event as delivered by the
// HTTP layer. It carries no guarantees; ParseReading turns it into a Reading
// or rejects it.
type ReadingInput struct {
	ReadingID    *string        `json:"reading_id"`
	Timestamp    *string        `json:"timestamp"`
	LicensePlate *string        `json:"license_plate"`
	CheckpointID *string        `json:"checkpoint_id"`
	Location     *LocationInput `json:"location"`
}

// Reading is a validated vehicle-detection event at a checkpoint. Readings
// are immutable once ingested and are never deleted.
type Reading struct {
	ReadingID    string
	Timestamp    time.Time
	LicensePlate string
	CheckpointID string
	Latitude     float64
	Longitude    float64
}

// TimeOfDay returns the reading's offset from midnight in the timestamp's
// own location, at nanosecond resolution.
func (r Reading) TimeOfDay() time.Duration {
	return time.Duration(r.Timestamp.Hour())*time.Hour +
		time.Duration(r.Timestamp.Minute())*time.Minute +
		time.Duration(r.Timestamp.Second())*time.Second +
		time.Duration(r.Timestamp.Nanosecond())
}

// ParseReading validates an inbound record and normalizes it into a Reading.
// The timestamp must be an RFC 3339 instant with an explicit zone; latitude
// and longitude must fall within their geographic ranges. It has no side
// effects.
func ParseReading(in ReadingInput) (Reading, error) {
	if in.ReadingID == nil || *in.ReadingID == "" {
		return Reading{}, &ValidationError{Field: "reading_id", Reason: "missing"}
	}
	if in.Timestamp == nil || *in.Timestamp == "" {
		return Reading{}, &ValidationError{Field: "timestamp", Reason: "missing"}
	}
	if in.LicensePlate == nil || *in.LicensePlate == "" {
		return Reading{}, &ValidationError{Field: "license_plate", Reason: "missing"}
	}
	if in.CheckpointID == nil || *in.CheckpointID == "" {
		return Reading{}, &ValidationError{Field: "checkpoint_id", Reason: "missing"}
	}
	if in.Location == nil {
		return Reading{}, &ValidationError{Field: "location", Reason: "missing"}
	}
	if in.Location.Latitude == nil {
		return Reading{}, &ValidationError{Field: "location.latitude", Reason: "missing"}
	}
	if in.Location.Longitude == nil {
		return Reading{}, &ValidationError{Field: "location.longitude", Reason: "missing"}
	}

	ts, err := time.Parse(time.RFC3339Nano, *in.Timestamp)
	if err != nil {
		return Reading{}, &ValidationError{Field: "timestamp", Reason: "not a valid RFC 3339 timestamp"}
	}

	lat, lon := *in.Location.Latitude, *in.Location.Longitude
	if lat < -90 || lat > 90 {
		return Reading{}, &ValidationError{Field: "location.latitude", Reason: "out of range [-90,90]"}
	}
	if lon < -180 || lon > 180 {
		return Reading{}, &ValidationError{Field: "location.longitude", Reason: "out of range [-180,180]"}
	}

	return Reading{
		ReadingID:    *in.ReadingID,
		Timestamp:    ts,
		LicensePlate: *in.LicensePlate,
		CheckpointID: *in.CheckpointID,
		Latitude:     lat,
		Longitude:    lon,
	}, nil
}
