package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Istanbul time, used when the zone database is unavailable.
var trtLoc = time.FixedZone("TRT", 3*3600)

// LoadLocation resolves an IANA zone name, falling back to a fixed +03:00.
func LoadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return trtLoc
}

// ParseTripStart reads a YYYY-MM-DD date as midnight in loc.
func ParseTripStart(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = trtLoc
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return t, nil
}

// DefaultTripStart is midnight of the day after now, in loc.
func DefaultTripStart(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = trtLoc
	}
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day()+1, 0, 0, 0, 0, loc)
}

func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = trtLoc
	}
	return t.In(loc).Format(time.RFC3339)
}
