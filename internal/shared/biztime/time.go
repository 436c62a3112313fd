// Package biztime provides studio timezone helpers. Storage and transport
// are always UTC; the studio timezone is only used to compute day boundaries
// for attendance windows and reports.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the studio timezone used when none is configured.
const DefaultTimezone = "America/New_York"

var (
	studioLocation *time.Location
	locationOnce   sync.Once
	initErr        error
)

// Init loads the studio timezone. Call once at startup; empty tz falls back
// to DefaultTimezone.
func Init(tz string) error {
	locationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		studioLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the studio timezone, auto-initializing with the default
// when Init was never called.
func Location() *time.Location {
	if studioLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to load default timezone: %v", err))
		}
	}
	return studioLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00:00 of t's day in the studio timezone,
// converted back to UTC for queries.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start.UTC()
}

// EndOfDayUTC returns the last nanosecond of t's day in the studio timezone,
// converted back to UTC for queries.
func EndOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Location())
	return end.UTC()
}

// DaysAgoUTC returns the UTC instant exactly n days before t.
func DaysAgoUTC(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, -n)
}
