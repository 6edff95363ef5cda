package shift

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// All shift window arithmetic wraps around the 24-hour clock, so
// comparisons between two TimeOfDay values are only meaningful through
// Until, which measures forward (clockwise) distance.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses a "15:04" clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// ClockOf extracts the time-of-day component of an absolute timestamp.
func ClockOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add shifts the clock by d, wrapping past midnight in either direction.
// Sub-minute components of d are truncated.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := (int(t) + int(d.Minutes())) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

// Until returns the forward clock distance from t to o: zero when equal,
// always in [0, 24h).
func (t TimeOfDay) Until(o TimeOfDay) time.Duration {
	m := (int(o) - int(t)) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return time.Duration(m) * time.Minute
}

// On anchors the clock time to a concrete date, preserving the date's
// location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
