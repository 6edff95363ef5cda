package shift

import (
	"time"
)

type Shift struct {
	ID        string
	Name      string
	StartTime TimeOfDay
	EndTime   TimeOfDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOvernight reports whether the shift crosses midnight: its end clock
// time is numerically earlier than its start.
func (s Shift) IsOvernight() bool {
	return s.EndTime < s.StartTime
}

// HasValidTimes reports whether both clock times are in range and the
// shift has a non-zero length.
func (s Shift) HasValidTimes() bool {
	return s.StartTime.Valid() && s.EndTime.Valid() && s.StartTime != s.EndTime
}

// Duration is the shift length, wrap-corrected for overnight shifts.
func (s Shift) Duration() time.Duration {
	return s.StartTime.Until(s.EndTime)
}

func (s Shift) DurationHours() float64 {
	return s.Duration().Hours()
}

// Assignment links one employee to one shift template.
type Assignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	CreatedAt  time.Time
}

// Occurrence identifies one calendar instance of a recurring shift,
// anchored on the date the shift starts. It is the key used for
// duplicate detection across midnight.
type Occurrence struct {
	ShiftID string
	Date    time.Time
}
