package ledger

import "time"

// Kind classifies hour ledger entries.
type Kind string

const (
	KindLate     Kind = "late"
	KindOvertime Kind = "overtime"
	KindVacation Kind = "vacation"
	KindAbsence  Kind = "absence"
)

// Entry is a per-employee, per-day, per-kind hour accumulator. There is
// at most one row per (employee, date, kind); repeated bookings for the
// same day add to the existing row rather than appending new ones.
type Entry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Hours      float64
	Kind       Kind
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
