package ledger

import (
	"context"
	"time"
)

// Repository defines data access for hour ledger entries.
//
// AddHours and SetHours must be atomic upserts at the storage boundary:
// concurrent bookings for the same (employee, date, kind) key must
// serialize, never lose updates.
type Repository interface {
	// AddHours adds hours to the entry for the key, creating it when
	// missing.
	AddHours(ctx context.Context, employeeID string, date time.Time, kind Kind, hours float64) error

	// SetHours replaces the entry's hours with the given value, creating
	// it when missing. Used for recomputed totals such as overtime.
	SetHours(ctx context.Context, employeeID string, date time.Time, kind Kind, hours float64) error

	Get(ctx context.Context, employeeID string, date time.Time, kind Kind) (*Entry, error)

	// SumHoursForYear totals the employee's hours of one kind across a
	// calendar year.
	SumHoursForYear(ctx context.Context, employeeID string, kind Kind, year int) (float64, error)

	ListByEmployee(ctx context.Context, filter Filter) ([]Entry, error)
}

// Booker decides whether a missed shift consumes vacation balance or is
// booked as an absence.
type Booker interface {
	AddVacationOrAbsence(ctx context.Context, employeeID string, date time.Time, shiftHours float64) error
}

type Filter struct {
	EmployeeID string
	From       time.Time
	To         time.Time
	Kind       *Kind
}
