package shift

import "context"

// Repository defines data access for shift templates.
type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error

	// GetByEmployee returns every shift the employee is assigned to.
	GetByEmployee(ctx context.Context, employeeID string) ([]Shift, error)
}

// AssignmentRepository defines data access for employee-shift links.
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)

	// ListByShiftStart returns every assignment whose shift starts at the
	// given clock time. Used by the reconciliation sweep.
	ListByShiftStart(ctx context.Context, start TimeOfDay) ([]Assignment, error)
}
