package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for raw clock events. There is no
// update or delete: the event log is append-only.
type EventRepository interface {
	Create(ctx context.Context, e Event) (Event, error)

	// ExistsInRange reports whether the employee has an event of the given
	// kind with from <= timestamp <= to. The recorders use it with shift
	// occurrence windows for duplicate detection, so it must see rows
	// written earlier in the same transaction.
	ExistsInRange(ctx context.Context, employeeID string, kind Kind, from, to time.Time) (bool, error)

	// ListByEmployeeBetween returns the employee's events with
	// from <= timestamp < to, ordered by timestamp ascending.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)

	List(ctx context.Context, filter EventFilter) ([]Event, int64, error)
}
