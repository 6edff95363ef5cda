package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	Delete(ctx context.Context, id string) error

	// IsOfficialHoliday reports whether the calendar date is an official
	// holiday. The sweep consults it before reconciling a shift.
	IsOfficialHoliday(ctx context.Context, date time.Time) (bool, error)
}
