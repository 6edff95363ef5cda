package attendance

import (
	"context"
	"time"
)

// Service records raw clock events against the employee's assigned
// shifts.
type Service interface {
	// RecordAttendance validates and persists an attendance event,
	// booking lateness hours when the employee arrived late.
	RecordAttendance(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// RecordLeave validates and persists a leave event and recomputes the
	// day's overtime before returning.
	RecordLeave(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListEvents retrieves raw events with filters (admin/reporting).
	ListEvents(ctx context.Context, filter EventFilter) (ListEventsResponse, error)
}

// OvertimeRecorder recomputes and books the overtime ledger entry for
// one employee-day. Invoked by RecordLeave and by scheduled jobs.
type OvertimeRecorder interface {
	RecordOvertimeForDay(ctx context.Context, employeeID string, date time.Time) error
}
