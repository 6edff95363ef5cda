package notification

import (
	"context"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

type CreateNotificationRequest struct {
	EmployeeID string
	ShiftID    string
	ShiftStart shift.TimeOfDay
	ShiftEnd   shift.TimeOfDay
	Title      string
	Message    string
}

// Service is the notification sink consumed by the reconciliation
// sweep. Delivery beyond persistence (email, push) is a downstream
// concern.
type Service interface {
	Notify(ctx context.Context, req CreateNotificationRequest) error
	NotifyBatch(ctx context.Context, reqs []CreateNotificationRequest) error

	// Stop flushes queued notifications and stops background workers.
	Stop()
}
