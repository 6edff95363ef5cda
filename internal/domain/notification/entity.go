package notification

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

type Notification struct {
	ID         string
	EmployeeID string
	ShiftID    string
	ShiftStart shift.TimeOfDay
	ShiftEnd   shift.TimeOfDay
	Title      string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
