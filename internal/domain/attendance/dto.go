package attendance

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required,uuid"`
	Timestamp  time.Time `json:"timestamp"`
	Latitude   float64   `json:"latitude" validate:"latitude"`
	Longitude  float64   `json:"longitude" validate:"longitude"`
}

func (r RecordEventRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Timestamp.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

type EventResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Kind       Kind     `json:"kind"`
	Timestamp  string   `json:"timestamp"`
	ShiftID    string   `json:"shift_id"`
	ShiftStart string   `json:"shift_start"`
	ShiftEnd   string   `json:"shift_end"`
	Date       string   `json:"date"`
	LateHours  *float64 `json:"late_hours,omitempty"`
}

type EventFilter struct {
	EmployeeID *string
	Kind       *Kind
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type ListEventsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Events     []EventResponse `json:"events"`
}
