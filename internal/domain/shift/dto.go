package shift

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func (r CreateShiftRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if _, err := ParseTimeOfDay(r.StartTime); err != nil {
		return ErrInvalidShiftTimes
	}
	if _, err := ParseTimeOfDay(r.EndTime); err != nil {
		return ErrInvalidShiftTimes
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name" validate:"omitempty,max=100"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (r UpdateShiftRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	for _, t := range []*string{r.StartTime, r.EndTime} {
		if t == nil {
			continue
		}
		if _, err := ParseTimeOfDay(*t); err != nil {
			return ErrInvalidShiftTimes
		}
	}
	return nil
}

type AssignRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
}

func (r AssignRequest) Validate() error {
	return validator.Struct(r)
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overnight bool   `json:"overnight"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	CreatedAt  string `json:"created_at"`
}
