package holiday

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name string `json:"name" validate:"required,max=150"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (r CreateHolidayRequest) Validate() error {
	return validator.Struct(r)
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
