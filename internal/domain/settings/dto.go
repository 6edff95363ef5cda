package settings

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	DailyWorkingHours *float64 `json:"daily_working_hours" validate:"omitempty,gt=0,lte=24"`
	VacationsPerYear  *int     `json:"vacations_per_year" validate:"omitempty,gte=0,lte=366"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validator.Struct(r)
}

type SettingsResponse struct {
	DailyWorkingHours   *float64 `json:"daily_working_hours"`
	VacationsPerYear    *int     `json:"vacations_per_year"`
	EffectiveDailyHours float64  `json:"effective_daily_hours"`
	EffectiveAllowance  float64  `json:"effective_annual_vacation_hours"`
}
