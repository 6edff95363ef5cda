package settings

import "time"

// Defaults applied when the corresponding setting has never been
// configured.
const (
	DefaultDailyWorkingHours   = 10.0
	DefaultAnnualVacationHours = 450.0
)

// Settings is the read-mostly general settings singleton.
type Settings struct {
	DailyWorkingHours *float64
	VacationsPerYear  *int
	UpdatedAt         time.Time
}

// DailyWorkingHoursOrDefault returns the configured daily-hours
// threshold used by the overtime calculator.
func (s Settings) DailyWorkingHoursOrDefault() float64 {
	if s.DailyWorkingHours != nil {
		return *s.DailyWorkingHours
	}
	return DefaultDailyWorkingHours
}

// AnnualVacationHoursOrDefault returns the yearly vacation hour
// allowance: vacations per year times daily working hours, falling back
// to the default when either setting is absent.
func (s Settings) AnnualVacationHoursOrDefault() float64 {
	if s.VacationsPerYear != nil && s.DailyWorkingHours != nil {
		return float64(*s.VacationsPerYear) * *s.DailyWorkingHours
	}
	return DefaultAnnualVacationHours
}
