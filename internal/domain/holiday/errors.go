package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("official holiday not found")
	ErrHolidayExists   = errors.New("an official holiday already exists on this date")
)
