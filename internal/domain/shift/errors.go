package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrAlreadyAssigned    = errors.New("employee is already assigned to this shift")
	ErrInvalidShiftTimes  = errors.New("shift start and end times must be valid clock times")

	// Resolution errors
	ErrNoValidShift    = errors.New("employee has no valid shift assignments")
	ErrNoMatchingShift = errors.New("event time is outside every allowed shift window")
)
