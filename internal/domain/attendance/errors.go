package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidInput            = errors.New("invalid attendance input")
	ErrEmployeeNotEligible     = errors.New("employee has no branch or valid shift assignments")
	ErrOutsideGeofence         = errors.New("location is outside the branch geofence")
	ErrDuplicateAttendance     = errors.New("attendance already recorded for this shift")
	ErrDuplicateLeave          = errors.New("leave already recorded for this shift")
	ErrAttendanceRequiredFirst = errors.New("attendance must be recorded before leave")
)
