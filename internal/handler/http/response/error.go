package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/branch"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance errors
	case errors.Is(err, attendance.ErrInvalidInput):
		BadRequest(w, "Invalid event payload", nil)
	case errors.Is(err, attendance.ErrEmployeeNotEligible):
		BadRequest(w, "Employee is not eligible for shift attendance", nil)
	case errors.Is(err, attendance.ErrOutsideGeofence):
		BadRequest(w, "Location is outside the branch geofence", nil)
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrDuplicateLeave):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceRequiredFirst):
		BadRequest(w, err.Error(), nil)

	// Shift errors
	case errors.Is(err, shift.ErrNoValidShift):
		BadRequest(w, "Employee has no valid shift configured", nil)
	case errors.Is(err, shift.ErrNoMatchingShift):
		BadRequest(w, "Timestamp does not fall inside any shift window", nil)
	case errors.Is(err, shift.ErrInvalidShiftTimes):
		BadRequest(w, "Invalid shift times", nil)
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrAlreadyAssigned):
		Conflict(w, "Employee is already assigned to this shift")

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Official holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "An official holiday already exists on this date")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
