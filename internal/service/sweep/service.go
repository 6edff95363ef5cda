package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/shiftplan"
)

// Service reconciles just-ended shift occurrences. Each trigger tick
// inspects the employees whose shift starts at the tick's clock time and
// settles their previous occurrence: absence or vacation when nobody
// showed up, a reminder notification when the leave was forgotten.
type Service struct {
	assignments shift.AssignmentRepository
	shifts      shift.Repository
	employees   employee.Repository
	events      attendance.EventRepository
	holidays    holiday.Repository
	booker      ledger.Booker
	notifier    notification.Service
	resolver    *shiftplan.Resolver
}

func NewSweepService(
	assignmentRepo shift.AssignmentRepository,
	shiftRepo shift.Repository,
	employeeRepo employee.Repository,
	eventRepo attendance.EventRepository,
	holidayRepo holiday.Repository,
	booker ledger.Booker,
	notifier notification.Service,
	resolver *shiftplan.Resolver,
) *Service {
	return &Service{
		assignments: assignmentRepo,
		shifts:      shiftRepo,
		employees:   employeeRepo,
		events:      eventRepo,
		holidays:    holidayRepo,
		booker:      booker,
		notifier:    notifier,
		resolver:    resolver,
	}
}

// Run executes a single sweep pass for the given trigger time. Failures
// are isolated per employee: one broken record never aborts the batch.
func (s *Service) Run(ctx context.Context, now time.Time) error {
	tod := shift.ClockOf(now)
	assignments, err := s.assignments.ListByShiftStart(ctx, tod)
	if err != nil {
		return fmt.Errorf("failed to list assignments starting at %s: %w", tod, err)
	}
	if len(assignments) == 0 {
		return nil
	}

	// Multiple assignments can point at the same employee; the previous
	// occurrence is reconciled once per employee.
	seen := make(map[string]struct{}, len(assignments))
	reconciled := 0
	for _, as := range assignments {
		if _, dup := seen[as.EmployeeID]; dup {
			continue
		}
		seen[as.EmployeeID] = struct{}{}

		if err := s.reconcileEmployee(ctx, as.EmployeeID, now); err != nil {
			slog.Error("sweep reconciliation failed",
				"employee_id", as.EmployeeID,
				"trigger_time", tod.String(),
				"error", err)
			continue
		}
		reconciled++
	}

	slog.Info("sweep pass completed",
		"trigger_time", tod.String(),
		"candidates", len(seen),
		"reconciled", reconciled)
	return nil
}

func (s *Service) reconcileEmployee(ctx context.Context, employeeID string, now time.Time) error {
	shifts, err := s.shifts.GetByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee shifts: %w", err)
	}

	prev, occ, ok := shiftplan.PreviousOccurrence(shifts, now)
	if !ok {
		slog.Info("no previous shift occurrence to reconcile", "employee_id", employeeID)
		return nil
	}

	startDate := occ.Date
	endDate := startDate
	if prev.IsOvernight() {
		endDate = endDate.AddDate(0, 0, 1)
	}

	// Holidays take precedence over every other outcome.
	for _, d := range []time.Time{startDate, endDate} {
		isHoliday, err := s.holidays.IsOfficialHoliday(ctx, d)
		if err != nil {
			return fmt.Errorf("failed to check holiday: %w", err)
		}
		if isHoliday {
			slog.Info("skipping reconciliation on official holiday",
				"employee_id", employeeID, "date", d.Format("2006-01-02"))
			return nil
		}
		if endDate.Equal(startDate) {
			break
		}
	}

	attFrom, attTo := s.resolver.AttendanceBounds(prev, startDate)
	hasAttendance, err := s.events.ExistsInRange(ctx, employeeID, attendance.KindAttendance, attFrom, attTo)
	if err != nil {
		return fmt.Errorf("failed to check attendance: %w", err)
	}

	if !hasAttendance {
		return s.booker.AddVacationOrAbsence(ctx, employeeID, startDate, prev.DurationHours())
	}

	leaveFrom, leaveTo := s.resolver.LeaveBounds(shifts, prev, startDate)
	hasLeave, err := s.events.ExistsInRange(ctx, employeeID, attendance.KindLeave, leaveFrom, leaveTo)
	if err != nil {
		return fmt.Errorf("failed to check leave: %w", err)
	}
	if hasLeave {
		return nil
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	return s.notifier.Notify(ctx, notification.CreateNotificationRequest{
		EmployeeID: employeeID,
		ShiftID:    prev.ID,
		ShiftStart: prev.StartTime,
		ShiftEnd:   prev.EndTime,
		Title:      "Missing leave record",
		Message: fmt.Sprintf("%s attended the %s-%s shift on %s but never recorded a leave.",
			emp.FullName, prev.StartTime, prev.EndTime, startDate.Format("2006-01-02")),
	})
}
