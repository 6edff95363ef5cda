package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/branch"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/utils"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/shiftplan"
)

// LateThreshold is how far past the shift start an arrival may be before
// it books lateness hours. Arrivals exactly at the threshold do not
// count as late.
const LateThreshold = 15 * time.Minute

type ServiceImpl struct {
	tx        database.TxManager
	events    attendance.EventRepository
	employees employee.Repository
	branches  branch.Repository
	shifts    shift.Repository
	hours     ledger.Repository
	overtime  attendance.OvertimeRecorder
	resolver  *shiftplan.Resolver
}

func NewAttendanceService(
	tx database.TxManager,
	eventRepo attendance.EventRepository,
	employeeRepo employee.Repository,
	branchRepo branch.Repository,
	shiftRepo shift.Repository,
	ledgerRepo ledger.Repository,
	overtime attendance.OvertimeRecorder,
	resolver *shiftplan.Resolver,
) attendance.Service {
	return &ServiceImpl{
		tx:        tx,
		events:    eventRepo,
		employees: employeeRepo,
		branches:  branchRepo,
		shifts:    shiftRepo,
		hours:     ledgerRepo,
		overtime:  overtime,
		resolver:  resolver,
	}
}

// RecordAttendance implements attendance.Service.
func (a *ServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	shifts, err := a.checkEligibility(ctx, req)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	var resp attendance.EventResponse
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		matched, err := a.resolver.ResolveAttendanceShift(shifts, req.Timestamp)
		if err != nil {
			return err
		}

		occDate := a.resolver.OccurrenceDate(matched, req.Timestamp)
		from, to := a.resolver.AttendanceBounds(matched, occDate)
		exists, err := a.events.ExistsInRange(ctx, req.EmployeeID, attendance.KindAttendance, from, to)
		if err != nil {
			return fmt.Errorf("failed to check for existing attendance: %w", err)
		}
		if exists {
			return fmt.Errorf("shift starting %s on %s: %w",
				matched.StartTime, occDate.Format("2006-01-02"), attendance.ErrDuplicateAttendance)
		}

		ev, err := a.events.Create(ctx, attendance.Event{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			Timestamp:  req.Timestamp,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Kind:       attendance.KindAttendance,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance event: %w", err)
		}

		var lateHours *float64
		if delta := req.Timestamp.Sub(matched.StartTime.On(occDate)); delta > LateThreshold {
			h := roundHours(delta.Hours())
			if err := a.hours.AddHours(ctx, req.EmployeeID, occDate, ledger.KindLate, h); err != nil {
				return fmt.Errorf("failed to book late hours: %w", err)
			}
			lateHours = &h
			slog.Info("late arrival recorded",
				"employee_id", req.EmployeeID,
				"shift_start", matched.StartTime.String(),
				"late_hours", h)
		}

		resp = toEventResponse(ev, matched, occDate)
		resp.LateHours = lateHours
		return nil
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return resp, nil
}

// RecordLeave implements attendance.Service.
func (a *ServiceImpl) RecordLeave(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	shifts, err := a.checkEligibility(ctx, req)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	var resp attendance.EventResponse
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		matched, err := a.resolver.ResolveLeaveShift(shifts, req.Timestamp)
		if err != nil {
			return err
		}

		occDate := a.resolver.LeaveOccurrenceDate(matched, req.Timestamp)

		attFrom, attTo := a.resolver.AttendanceBounds(matched, occDate)
		hasAttendance, err := a.events.ExistsInRange(ctx, req.EmployeeID, attendance.KindAttendance, attFrom, attTo)
		if err != nil {
			return fmt.Errorf("failed to check for prior attendance: %w", err)
		}
		if !hasAttendance {
			return fmt.Errorf("shift starting %s on %s: %w",
				matched.StartTime, occDate.Format("2006-01-02"), attendance.ErrAttendanceRequiredFirst)
		}

		leaveFrom, leaveTo := a.resolver.LeaveBounds(shifts, matched, occDate)
		hasLeave, err := a.events.ExistsInRange(ctx, req.EmployeeID, attendance.KindLeave, leaveFrom, leaveTo)
		if err != nil {
			return fmt.Errorf("failed to check for existing leave: %w", err)
		}
		if hasLeave {
			return fmt.Errorf("shift starting %s on %s: %w",
				matched.StartTime, occDate.Format("2006-01-02"), attendance.ErrDuplicateLeave)
		}

		ev, err := a.events.Create(ctx, attendance.Event{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			Timestamp:  req.Timestamp,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Kind:       attendance.KindLeave,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave event: %w", err)
		}

		// Overtime booking is part of the leave-recording transaction.
		if err := a.overtime.RecordOvertimeForDay(ctx, req.EmployeeID, occDate); err != nil {
			return fmt.Errorf("failed to record overtime: %w", err)
		}

		resp = toEventResponse(ev, matched, occDate)
		return nil
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return resp, nil
}

// ListEvents implements attendance.Service.
func (a *ServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) (attendance.ListEventsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	events, total, err := a.events.List(ctx, filter)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, attendance.EventResponse{
			ID:         ev.ID,
			EmployeeID: ev.EmployeeID,
			Kind:       ev.Kind,
			Timestamp:  ev.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	return attendance.ListEventsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Events:     responses,
	}, nil
}

// checkEligibility verifies the employee exists, has shift assignments
// and an assigned branch, and that the event location falls inside the
// branch geofence. Returns the employee's shifts on success.
func (a *ServiceImpl) checkEligibility(ctx context.Context, req attendance.RecordEventRequest) ([]shift.Shift, error) {
	emp, err := a.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, attendance.ErrEmployeeNotEligible
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.BranchID == nil {
		return nil, attendance.ErrEmployeeNotEligible
	}

	shifts, err := a.shifts.GetByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee shifts: %w", err)
	}
	if len(shifts) == 0 {
		return nil, attendance.ErrEmployeeNotEligible
	}

	br, err := a.branches.GetByID(ctx, *emp.BranchID)
	if err != nil {
		if errors.Is(err, branch.ErrBranchNotFound) {
			return nil, attendance.ErrEmployeeNotEligible
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if !utils.IsInsideCircle(br.Latitude, br.Longitude, req.Latitude, req.Longitude, br.RadiusMeters) {
		return nil, attendance.ErrOutsideGeofence
	}

	return shifts, nil
}

func toEventResponse(ev attendance.Event, matched shift.Shift, occDate time.Time) attendance.EventResponse {
	return attendance.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Kind:       ev.Kind,
		Timestamp:  ev.Timestamp.Format("2006-01-02 15:04:05"),
		ShiftID:    matched.ID,
		ShiftStart: matched.StartTime.String(),
		ShiftEnd:   matched.EndTime.String(),
		Date:       occDate.Format("2006-01-02"),
	}
}

// roundHours keeps ledger hours at two decimal places.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
