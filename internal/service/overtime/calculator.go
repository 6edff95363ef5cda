package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

// Calculator derives overtime hours from the day's paired
// attendance/leave events and books them into the hour ledger.
type Calculator struct {
	events   attendance.EventRepository
	shifts   shift.Repository
	settings settings.Repository
	hours    ledger.Repository
}

func NewCalculator(
	eventRepo attendance.EventRepository,
	shiftRepo shift.Repository,
	settingsRepo settings.Repository,
	ledgerRepo ledger.Repository,
) *Calculator {
	return &Calculator{
		events:   eventRepo,
		shifts:   shiftRepo,
		settings: settingsRepo,
		hours:    ledgerRepo,
	}
}

// RecordOvertimeForDay implements attendance.OvertimeRecorder.
//
// The day's total worked hours are recomputed from scratch and the
// overtime entry is written with the recomputed value, so re-invocation
// without new events is a no-op while each additional attendance/leave
// pair grows the entry.
func (c *Calculator) RecordOvertimeForDay(ctx context.Context, employeeID string, date time.Time) error {
	shifts, err := c.shifts.GetByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee shifts: %w", err)
	}

	// Overnight assignments spill events onto the next calendar date.
	from := startOfDay(date)
	to := from.AddDate(0, 0, 1)
	for _, s := range shifts {
		if s.IsOvernight() {
			to = to.AddDate(0, 0, 1)
			break
		}
	}

	events, err := c.events.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	worked := pairWorkedDuration(employeeID, events)
	if worked == 0 {
		return nil
	}

	st, err := c.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load general settings: %w", err)
	}

	overtime := worked.Hours() - st.DailyWorkingHoursOrDefault()
	if overtime <= 0 {
		return nil
	}
	overtime = math.Round(overtime*100) / 100

	if err := c.hours.SetHours(ctx, employeeID, startOfDay(date), ledger.KindOvertime, overtime); err != nil {
		return fmt.Errorf("failed to book overtime hours: %w", err)
	}

	slog.Info("overtime recorded",
		"employee_id", employeeID,
		"date", date.Format("2006-01-02"),
		"worked_hours", worked.Hours(),
		"overtime_hours", overtime)
	return nil
}

// pairWorkedDuration pairs events strictly in sequence: an attendance
// opens an interval and the next leave closes it. Unpaired events are
// logged and dropped so a forgotten leave never yields a negative or
// runaway interval.
func pairWorkedDuration(employeeID string, events []attendance.Event) time.Duration {
	var (
		total time.Duration
		open  *attendance.Event
	)

	for i := range events {
		ev := events[i]
		switch ev.Kind {
		case attendance.KindAttendance:
			if open != nil {
				slog.Warn("attendance without matching leave dropped",
					"employee_id", employeeID, "timestamp", open.Timestamp)
			}
			open = &events[i]
		case attendance.KindLeave:
			if open == nil {
				slog.Warn("leave without prior attendance ignored",
					"employee_id", employeeID, "timestamp", ev.Timestamp)
				continue
			}
			d := ev.Timestamp.Sub(open.Timestamp)
			if d < 0 {
				// Defensive wrap handling for events recorded out of order
				// across midnight.
				d += 24 * time.Hour
			}
			total += d
			open = nil
		}
	}

	if open != nil {
		slog.Warn("dangling attendance without leave ignored",
			"employee_id", employeeID, "timestamp", open.Timestamp)
	}
	return total
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
