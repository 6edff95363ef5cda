package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRepoStub struct {
	events []attendance.Event
}

func (r *eventRepoStub) Create(_ context.Context, e attendance.Event) (attendance.Event, error) {
	r.events = append(r.events, e)
	return e, nil
}

func (r *eventRepoStub) ExistsInRange(context.Context, string, attendance.Kind, time.Time, time.Time) (bool, error) {
	return false, nil
}

func (r *eventRepoStub) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, e := range r.events {
		if e.EmployeeID == employeeID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepoStub) List(context.Context, attendance.EventFilter) ([]attendance.Event, int64, error) {
	return nil, 0, nil
}

type shiftRepoStub struct {
	shifts []shift.Shift
}

func (r *shiftRepoStub) Create(_ context.Context, s shift.Shift) (shift.Shift, error) { return s, nil }
func (r *shiftRepoStub) GetByID(context.Context, string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}
func (r *shiftRepoStub) List(context.Context) ([]shift.Shift, error) { return r.shifts, nil }
func (r *shiftRepoStub) Update(context.Context, shift.Shift) error   { return nil }
func (r *shiftRepoStub) Delete(context.Context, string) error        { return nil }
func (r *shiftRepoStub) GetByEmployee(context.Context, string) ([]shift.Shift, error) {
	return r.shifts, nil
}

type settingsRepoStub struct {
	current settings.Settings
}

func (r *settingsRepoStub) Get(context.Context) (settings.Settings, error) { return r.current, nil }
func (r *settingsRepoStub) Update(_ context.Context, s settings.Settings) (settings.Settings, error) {
	r.current = s
	return s, nil
}

type ledgerEntry struct {
	employeeID string
	date       time.Time
	kind       ledger.Kind
	hours      float64
}

type ledgerRepoStub struct {
	set []ledgerEntry
}

func (r *ledgerRepoStub) AddHours(context.Context, string, time.Time, ledger.Kind, float64) error {
	return nil
}

func (r *ledgerRepoStub) SetHours(_ context.Context, employeeID string, date time.Time, kind ledger.Kind, hours float64) error {
	r.set = append(r.set, ledgerEntry{employeeID, date, kind, hours})
	return nil
}

func (r *ledgerRepoStub) Get(context.Context, string, time.Time, ledger.Kind) (*ledger.Entry, error) {
	return nil, nil
}

func (r *ledgerRepoStub) SumHoursForYear(context.Context, string, ledger.Kind, int) (float64, error) {
	return 0, nil
}

func (r *ledgerRepoStub) ListByEmployee(context.Context, ledger.Filter) ([]ledger.Entry, error) {
	return nil, nil
}

func event(kind attendance.Kind, d, hh, mm int) attendance.Event {
	return attendance.Event{
		EmployeeID: "emp-1",
		Kind:       kind,
		Timestamp:  time.Date(2024, 3, d, hh, mm, 0, 0, time.UTC),
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func newCalculator(shifts []shift.Shift, events []attendance.Event, st settings.Settings) (*Calculator, *ledgerRepoStub) {
	hours := &ledgerRepoStub{}
	calc := NewCalculator(
		&eventRepoStub{events: events},
		&shiftRepoStub{shifts: shifts},
		&settingsRepoStub{current: st},
		hours,
	)
	return calc, hours
}

func TestRecordOvertimeAboveDefaultThreshold(t *testing.T) {
	dayShift := shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
	calc, hours := newCalculator(
		[]shift.Shift{dayShift},
		[]attendance.Event{
			event(attendance.KindAttendance, 11, 8, 57),
			event(attendance.KindLeave, 11, 20, 0),
		},
		settings.Settings{},
	)

	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(11)))

	// 11h03m worked against the default 10h threshold.
	require.Len(t, hours.set, 1)
	assert.Equal(t, ledger.KindOvertime, hours.set[0].kind)
	assert.Equal(t, day(11), hours.set[0].date)
	assert.InDelta(t, 1.05, hours.set[0].hours, 1e-9)
}

func TestRecordOvertimeBelowThresholdWritesNothing(t *testing.T) {
	dayShift := shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
	calc, hours := newCalculator(
		[]shift.Shift{dayShift},
		[]attendance.Event{
			event(attendance.KindAttendance, 11, 9, 0),
			event(attendance.KindLeave, 11, 17, 0),
		},
		settings.Settings{},
	)

	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(11)))
	assert.Empty(t, hours.set)
}

func TestRecordOvertimeConfiguredThreshold(t *testing.T) {
	threshold := 8.0
	nightShift := shift.Shift{ID: "night", StartTime: shift.NewTimeOfDay(21, 0), EndTime: shift.NewTimeOfDay(5, 0)}
	calc, hours := newCalculator(
		[]shift.Shift{nightShift},
		[]attendance.Event{
			event(attendance.KindAttendance, 10, 20, 45),
			event(attendance.KindLeave, 11, 5, 10),
		},
		settings.Settings{DailyWorkingHours: &threshold},
	)

	// The overnight assignment widens the scan to the next day, catching
	// the post-midnight leave.
	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(10)))

	require.Len(t, hours.set, 1)
	assert.Equal(t, day(10), hours.set[0].date)
	assert.InDelta(t, 0.42, hours.set[0].hours, 1e-9)
}

func TestRecordOvertimeNoEvents(t *testing.T) {
	dayShift := shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
	calc, hours := newCalculator([]shift.Shift{dayShift}, nil, settings.Settings{})

	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(11)))
	assert.Empty(t, hours.set)
}

func TestRecordOvertimeRecomputesWholeDay(t *testing.T) {
	threshold := 4.0
	dayShift := shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
	events := &eventRepoStub{events: []attendance.Event{
		event(attendance.KindAttendance, 11, 9, 0),
		event(attendance.KindLeave, 11, 14, 0),
	}}
	hours := &ledgerRepoStub{}
	calc := NewCalculator(events, &shiftRepoStub{shifts: []shift.Shift{dayShift}}, &settingsRepoStub{current: settings.Settings{DailyWorkingHours: &threshold}}, hours)

	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(11)))
	require.Len(t, hours.set, 1)
	assert.InDelta(t, 1.0, hours.set[0].hours, 1e-9)

	// A second pair on the same day grows the recomputed total instead of
	// double-counting the first.
	events.events = append(events.events,
		event(attendance.KindAttendance, 11, 16, 0),
		event(attendance.KindLeave, 11, 18, 0),
	)
	require.NoError(t, calc.RecordOvertimeForDay(context.Background(), "emp-1", day(11)))
	require.Len(t, hours.set, 2)
	assert.InDelta(t, 3.0, hours.set[1].hours, 1e-9)
}

func TestPairWorkedDurationDropsUnpairedEvents(t *testing.T) {
	worked := pairWorkedDuration("emp-1", []attendance.Event{
		event(attendance.KindLeave, 11, 8, 0), // leave with no prior attendance
		event(attendance.KindAttendance, 11, 9, 0),
		event(attendance.KindAttendance, 11, 10, 0), // replaces the dangling 9:00
		event(attendance.KindLeave, 11, 12, 0),
		event(attendance.KindAttendance, 11, 20, 0), // never closed
	})
	assert.Equal(t, 2*time.Hour, worked)
}

func TestPairWorkedDurationWrapsNegativeSpans(t *testing.T) {
	worked := pairWorkedDuration("emp-1", []attendance.Event{
		{EmployeeID: "emp-1", Kind: attendance.KindAttendance, Timestamp: time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC)},
		{EmployeeID: "emp-1", Kind: attendance.KindLeave, Timestamp: time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC)},
	})
	assert.Equal(t, 4*time.Hour, worked)
}
