package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/shiftplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignmentRepoStub struct {
	assignments []shift.Assignment
	shifts      map[string]shift.Shift
}

func (r *assignmentRepoStub) Create(_ context.Context, a shift.Assignment) (shift.Assignment, error) {
	return a, nil
}
func (r *assignmentRepoStub) Delete(context.Context, string) error { return nil }
func (r *assignmentRepoStub) ListByEmployee(context.Context, string) ([]shift.Assignment, error) {
	return nil, nil
}

func (r *assignmentRepoStub) ListByShiftStart(_ context.Context, start shift.TimeOfDay) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range r.assignments {
		if r.shifts[a.ShiftID].StartTime == start {
			out = append(out, a)
		}
	}
	return out, nil
}

type shiftRepoStub struct {
	byEmployee map[string][]shift.Shift
	failFor    string
}

func (r *shiftRepoStub) Create(_ context.Context, s shift.Shift) (shift.Shift, error) { return s, nil }
func (r *shiftRepoStub) GetByID(context.Context, string) (shift.Shift, error) {
	return shift.Shift{}, shift.ErrShiftNotFound
}
func (r *shiftRepoStub) List(context.Context) ([]shift.Shift, error) { return nil, nil }
func (r *shiftRepoStub) Update(context.Context, shift.Shift) error   { return nil }
func (r *shiftRepoStub) Delete(context.Context, string) error        { return nil }

func (r *shiftRepoStub) GetByEmployee(_ context.Context, employeeID string) ([]shift.Shift, error) {
	if employeeID == r.failFor {
		return nil, errors.New("storage unavailable")
	}
	return r.byEmployee[employeeID], nil
}

type employeeRepoStub struct{}

func (r *employeeRepoStub) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (r *employeeRepoStub) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Dana Smith"}, nil
}
func (r *employeeRepoStub) List(context.Context) ([]employee.Employee, error) { return nil, nil }
func (r *employeeRepoStub) Update(context.Context, employee.Employee) error   { return nil }
func (r *employeeRepoStub) Delete(context.Context, string) error              { return nil }

type eventRepoStub struct {
	events []attendance.Event
}

func (r *eventRepoStub) Create(_ context.Context, e attendance.Event) (attendance.Event, error) {
	r.events = append(r.events, e)
	return e, nil
}

func (r *eventRepoStub) ExistsInRange(_ context.Context, employeeID string, kind attendance.Kind, from, to time.Time) (bool, error) {
	for _, e := range r.events {
		if e.EmployeeID == employeeID && e.Kind == kind &&
			!e.Timestamp.Before(from) && !e.Timestamp.After(to) {
			return true, nil
		}
	}
	return false, nil
}

func (r *eventRepoStub) ListByEmployeeBetween(context.Context, string, time.Time, time.Time) ([]attendance.Event, error) {
	return nil, nil
}

func (r *eventRepoStub) List(context.Context, attendance.EventFilter) ([]attendance.Event, int64, error) {
	return nil, 0, nil
}

type holidayRepoStub struct {
	dates map[string]bool
}

func (r *holidayRepoStub) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}
func (r *holidayRepoStub) List(context.Context) ([]holiday.Holiday, error) { return nil, nil }
func (r *holidayRepoStub) Delete(context.Context, string) error            { return nil }

func (r *holidayRepoStub) IsOfficialHoliday(_ context.Context, date time.Time) (bool, error) {
	return r.dates[date.Format("2006-01-02")], nil
}

type bookerStub struct {
	calls []struct {
		employeeID string
		date       time.Time
		hours      float64
	}
}

func (b *bookerStub) AddVacationOrAbsence(_ context.Context, employeeID string, date time.Time, shiftHours float64) error {
	b.calls = append(b.calls, struct {
		employeeID string
		date       time.Time
		hours      float64
	}{employeeID, date, shiftHours})
	return nil
}

type notifierStub struct {
	sent []notification.CreateNotificationRequest
}

func (n *notifierStub) Notify(_ context.Context, req notification.CreateNotificationRequest) error {
	n.sent = append(n.sent, req)
	return nil
}

func (n *notifierStub) NotifyBatch(_ context.Context, reqs []notification.CreateNotificationRequest) error {
	n.sent = append(n.sent, reqs...)
	return nil
}

func (n *notifierStub) Stop() {}

type fixture struct {
	svc         *Service
	assignments *assignmentRepoStub
	shifts      *shiftRepoStub
	events      *eventRepoStub
	holidays    *holidayRepoStub
	booker      *bookerStub
	notifier    *notifierStub
}

func newFixture() *fixture {
	f := &fixture{
		assignments: &assignmentRepoStub{shifts: map[string]shift.Shift{}},
		shifts:      &shiftRepoStub{byEmployee: map[string][]shift.Shift{}},
		events:      &eventRepoStub{},
		holidays:    &holidayRepoStub{dates: map[string]bool{}},
		booker:      &bookerStub{},
		notifier:    &notifierStub{},
	}
	f.svc = NewSweepService(
		f.assignments,
		f.shifts,
		&employeeRepoStub{},
		f.events,
		f.holidays,
		f.booker,
		f.notifier,
		shiftplan.NewResolver(),
	)
	return f
}

func (f *fixture) assign(employeeID string, s shift.Shift) {
	f.assignments.shifts[s.ID] = s
	f.assignments.assignments = append(f.assignments.assignments, shift.Assignment{
		ID:         employeeID + "-" + s.ID,
		EmployeeID: employeeID,
		ShiftID:    s.ID,
	})
	f.shifts.byEmployee[employeeID] = append(f.shifts.byEmployee[employeeID], s)
}

func (f *fixture) record(employeeID string, kind attendance.Kind, ts time.Time) {
	f.events.events = append(f.events.events, attendance.Event{
		EmployeeID: employeeID,
		Kind:       kind,
		Timestamp:  ts,
	})
}

func dayShift() shift.Shift {
	return shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
}

func nightShift() shift.Shift {
	return shift.Shift{ID: "night", StartTime: shift.NewTimeOfDay(21, 0), EndTime: shift.NewTimeOfDay(5, 0)}
}

func at(d, hh, mm int) time.Time {
	return time.Date(2024, 3, d, hh, mm, 0, 0, time.UTC)
}

func TestSweepBooksMissedShift(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())

	// At the 09:00 tick on the 11th the previous occurrence is the 10th,
	// and nobody clocked in for it.
	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	require.Len(t, f.booker.calls, 1)
	assert.Equal(t, "emp-1", f.booker.calls[0].employeeID)
	assert.Equal(t, at(10, 0, 0), f.booker.calls[0].date)
	assert.InDelta(t, 8.0, f.booker.calls[0].hours, 1e-9)
	assert.Empty(t, f.notifier.sent)
}

func TestSweepNotifiesOnMissingLeave(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())
	f.record("emp-1", attendance.KindAttendance, at(10, 9, 5))

	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	assert.Empty(t, f.booker.calls)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "emp-1", f.notifier.sent[0].EmployeeID)
	assert.Equal(t, "day", f.notifier.sent[0].ShiftID)
	assert.Equal(t, "Missing leave record", f.notifier.sent[0].Title)
	assert.Contains(t, f.notifier.sent[0].Message, "Dana Smith")
	assert.Contains(t, f.notifier.sent[0].Message, "2024-03-10")
}

func TestSweepCompleteOccurrenceLeavesNoTrace(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())
	f.record("emp-1", attendance.KindAttendance, at(10, 9, 5))
	f.record("emp-1", attendance.KindLeave, at(10, 17, 10))

	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	assert.Empty(t, f.booker.calls)
	assert.Empty(t, f.notifier.sent)
}

func TestSweepSkipsOfficialHoliday(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())
	f.holidays.dates["2024-03-10"] = true

	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	assert.Empty(t, f.booker.calls)
	assert.Empty(t, f.notifier.sent)
}

func TestSweepSkipsHolidayOnOvernightEndDate(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", nightShift())

	// The previous night run started on the 10th and ended on the 11th;
	// a holiday on either date suppresses reconciliation.
	f.holidays.dates["2024-03-11"] = true

	require.NoError(t, f.svc.Run(context.Background(), at(11, 21, 0)))

	assert.Empty(t, f.booker.calls)
	assert.Empty(t, f.notifier.sent)
}

func TestSweepIsolatesPerEmployeeFailures(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())
	f.assign("emp-2", dayShift())
	f.shifts.failFor = "emp-1"

	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	// emp-1's lookup failed, emp-2 still gets reconciled.
	require.Len(t, f.booker.calls, 1)
	assert.Equal(t, "emp-2", f.booker.calls[0].employeeID)
}

func TestSweepReconcilesEachEmployeeOnce(t *testing.T) {
	f := newFixture()
	other := shift.Shift{ID: "other", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(13, 0)}
	f.assign("emp-1", dayShift())
	f.assign("emp-1", other)

	require.NoError(t, f.svc.Run(context.Background(), at(11, 9, 0)))

	assert.Len(t, f.booker.calls, 1)
}

func TestSweepNoAssignmentsAtTick(t *testing.T) {
	f := newFixture()
	f.assign("emp-1", dayShift())

	require.NoError(t, f.svc.Run(context.Background(), at(11, 10, 30)))

	assert.Empty(t, f.booker.calls)
	assert.Empty(t, f.notifier.sent)
}
