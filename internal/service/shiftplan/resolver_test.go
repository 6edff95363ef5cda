package shiftplan

import (
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayShift() shift.Shift {
	return shift.Shift{ID: "day", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
}

func nightShift() shift.Shift {
	return shift.Shift{ID: "night", StartTime: shift.NewTimeOfDay(21, 0), EndTime: shift.NewTimeOfDay(5, 0)}
}

func TestResolveAttendanceShiftDaytimeWindow(t *testing.T) {
	r := NewResolver()
	shifts := []shift.Shift{dayShift()}

	// Window spans 08:30 through 16:00 inclusive.
	for _, tc := range []struct {
		hh, mm int
		match  bool
	}{
		{8, 29, false},
		{8, 30, true},
		{8, 31, true},
		{12, 0, true},
		{15, 59, true},
		{16, 0, true},
		{16, 1, false},
	} {
		_, err := r.ResolveAttendanceShift(shifts, at(2024, 3, 11, tc.hh, tc.mm, 0))
		if tc.match {
			assert.NoError(t, err, "%02d:%02d", tc.hh, tc.mm)
		} else {
			assert.ErrorIs(t, err, shift.ErrNoMatchingShift, "%02d:%02d", tc.hh, tc.mm)
		}
	}
}

func TestResolveAttendanceShiftOvernightWindow(t *testing.T) {
	r := NewResolver()
	shifts := []shift.Shift{{ID: "late", StartTime: shift.NewTimeOfDay(23, 0), EndTime: shift.NewTimeOfDay(1, 0)}}

	// The window opens 22:30 and, because the shift is overnight, closes
	// at the end itself past midnight.
	_, err := r.ResolveAttendanceShift(shifts, at(2024, 3, 11, 22, 31, 0))
	assert.NoError(t, err)

	_, err = r.ResolveAttendanceShift(shifts, at(2024, 3, 12, 0, 30, 0))
	assert.NoError(t, err)

	_, err = r.ResolveAttendanceShift(shifts, at(2024, 3, 12, 2, 0, 0))
	assert.ErrorIs(t, err, shift.ErrNoMatchingShift)
}

func TestResolveAttendanceShiftEarliestStartWins(t *testing.T) {
	r := NewResolver()
	second := shift.Shift{ID: "second", StartTime: shift.NewTimeOfDay(9, 30), EndTime: shift.NewTimeOfDay(17, 30)}
	shifts := []shift.Shift{second, dayShift()}

	matched, err := r.ResolveAttendanceShift(shifts, at(2024, 3, 11, 9, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, "day", matched.ID)
}

func TestResolveAttendanceShiftInvalidShifts(t *testing.T) {
	r := NewResolver()

	_, err := r.ResolveAttendanceShift(nil, at(2024, 3, 11, 9, 0, 0))
	assert.ErrorIs(t, err, shift.ErrNoValidShift)

	broken := []shift.Shift{{StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(9, 0)}}
	_, err = r.ResolveAttendanceShift(broken, at(2024, 3, 11, 9, 0, 0))
	assert.ErrorIs(t, err, shift.ErrNoValidShift)
}

func TestResolveLeaveShiftSingleShift(t *testing.T) {
	r := NewResolver()
	shifts := []shift.Shift{dayShift()}

	// With one shift the leave window runs from its end all the way
	// around to its own next start.
	matched, err := r.ResolveLeaveShift(shifts, at(2024, 3, 11, 17, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, "day", matched.ID)

	matched, err = r.ResolveLeaveShift(shifts, at(2024, 3, 12, 8, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, "day", matched.ID)

	_, err = r.ResolveLeaveShift(shifts, at(2024, 3, 11, 9, 30, 0))
	assert.ErrorIs(t, err, shift.ErrNoMatchingShift)
}

func TestResolveLeaveShiftClosesAtNextStart(t *testing.T) {
	r := NewResolver()
	evening := shift.Shift{ID: "evening", StartTime: shift.NewTimeOfDay(18, 0), EndTime: shift.NewTimeOfDay(22, 0)}
	shifts := []shift.Shift{dayShift(), evening}

	// Day shift's leave window is [17:00, 18:00].
	matched, err := r.ResolveLeaveShift(shifts, at(2024, 3, 11, 17, 45, 0))
	require.NoError(t, err)
	assert.Equal(t, "day", matched.ID)

	// Past the evening shift's end the window belongs to it.
	matched, err = r.ResolveLeaveShift(shifts, at(2024, 3, 11, 22, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, "evening", matched.ID)
}

func TestOccurrenceDate(t *testing.T) {
	r := NewResolver()

	// Non-overnight events anchor to their own calendar date.
	assert.Equal(t, day(2024, 3, 11), r.OccurrenceDate(dayShift(), at(2024, 3, 11, 8, 45, 0)))

	// Overnight events after midnight anchor to the previous day.
	assert.Equal(t, day(2024, 3, 10), r.OccurrenceDate(nightShift(), at(2024, 3, 11, 2, 0, 0)))
	assert.Equal(t, day(2024, 3, 11), r.OccurrenceDate(nightShift(), at(2024, 3, 11, 20, 45, 0)))

	// A grace window wrapping behind midnight pushes late-evening events
	// onto the next day's occurrence.
	early := shift.Shift{ID: "early", StartTime: shift.NewTimeOfDay(0, 10), EndTime: shift.NewTimeOfDay(6, 0)}
	assert.Equal(t, day(2024, 3, 12), r.OccurrenceDate(early, at(2024, 3, 11, 23, 50, 0)))
	assert.Equal(t, day(2024, 3, 11), r.OccurrenceDate(early, at(2024, 3, 11, 0, 30, 0)))
}

func TestLeaveOccurrenceDate(t *testing.T) {
	r := NewResolver()

	// Same-day leave keeps the date.
	assert.Equal(t, day(2024, 3, 11), r.LeaveOccurrenceDate(dayShift(), at(2024, 3, 11, 17, 30, 0)))

	// An overnight shift's leave next morning anchors to the start date.
	assert.Equal(t, day(2024, 3, 10), r.LeaveOccurrenceDate(nightShift(), at(2024, 3, 11, 5, 10, 0)))

	// Leave before midnight after a day shift whose window crosses it.
	evening := shift.Shift{ID: "evening", StartTime: shift.NewTimeOfDay(15, 0), EndTime: shift.NewTimeOfDay(23, 0)}
	assert.Equal(t, day(2024, 3, 10), r.LeaveOccurrenceDate(evening, at(2024, 3, 11, 0, 30, 0)))
}

func TestAttendanceBounds(t *testing.T) {
	r := NewResolver()

	from, to := r.AttendanceBounds(dayShift(), day(2024, 3, 11))
	assert.Equal(t, at(2024, 3, 11, 8, 30, 0), from)
	assert.Equal(t, at(2024, 3, 11, 16, 0, 0), to)

	// Overnight windows close on the next calendar date.
	from, to = r.AttendanceBounds(nightShift(), day(2024, 3, 11))
	assert.Equal(t, at(2024, 3, 11, 20, 30, 0), from)
	assert.Equal(t, at(2024, 3, 12, 5, 0, 0), to)

	// A wrapped grace window opens on the previous date.
	early := shift.Shift{StartTime: shift.NewTimeOfDay(0, 10), EndTime: shift.NewTimeOfDay(6, 0)}
	from, to = r.AttendanceBounds(early, day(2024, 3, 11))
	assert.Equal(t, at(2024, 3, 10, 23, 40, 0), from)
	assert.Equal(t, at(2024, 3, 11, 5, 0, 0), to)
}

func TestLeaveBounds(t *testing.T) {
	r := NewResolver()

	// Single shift: the window wraps all the way to its own next start.
	from, to := r.LeaveBounds([]shift.Shift{dayShift()}, dayShift(), day(2024, 3, 11))
	assert.Equal(t, at(2024, 3, 11, 17, 0, 0), from)
	assert.Equal(t, at(2024, 3, 12, 9, 0, 0), to)

	// Overnight shift: the window opens after the end, on the next date.
	from, to = r.LeaveBounds([]shift.Shift{nightShift()}, nightShift(), day(2024, 3, 10))
	assert.Equal(t, at(2024, 3, 11, 5, 0, 0), from)
	assert.Equal(t, at(2024, 3, 11, 21, 0, 0), to)

	// With an adjacent shift the window closes at its start.
	evening := shift.Shift{ID: "evening", StartTime: shift.NewTimeOfDay(18, 0), EndTime: shift.NewTimeOfDay(22, 0)}
	from, to = r.LeaveBounds([]shift.Shift{dayShift(), evening}, dayShift(), day(2024, 3, 11))
	assert.Equal(t, at(2024, 3, 11, 17, 0, 0), from)
	assert.Equal(t, at(2024, 3, 11, 18, 0, 0), to)
}
