package shiftplan

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

// NextShiftAfter returns the assigned shift whose start clock time is
// the first strictly after ref, wrapping to the earliest start when none
// follows ref before midnight. An employee with a single recurring shift
// therefore resolves to that same shift, which is the intended behavior
// for single-shift schedules.
func NextShiftAfter(shifts []shift.Shift, ref shift.TimeOfDay) (shift.Shift, bool) {
	var after, earliest *shift.Shift
	for i := range shifts {
		s := shifts[i]
		if !s.HasValidTimes() {
			continue
		}
		if earliest == nil || s.StartTime < earliest.StartTime {
			earliest = &shifts[i]
		}
		if s.StartTime > ref && (after == nil || s.StartTime < after.StartTime) {
			after = &shifts[i]
		}
	}
	if after != nil {
		return *after, true
	}
	if earliest != nil {
		return *earliest, true
	}
	return shift.Shift{}, false
}

// PreviousOccurrence resolves the shift occurrence that ended most
// recently before now: each assigned shift's end is projected onto the
// most recent date before the reference, and the latest projection wins.
// The returned occurrence is anchored on the date the shift started. For
// single-shift employees this is yesterday's (or this morning's) run of
// their only shift.
func PreviousOccurrence(shifts []shift.Shift, now time.Time) (shift.Shift, shift.Occurrence, bool) {
	var (
		best    shift.Shift
		bestEnd time.Time
		found   bool
	)
	nowTod := shift.ClockOf(now)

	for _, s := range shifts {
		if !s.HasValidTimes() {
			continue
		}
		endAt := s.EndTime.On(truncateDay(now))
		if s.EndTime >= nowTod {
			endAt = endAt.AddDate(0, 0, -1)
		}
		if !found || endAt.After(bestEnd) {
			best, bestEnd, found = s, endAt, true
		}
	}
	if !found {
		return shift.Shift{}, shift.Occurrence{}, false
	}

	startAt := bestEnd.Add(-best.Duration())
	return best, shift.Occurrence{ShiftID: best.ID, Date: truncateDay(startAt)}, true
}
