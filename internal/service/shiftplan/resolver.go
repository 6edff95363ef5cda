package shiftplan

import (
	"sort"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
)

const (
	// EarlyArrivalGrace is how long before a shift's start an attendance
	// event is still counted toward that shift.
	EarlyArrivalGrace = 30 * time.Minute

	// LateArrivalCutoff closes the attendance window this long before a
	// non-overnight shift ends; later events no longer belong to it.
	LateArrivalCutoff = 60 * time.Minute

	// LeaveFallbackGrace bounds the leave window when no adjacent shift
	// can be determined.
	LeaveFallbackGrace = 2 * time.Hour
)

// Resolver maps raw clock events to the single best-matching shift
// occurrence, handling overnight shifts and wrap-around windows.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveAttendanceShift returns the shift whose attendance window
// contains the event time. The window opens EarlyArrivalGrace before the
// shift starts and closes LateArrivalCutoff before it ends, or at the
// end itself for overnight shifts. When several windows contain the
// event, the shift with the earliest start wins.
func (r *Resolver) ResolveAttendanceShift(shifts []shift.Shift, at time.Time) (shift.Shift, error) {
	sorted, err := validShiftsByStart(shifts)
	if err != nil {
		return shift.Shift{}, err
	}

	tod := shift.ClockOf(at)
	for _, s := range sorted {
		opens, closes := attendanceWindow(s)
		if inWindow(tod, opens, closes) {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrNoMatchingShift
}

// ResolveLeaveShift returns the shift whose leave window contains the
// event time. The window opens when the shift ends and closes when the
// next chronological shift starts; with no adjacent shift it closes
// LeaveFallbackGrace after the end.
func (r *Resolver) ResolveLeaveShift(shifts []shift.Shift, at time.Time) (shift.Shift, error) {
	sorted, err := validShiftsByStart(shifts)
	if err != nil {
		return shift.Shift{}, err
	}

	tod := shift.ClockOf(at)
	for _, s := range sorted {
		opens := s.EndTime
		closes := opens.Add(LeaveFallbackGrace)
		if next, ok := NextShiftAfter(sorted, s.EndTime); ok {
			closes = next.StartTime
		}
		if inWindow(tod, opens, closes) {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrNoMatchingShift
}

// OccurrenceDate anchors an attendance event to the calendar date its
// shift occurrence started on. Post-midnight events of an overnight
// shift anchor to the previous day; early arrivals whose grace window
// reaches back across midnight anchor to the next day.
func (r *Resolver) OccurrenceDate(s shift.Shift, at time.Time) time.Time {
	day := truncateDay(at)
	tod := shift.ClockOf(at)
	opens := s.StartTime.Add(-EarlyArrivalGrace)

	switch {
	case s.IsOvernight():
		if tod <= s.EndTime {
			return day.AddDate(0, 0, -1)
		}
		return day
	case opens > s.StartTime:
		// The grace window wraps behind midnight, so a late-evening event
		// belongs to tomorrow's occurrence.
		if tod >= opens {
			return day.AddDate(0, 0, 1)
		}
		return day
	default:
		return day
	}
}

// LeaveOccurrenceDate anchors a leave event to the start date of the
// occurrence it closes.
func (r *Resolver) LeaveOccurrenceDate(s shift.Shift, at time.Time) time.Time {
	day := truncateDay(at)
	if shift.ClockOf(at) < s.EndTime {
		// The leave fell past midnight, inside the window that opened the
		// previous evening.
		day = day.AddDate(0, 0, -1)
	}
	if s.IsOvernight() {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// AttendanceBounds returns the absolute time range of the shift's
// attendance window for one occurrence. Duplicate detection queries the
// event log against this range.
func (r *Resolver) AttendanceBounds(s shift.Shift, occurrenceDate time.Time) (time.Time, time.Time) {
	opens, closes := attendanceWindow(s)

	from := opens.On(occurrenceDate)
	if opens > s.StartTime {
		from = from.AddDate(0, 0, -1)
	}

	to := closes.On(occurrenceDate)
	if s.IsOvernight() {
		to = to.AddDate(0, 0, 1)
	}
	return from, to
}

// LeaveBounds returns the absolute time range of the shift's leave
// window for one occurrence, closing at the adjacent shift's start.
func (r *Resolver) LeaveBounds(shifts []shift.Shift, s shift.Shift, occurrenceDate time.Time) (time.Time, time.Time) {
	from := s.EndTime.On(occurrenceDate)
	if s.IsOvernight() {
		from = from.AddDate(0, 0, 1)
	}

	gap := LeaveFallbackGrace
	if next, ok := NextShiftAfter(shifts, s.EndTime); ok {
		gap = s.EndTime.Until(next.StartTime)
	}
	return from, from.Add(gap)
}

func attendanceWindow(s shift.Shift) (opens, closes shift.TimeOfDay) {
	opens = s.StartTime.Add(-EarlyArrivalGrace)
	if s.IsOvernight() {
		closes = s.EndTime
	} else {
		closes = s.EndTime.Add(-LateArrivalCutoff)
	}
	return opens, closes
}

// inWindow tests membership in a clock window, inclusive on both ends.
// A window whose open time is numerically after its close time wraps
// across midnight and splits into the two sub-ranges [opens, 24h) and
// [0, closes].
func inWindow(t, opens, closes shift.TimeOfDay) bool {
	if opens <= closes {
		return t >= opens && t <= closes
	}
	return t >= opens || t <= closes
}

func validShiftsByStart(shifts []shift.Shift) ([]shift.Shift, error) {
	if len(shifts) == 0 {
		return nil, shift.ErrNoValidShift
	}
	for _, s := range shifts {
		if !s.HasValidTimes() {
			return nil, shift.ErrNoValidShift
		}
	}
	sorted := make([]shift.Shift, len(shifts))
	copy(sorted, shifts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
