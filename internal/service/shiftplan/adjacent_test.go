package shiftplan

import (
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextShiftAfter(t *testing.T) {
	morning := shift.Shift{ID: "morning", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}
	evening := shift.Shift{ID: "evening", StartTime: shift.NewTimeOfDay(17, 30), EndTime: shift.NewTimeOfDay(23, 0)}
	shifts := []shift.Shift{morning, evening}

	next, ok := NextShiftAfter(shifts, shift.NewTimeOfDay(17, 0))
	require.True(t, ok)
	assert.Equal(t, "evening", next.ID)

	// Past the last start the search wraps to the earliest.
	next, ok = NextShiftAfter(shifts, shift.NewTimeOfDay(23, 30))
	require.True(t, ok)
	assert.Equal(t, "morning", next.ID)

	// A single recurring shift is its own successor.
	next, ok = NextShiftAfter([]shift.Shift{morning}, morning.EndTime)
	require.True(t, ok)
	assert.Equal(t, "morning", next.ID)

	_, ok = NextShiftAfter(nil, shift.NewTimeOfDay(9, 0))
	assert.False(t, ok)
}

func TestPreviousOccurrenceDayShift(t *testing.T) {
	morning := shift.Shift{ID: "morning", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0)}

	s, occ, ok := PreviousOccurrence([]shift.Shift{morning}, at(2024, 3, 11, 9, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "morning", s.ID)
	assert.Equal(t, day(2024, 3, 10), occ.Date)
}

func TestPreviousOccurrenceOvernightShift(t *testing.T) {
	night := shift.Shift{ID: "night", StartTime: shift.NewTimeOfDay(21, 0), EndTime: shift.NewTimeOfDay(5, 0)}

	// At 21:00 the most recent run ended this morning at 05:00, having
	// started yesterday evening.
	s, occ, ok := PreviousOccurrence([]shift.Shift{night}, at(2024, 3, 11, 21, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "night", s.ID)
	assert.Equal(t, day(2024, 3, 10), occ.Date)
}

func TestPreviousOccurrenceLatestEndWins(t *testing.T) {
	morning := shift.Shift{ID: "morning", StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(17, 0), CreatedAt: time.Now()}
	evening := shift.Shift{ID: "evening", StartTime: shift.NewTimeOfDay(18, 0), EndTime: shift.NewTimeOfDay(22, 0)}

	s, occ, ok := PreviousOccurrence([]shift.Shift{morning, evening}, at(2024, 3, 11, 9, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "evening", s.ID)
	assert.Equal(t, day(2024, 3, 10), occ.Date)
}

func TestPreviousOccurrenceNoValidShifts(t *testing.T) {
	broken := shift.Shift{StartTime: shift.NewTimeOfDay(9, 0), EndTime: shift.NewTimeOfDay(9, 0)}
	_, _, ok := PreviousOccurrence([]shift.Shift{broken}, at(2024, 3, 11, 9, 0, 0))
	assert.False(t, ok)
}
