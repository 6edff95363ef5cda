package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 30), tod)
	assert.Equal(t, "09:30", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("9am")
	assert.Error(t, err)
}

func TestTimeOfDayAddWrapsMidnight(t *testing.T) {
	assert.Equal(t, NewTimeOfDay(0, 30), NewTimeOfDay(23, 30).Add(time.Hour))
	assert.Equal(t, NewTimeOfDay(23, 45), NewTimeOfDay(0, 15).Add(-30*time.Minute))
	assert.Equal(t, NewTimeOfDay(12, 0), NewTimeOfDay(12, 0).Add(24*time.Hour))
}

func TestTimeOfDayUntil(t *testing.T) {
	assert.Equal(t, 8*time.Hour, NewTimeOfDay(9, 0).Until(NewTimeOfDay(17, 0)))
	// Forward distance wraps across midnight.
	assert.Equal(t, 2*time.Hour, NewTimeOfDay(23, 0).Until(NewTimeOfDay(1, 0)))
	assert.Equal(t, time.Duration(0), NewTimeOfDay(5, 0).Until(NewTimeOfDay(5, 0)))
}

func TestTimeOfDayOn(t *testing.T) {
	date := time.Date(2024, 3, 10, 15, 42, 7, 0, time.UTC)
	at := NewTimeOfDay(9, 30).On(date)
	assert.Equal(t, time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC), at)
}

func TestShiftIsOvernight(t *testing.T) {
	day := Shift{StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(17, 0)}
	night := Shift{StartTime: NewTimeOfDay(21, 0), EndTime: NewTimeOfDay(5, 0)}

	assert.False(t, day.IsOvernight())
	assert.True(t, night.IsOvernight())
}

func TestShiftDuration(t *testing.T) {
	day := Shift{StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(17, 0)}
	night := Shift{StartTime: NewTimeOfDay(21, 0), EndTime: NewTimeOfDay(5, 0)}

	assert.Equal(t, 8*time.Hour, day.Duration())
	assert.Equal(t, 8*time.Hour, night.Duration())
	assert.InDelta(t, 8.0, night.DurationHours(), 1e-9)
}

func TestShiftHasValidTimes(t *testing.T) {
	assert.True(t, Shift{StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(17, 0)}.HasValidTimes())
	// Zero-length shifts are invalid.
	assert.False(t, Shift{StartTime: NewTimeOfDay(9, 0), EndTime: NewTimeOfDay(9, 0)}.HasValidTimes())
	assert.False(t, Shift{StartTime: TimeOfDay(-10), EndTime: NewTimeOfDay(17, 0)}.HasValidTimes())
	assert.False(t, Shift{StartTime: NewTimeOfDay(9, 0), EndTime: TimeOfDay(MinutesPerDay)}.HasValidTimes())
}
