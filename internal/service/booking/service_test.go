package booking

import (
	"context"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingsRepoStub struct {
	current settings.Settings
}

func (r *settingsRepoStub) Get(context.Context) (settings.Settings, error) { return r.current, nil }
func (r *settingsRepoStub) Update(_ context.Context, s settings.Settings) (settings.Settings, error) {
	r.current = s
	return s, nil
}

type booked struct {
	employeeID string
	date       time.Time
	kind       ledger.Kind
	hours      float64
}

type ledgerRepoStub struct {
	vacationUsed float64
	added        []booked
}

func (r *ledgerRepoStub) AddHours(_ context.Context, employeeID string, date time.Time, kind ledger.Kind, hours float64) error {
	r.added = append(r.added, booked{employeeID, date, kind, hours})
	return nil
}

func (r *ledgerRepoStub) SetHours(context.Context, string, time.Time, ledger.Kind, float64) error {
	return nil
}

func (r *ledgerRepoStub) Get(context.Context, string, time.Time, ledger.Kind) (*ledger.Entry, error) {
	return nil, nil
}

func (r *ledgerRepoStub) SumHoursForYear(_ context.Context, _ string, kind ledger.Kind, _ int) (float64, error) {
	if kind == ledger.KindVacation {
		return r.vacationUsed, nil
	}
	return 0, nil
}

func (r *ledgerRepoStub) ListByEmployee(context.Context, ledger.Filter) ([]ledger.Entry, error) {
	return nil, nil
}

func TestBookVacationWhileAllowanceLasts(t *testing.T) {
	hours := &ledgerRepoStub{vacationUsed: 440}
	b := NewBookingService(&settingsRepoStub{}, hours)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.AddVacationOrAbsence(context.Background(), "emp-1", date, 8))

	// 440 of the default 450 hours used leaves room for an 8h shift.
	require.Len(t, hours.added, 1)
	assert.Equal(t, ledger.KindVacation, hours.added[0].kind)
	assert.Equal(t, date, hours.added[0].date)
	assert.InDelta(t, 8.0, hours.added[0].hours, 1e-9)
}

func TestBookAbsenceWhenAllowanceExhausted(t *testing.T) {
	hours := &ledgerRepoStub{vacationUsed: 445}
	b := NewBookingService(&settingsRepoStub{}, hours)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.AddVacationOrAbsence(context.Background(), "emp-1", date, 8))

	require.Len(t, hours.added, 1)
	assert.Equal(t, ledger.KindAbsence, hours.added[0].kind)
	assert.InDelta(t, 8.0, hours.added[0].hours, 1e-9)
}

func TestBookVacationExactRemainderStillFits(t *testing.T) {
	hours := &ledgerRepoStub{vacationUsed: 442}
	b := NewBookingService(&settingsRepoStub{}, hours)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.AddVacationOrAbsence(context.Background(), "emp-1", date, 8))

	require.Len(t, hours.added, 1)
	assert.Equal(t, ledger.KindVacation, hours.added[0].kind)
}

func TestBookVacationConfiguredAllowance(t *testing.T) {
	daily := 8.0
	perYear := 30
	st := settings.Settings{DailyWorkingHours: &daily, VacationsPerYear: &perYear}

	// 30 days of 8h gives a 240h allowance.
	hours := &ledgerRepoStub{vacationUsed: 236}
	b := NewBookingService(&settingsRepoStub{current: st}, hours)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.AddVacationOrAbsence(context.Background(), "emp-1", date, 8))

	require.Len(t, hours.added, 1)
	assert.Equal(t, ledger.KindAbsence, hours.added[0].kind)
}
