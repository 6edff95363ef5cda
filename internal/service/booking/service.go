package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
)

// ServiceImpl books a missed shift as vacation while the employee still
// has annual vacation hours left, and as absence otherwise.
type ServiceImpl struct {
	settings settings.Repository
	hours    ledger.Repository
}

func NewBookingService(settingsRepo settings.Repository, ledgerRepo ledger.Repository) ledger.Booker {
	return &ServiceImpl{
		settings: settingsRepo,
		hours:    ledgerRepo,
	}
}

// AddVacationOrAbsence implements ledger.Booker.
func (b *ServiceImpl) AddVacationOrAbsence(ctx context.Context, employeeID string, date time.Time, shiftHours float64) error {
	st, err := b.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load general settings: %w", err)
	}

	allowance := st.AnnualVacationHoursOrDefault()
	used, err := b.hours.SumHoursForYear(ctx, employeeID, ledger.KindVacation, date.Year())
	if err != nil {
		return fmt.Errorf("failed to sum booked vacation hours: %w", err)
	}

	kind := ledger.KindAbsence
	if allowance-used >= shiftHours {
		kind = ledger.KindVacation
	}

	if err := b.hours.AddHours(ctx, employeeID, date, kind, shiftHours); err != nil {
		return fmt.Errorf("failed to book %s hours: %w", kind, err)
	}

	slog.Info("missed shift booked",
		"employee_id", employeeID,
		"date", date.Format("2006-01-02"),
		"kind", kind,
		"hours", shiftHours,
		"remaining_allowance", allowance-used)
	return nil
}
