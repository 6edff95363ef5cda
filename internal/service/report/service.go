package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
)

// ReportService exposes the hour ledger for payroll export.
type ReportService interface {
	HourLedger(ctx context.Context, employeeID string, from, to string, kind *ledger.Kind) (ledger.ReportResponse, error)
}

type reportServiceImpl struct {
	employees employee.Repository
	hours     ledger.Repository
}

func NewReportService(employeeRepo employee.Repository, ledgerRepo ledger.Repository) ReportService {
	return &reportServiceImpl{
		employees: employeeRepo,
		hours:     ledgerRepo,
	}
}

// HourLedger implements ReportService. The from/to bounds are
// YYYY-MM-DD and inclusive; empty bounds default to the current month.
func (s *reportServiceImpl) HourLedger(ctx context.Context, employeeID string, from, to string, kind *ledger.Kind) (ledger.ReportResponse, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return ledger.ReportResponse{}, err
	}

	now := time.Now().UTC()
	fromDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	toDate := fromDate.AddDate(0, 1, -1)

	var err error
	if from != "" {
		fromDate, err = time.Parse("2006-01-02", from)
		if err != nil {
			return ledger.ReportResponse{}, fmt.Errorf("invalid from date: %w", err)
		}
	}
	if to != "" {
		toDate, err = time.Parse("2006-01-02", to)
		if err != nil {
			return ledger.ReportResponse{}, fmt.Errorf("invalid to date: %w", err)
		}
	}

	entries, err := s.hours.ListByEmployee(ctx, ledger.Filter{
		EmployeeID: employeeID,
		From:       fromDate,
		To:         toDate,
		Kind:       kind,
	})
	if err != nil {
		return ledger.ReportResponse{}, err
	}

	resp := ledger.ReportResponse{
		EmployeeID: employeeID,
		From:       fromDate.Format("2006-01-02"),
		To:         toDate.Format("2006-01-02"),
		Entries:    make([]ledger.EntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.TotalHours += e.Hours
		resp.Entries[i] = ledger.EntryResponse{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Date:       e.Date.Format("2006-01-02"),
			Kind:       e.Kind,
			Hours:      e.Hours,
		}
	}
	return resp, nil
}
