package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/ledger"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type hourLedgerRepository struct {
	db *database.DB
}

func NewHourLedgerRepository(db *database.DB) ledger.Repository {
	return &hourLedgerRepository{db: db}
}

// AddHours implements ledger.Repository. The upsert is atomic: concurrent
// bookings for the same (employee, date, kind) serialize on the unique
// index and both additions land.
func (r *hourLedgerRepository) AddHours(ctx context.Context, employeeID string, date time.Time, kind ledger.Kind, hours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_ledger (id, employee_id, date, kind, hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date, kind)
		DO UPDATE SET hours = hour_ledger.hours + EXCLUDED.hours, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.NewString(), employeeID, date, string(kind), hours)
	if err != nil {
		return fmt.Errorf("failed to add ledger hours: %w", err)
	}
	return nil
}

// SetHours implements ledger.Repository.
func (r *hourLedgerRepository) SetHours(ctx context.Context, employeeID string, date time.Time, kind ledger.Kind, hours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hour_ledger (id, employee_id, date, kind, hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date, kind)
		DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.NewString(), employeeID, date, string(kind), hours)
	if err != nil {
		return fmt.Errorf("failed to set ledger hours: %w", err)
	}
	return nil
}

// Get implements ledger.Repository.
func (r *hourLedgerRepository) Get(ctx context.Context, employeeID string, date time.Time, kind ledger.Kind) (*ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, kind, hours, created_at, updated_at
		FROM hour_ledger
		WHERE employee_id = $1 AND date = $2 AND kind = $3
	`

	var e ledger.Entry
	var kindStr string
	err := q.QueryRow(ctx, query, employeeID, date, string(kind)).Scan(
		&e.ID, &e.EmployeeID, &e.Date, &kindStr, &e.Hours, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	e.Kind = ledger.Kind(kindStr)
	return &e, nil
}

// SumHoursForYear implements ledger.Repository.
func (r *hourLedgerRepository) SumHoursForYear(ctx context.Context, employeeID string, kind ledger.Kind, year int) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM hour_ledger
		WHERE employee_id = $1 AND kind = $2 AND EXTRACT(YEAR FROM date) = $3
	`

	var sum float64
	if err := q.QueryRow(ctx, query, employeeID, string(kind), year).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum ledger hours: %w", err)
	}
	return sum, nil
}

// ListByEmployee implements ledger.Repository.
func (r *hourLedgerRepository) ListByEmployee(ctx context.Context, filter ledger.Filter) ([]ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE employee_id = $1"
	args := []any{filter.EmployeeID}
	argNum := 2

	if !filter.From.IsZero() {
		where += fmt.Sprintf(" AND date >= $%d", argNum)
		args = append(args, filter.From)
		argNum++
	}
	if !filter.To.IsZero() {
		where += fmt.Sprintf(" AND date <= $%d", argNum)
		args = append(args, filter.To)
		argNum++
	}
	if filter.Kind != nil {
		where += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, string(*filter.Kind))
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, kind, hours, created_at, updated_at
		FROM hour_ledger
		%s
		ORDER BY date, kind
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		var kindStr string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &kindStr, &e.Hours, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.Kind = ledger.Kind(kindStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
