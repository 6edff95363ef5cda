package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/holiday"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

// Create implements holiday.Repository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO official_holidays (id, name, date)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	if err := q.QueryRow(ctx, query, h.ID, h.Name, h.Date).Scan(&h.CreatedAt); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return h, nil
}

// List implements holiday.Repository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, created_at
		FROM official_holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Delete implements holiday.Repository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM official_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// IsOfficialHoliday implements holiday.Repository.
func (r *holidayRepository) IsOfficialHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM official_holidays WHERE date = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check official holiday: %w", err)
	}
	return exists, nil
}
