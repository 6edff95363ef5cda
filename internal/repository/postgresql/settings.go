package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/settings"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// Get implements settings.Repository. The table holds a single row with
// id = 1; an absent row means nothing has ever been configured and the
// zero Settings carries the defaults.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT daily_working_hours, vacations_per_year, updated_at
		FROM general_settings
		WHERE id = 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(&s.DailyWorkingHours, &s.VacationsPerYear, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Update implements settings.Repository.
func (r *settingsRepository) Update(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO general_settings (id, daily_working_hours, vacations_per_year)
		VALUES (1, $1, $2)
		ON CONFLICT (id)
		DO UPDATE SET
			daily_working_hours = EXCLUDED.daily_working_hours,
			vacations_per_year = EXCLUDED.vacations_per_year,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, s.DailyWorkingHours, s.VacationsPerYear).Scan(&s.UpdatedAt)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return s, nil
}
