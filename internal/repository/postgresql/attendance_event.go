package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepository{db: db}
}

// Create implements attendance.EventRepository.
func (r *attendanceEventRepository) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, employee_id, timestamp, latitude, longitude, kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeID, e.Timestamp, e.Latitude, e.Longitude, string(e.Kind),
	).Scan(&e.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return e, nil
}

// ExistsInRange implements attendance.EventRepository.
func (r *attendanceEventRepository) ExistsInRange(ctx context.Context, employeeID string, kind attendance.Kind, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_events
			WHERE employee_id = $1 AND kind = $2 AND timestamp >= $3 AND timestamp <= $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, string(kind), from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check events in range: %w", err)
	}
	return exists, nil
}

// ListByEmployeeBetween implements attendance.EventRepository.
func (r *attendanceEventRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, timestamp, latitude, longitude, kind, created_at
		FROM attendance_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by employee: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		var kind string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Latitude, &e.Longitude, &kind, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		e.Kind = attendance.Kind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}

// List implements attendance.EventRepository.
func (r *attendanceEventRepository) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argNum := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argNum)
		args = append(args, *filter.EmployeeID)
		argNum++
	}
	if filter.Kind != nil {
		where += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, string(*filter.Kind))
		argNum++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND timestamp >= $%d::date", argNum)
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND timestamp < $%d::date + INTERVAL '1 day'", argNum)
		args = append(args, *filter.EndDate)
		argNum++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_events " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, timestamp, latitude, longitude, kind, created_at
		FROM attendance_events
		%s
		ORDER BY timestamp DESC
		LIMIT $%d OFFSET $%d
	`, where, argNum, argNum+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		var kind string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Latitude, &e.Longitude, &kind, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		e.Kind = attendance.Kind(kind)
		events = append(events, e)
	}
	return events, total, rows.Err()
}
