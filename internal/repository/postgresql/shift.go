package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// Create implements shift.Repository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_minutes, end_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, int(s.StartTime), int(s.EndTime)).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.Repository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_minutes, end_minutes, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	var startMinutes, endMinutes int
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &startMinutes, &endMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	s.StartTime = shift.TimeOfDay(startMinutes)
	s.EndTime = shift.TimeOfDay(endMinutes)
	return s, nil
}

// List implements shift.Repository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_minutes, end_minutes, created_at, updated_at
		FROM shifts
		ORDER BY start_minutes
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// Update implements shift.Repository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_minutes = $3, end_minutes = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, int(s.StartTime), int(s.EndTime))
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Delete implements shift.Repository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// GetByEmployee implements shift.Repository.
func (r *shiftRepository) GetByEmployee(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_minutes, s.end_minutes, s.created_at, s.updated_at
		FROM shifts s
		JOIN shift_assignments sa ON sa.shift_id = s.id
		WHERE sa.employee_id = $1
		ORDER BY s.start_minutes
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts by employee: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		var startMinutes, endMinutes int
		if err := rows.Scan(&s.ID, &s.Name, &startMinutes, &endMinutes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.StartTime = shift.TimeOfDay(startMinutes)
		s.EndTime = shift.TimeOfDay(endMinutes)
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create implements shift.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, shift_id) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.ShiftID).Scan(&a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAlreadyAssigned
		}
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// Delete implements shift.AssignmentRepository.
func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}

// ListByEmployee implements shift.AssignmentRepository.
func (r *assignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, created_at
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments by employee: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByShiftStart implements shift.AssignmentRepository.
func (r *assignmentRepository) ListByShiftStart(ctx context.Context, start shift.TimeOfDay) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.created_at
		FROM shift_assignments sa
		JOIN shifts s ON s.id = sa.shift_id
		WHERE s.start_minutes = $1
		ORDER BY sa.employee_id
	`

	rows, err := q.Query(ctx, query, int(start))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments by shift start: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func scanAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.ShiftID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
