package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// Create implements employee.Repository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, full_name, email, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, e.ID, e.FullName, e.Email, e.BranchID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, branch_id, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.Email, &e.BranchID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return e, nil
}

// List implements employee.Repository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, branch_id, created_at, updated_at
		FROM employees
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.BranchID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.Repository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, branch_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.FullName, e.Email, e.BranchID)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.Repository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
