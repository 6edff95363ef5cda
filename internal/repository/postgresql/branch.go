package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/branch"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.Repository {
	return &branchRepository{db: db}
}

// Create implements branch.Repository.
func (r *branchRepository) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, b.ID, b.Name, b.Latitude, b.Longitude, b.RadiusMeters).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}
	return b, nil
}

// GetByID implements branch.Repository.
func (r *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Latitude, &b.Longitude, &b.RadiusMeters, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch by ID: %w", err)
	}
	return b, nil
}

// List implements branch.Repository.
func (r *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_meters, created_at, updated_at
		FROM branches
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Latitude, &b.Longitude, &b.RadiusMeters, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// Update implements branch.Repository.
func (r *branchRepository) Update(ctx context.Context, b branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches
		SET name = $2, latitude = $3, longitude = $4, radius_meters = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, b.ID, b.Name, b.Latitude, b.Longitude, b.RadiusMeters)
	if err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}
	return nil
}

// Delete implements branch.Repository.
func (r *branchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}
	return nil
}
