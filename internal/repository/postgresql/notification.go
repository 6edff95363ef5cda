package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, shift_id, shift_start_minutes, shift_end_minutes, title, message, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.EmployeeID, n.ShiftID, int(n.ShiftStart), int(n.ShiftEnd), n.Title, n.Message, n.IsRead,
	).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// CreateBatch implements notification.Repository. Batches from the async
// worker are flushed in one round trip.
func (r *notificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_id, shift_id, shift_start_minutes, shift_end_minutes, title, message, is_read)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::int[], $5::int[], $6::text[], $7::text[], $8::bool[])
	`

	ids := make([]string, len(ns))
	employeeIDs := make([]string, len(ns))
	shiftIDs := make([]string, len(ns))
	starts := make([]int, len(ns))
	ends := make([]int, len(ns))
	titles := make([]string, len(ns))
	messages := make([]string, len(ns))
	reads := make([]bool, len(ns))
	for i, n := range ns {
		ids[i] = n.ID
		employeeIDs[i] = n.EmployeeID
		shiftIDs[i] = n.ShiftID
		starts[i] = int(n.ShiftStart)
		ends[i] = int(n.ShiftEnd)
		titles[i] = n.Title
		messages[i] = n.Message
		reads[i] = n.IsRead
	}

	_, err := q.Exec(ctx, query, ids, employeeIDs, shiftIDs, starts, ends, titles, messages, reads)
	if err != nil {
		return fmt.Errorf("failed to create notification batch: %w", err)
	}
	return nil
}

// ListByEmployee implements notification.Repository.
func (r *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, shift_start_minutes, shift_end_minutes, title, message, is_read, created_at
		FROM notifications
		WHERE employee_id = $1
	`
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var startMinutes, endMinutes int
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.ShiftID, &startMinutes, &endMinutes, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.ShiftStart = shift.TimeOfDay(startMinutes)
		n.ShiftEnd = shift.TimeOfDay(endMinutes)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements notification.Repository.
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}
