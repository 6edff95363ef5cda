package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []*Notification) error
	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}
