package notification

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
)

// QueryService serves the read side of notifications for the API.
type QueryService interface {
	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type queryService struct {
	repo notification.Repository
}

func NewQueryService(repo notification.Repository) QueryService {
	return &queryService{repo: repo}
}

// ListByEmployee implements QueryService.
func (s *queryService) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]notification.NotificationResponse, error) {
	notifications, err := s.repo.ListByEmployee(ctx, employeeID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = notification.NotificationResponse{
			ID:         n.ID,
			EmployeeID: n.EmployeeID,
			ShiftID:    n.ShiftID,
			ShiftStart: n.ShiftStart.String(),
			ShiftEnd:   n.ShiftEnd.String(),
			Title:      n.Title,
			Message:    n.Message,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// MarkRead implements QueryService.
func (s *queryService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
