package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	config Config

	queue  chan notification.CreateNotificationRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a notification sink backed by a
// background worker that batches inserts.
func NewNotificationService(repo notification.Repository, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		config: cfg,
		queue:  make(chan notification.CreateNotificationRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *service) worker() {
	defer s.wg.Done()

	batch := make([]notification.CreateNotificationRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]*notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = toEntity(req)
		}

		if err := s.repo.CreateBatch(ctx, notifications); err != nil {
			slog.Error("failed to batch insert notifications", "count", len(notifications), "error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued before flushing.
			for {
				select {
				case req := <-s.queue:
					batch = append(batch, req)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Notify implements notification.Service.
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) error {
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Queue full, insert directly.
		return s.repo.Create(ctx, toEntity(req))
	}
}

// NotifyBatch implements notification.Service.
func (s *service) NotifyBatch(ctx context.Context, reqs []notification.CreateNotificationRequest) error {
	for _, req := range reqs {
		if err := s.Notify(ctx, req); err != nil {
			slog.Error("failed to queue notification", "employee_id", req.EmployeeID, "error", err)
		}
	}
	return nil
}

// Stop implements notification.Service.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func toEntity(req notification.CreateNotificationRequest) *notification.Notification {
	return &notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		ShiftStart: req.ShiftStart,
		ShiftEnd:   req.ShiftEnd,
		Title:      req.Title,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}
}
