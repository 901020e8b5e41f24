package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ituna-edu/portal-api/internal/models"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type notificationStore interface {
	Notifications(ctx context.Context) []models.Notification
	MarkAllNotificationsRead(ctx context.Context) error
}

// NotificationService exposes the portal inbox.
type NotificationService struct {
	store  notificationStore
	logger *zap.Logger
}

// NewNotificationService constructs the notification service.
func NewNotificationService(st notificationStore, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{store: st, logger: logger}
}

// List returns every notification in seed order along with the unread count.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, int) {
	notifications := s.store.Notifications(ctx)
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return notifications, unread
}

// MarkAllRead flags every notification as read. Idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.store.MarkAllNotificationsRead(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark notifications read")
	}
	return nil
}
