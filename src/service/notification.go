package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"mentorship-service/src/models"
	"mentorship-service/src/rabbitmq"
)

// NotificationExchange is the fanout exchange notification events are
// published to for out-of-band consumers (push gateways, audit).
const NotificationExchange = "notifications"

// NotificationStore is the persistence surface for notification rows.
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// NotificationService persists notifications and mirrors each one as a
// fanout event. It implements Notifier for the transition services.
type NotificationService struct {
	store     NotificationStore
	publisher rabbitmq.Publisher
}

// NewNotificationService creates a notification service. publisher may be
// nil, which disables event publishing.
func NewNotificationService(store NotificationStore, publisher rabbitmq.Publisher) *NotificationService {
	return &NotificationService{
		store:     store,
		publisher: publisher,
	}
}

// Notify persists the notification and publishes it as an event. The event
// publish is best effort: a broker failure is logged and swallowed so the
// notification row is the source of truth.
func (s *NotificationService) Notify(ctx context.Context, n *models.Notification) error {
	created, err := s.store.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if s.publisher != nil {
		body, err := json.Marshal(created)
		if err != nil {
			slog.Warn("Failed to encode notification event", "notification_id", created.ID, "error", err)
			return nil
		}
		if err := s.publisher.Publish(NotificationExchange, body); err != nil {
			slog.Warn("Failed to publish notification event",
				"notification_id", created.ID,
				"exchange", NotificationExchange,
				"error", err)
		}
	}
	return nil
}

// ListForUser returns the user's 20 most recent notifications.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.store.ListForUser(ctx, userID, 20)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.store.MarkRead(ctx, id, userID)
}
