package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"mentorship-service/src/db"
	"mentorship-service/src/models"
)

// NotificationRepository handles all database operations for notifications.
type NotificationRepository struct {
	db *db.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(database *db.DB) *NotificationRepository {
	return &NotificationRepository{
		db: database,
	}
}

// Create inserts a notification row and returns it.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}
	dataRaw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (user_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, type, title, message, data, read, created_at
	`

	var created models.Notification
	var raw []byte
	err = r.db.GetConnection().QueryRowContext(ctx, query,
		n.UserID, n.Type, n.Title, n.Message, dataRaw).
		Scan(&created.ID, &created.UserID, &created.Type, &created.Title,
			&created.Message, &raw, &created.Read, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := json.Unmarshal(raw, &created.Data); err != nil {
		return nil, fmt.Errorf("failed to decode notification data: %w", err)
	}
	return &created, nil
}

// ListForUser returns the user's most recent notifications, capped at limit.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, data, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var raw []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &raw, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		if err := json.Unmarshal(raw, &n.Data); err != nil {
			return nil, fmt.Errorf("failed to decode notification data: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead marks one of the user's notifications as read. Marking another
// user's notification is a silent no-op, matching the listing scope.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	_, err := r.db.GetConnection().ExecContext(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
