package repository

import (
	"context"
	"fmt"

	"mentorship-service/src/db"
	"mentorship-service/src/models"
)

// MessageRepository handles all database operations for chat messages.
type MessageRepository struct {
	db *db.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(database *db.DB) *MessageRepository {
	return &MessageRepository{
		db: database,
	}
}

// Create persists a chat message and returns the stored row.
func (r *MessageRepository) Create(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, sender_id, recipient_id, content, created_at
	`

	var m models.Message
	err := r.db.GetConnection().QueryRowContext(ctx, query, senderID, recipientID, content).
		Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &m, nil
}

// ListConversation returns the messages exchanged between two users in
// chronological order.
func (r *MessageRepository) ListConversation(ctx context.Context, userA, userB string, limit, offset int) ([]models.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, content, created_at
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at ASC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.GetConnection().QueryContext(ctx, query, userA, userB, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
