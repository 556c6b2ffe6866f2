package models

import "time"

// Message is one direct chat message between two users. Messages are always
// persisted; live delivery over the websocket hub is best effort.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
