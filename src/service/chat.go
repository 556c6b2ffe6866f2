package service

import (
	"context"
	"strings"

	"mentorship-service/src/models"
)

// MessageStore is the persistence surface for chat messages.
type MessageStore interface {
	Create(ctx context.Context, senderID, recipientID, content string) (*models.Message, error)
	ListConversation(ctx context.Context, userA, userB string, limit, offset int) ([]models.Message, error)
}

// ChatService persists direct messages and serves conversation history.
// Live delivery is the hub's concern; persistence happens regardless of
// whether the recipient is online.
type ChatService struct {
	messages MessageStore
}

func NewChatService(messages MessageStore) *ChatService {
	return &ChatService{
		messages: messages,
	}
}

// Save persists one direct message.
func (s *ChatService) Save(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" || recipientID == "" {
		return nil, models.ErrMissingField
	}
	return s.messages.Create(ctx, senderID, recipientID, content)
}

// Conversation returns the messages exchanged between the caller and a peer
// in chronological order.
func (s *ChatService) Conversation(ctx context.Context, callerID, peerID string, limit, offset int) ([]models.Message, error) {
	return s.messages.ListConversation(ctx, callerID, peerID, limit, offset)
}
