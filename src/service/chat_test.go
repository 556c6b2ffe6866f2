package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

type fakeMessageStore struct {
	saved []models.Message
}

func (f *fakeMessageStore) Create(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	msg := models.Message{SenderID: senderID, RecipientID: recipientID, Content: content}
	f.saved = append(f.saved, msg)
	return &msg, nil
}

func (f *fakeMessageStore) ListConversation(ctx context.Context, userA, userB string, limit, offset int) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.saved {
		if (m.SenderID == userA && m.RecipientID == userB) || (m.SenderID == userB && m.RecipientID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestChatSave(t *testing.T) {
	store := &fakeMessageStore{}
	svc := NewChatService(store)

	msg, err := svc.Save(context.Background(), "user-1", "user-2", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)
	assert.Len(t, store.saved, 1)
}

func TestChatSaveRejectsEmptyInput(t *testing.T) {
	svc := NewChatService(&fakeMessageStore{})

	_, err := svc.Save(context.Background(), "user-1", "user-2", "   ")
	assert.ErrorIs(t, err, models.ErrMissingField)

	_, err = svc.Save(context.Background(), "user-1", "", "hello")
	assert.ErrorIs(t, err, models.ErrMissingField)
}

func TestChatConversationBothDirections(t *testing.T) {
	store := &fakeMessageStore{}
	svc := NewChatService(store)

	_, err := svc.Save(context.Background(), "user-1", "user-2", "hi")
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "user-2", "user-1", "hey")
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "user-1", "user-3", "unrelated")
	require.NoError(t, err)

	messages, err := svc.Conversation(context.Background(), "user-1", "user-2", 50, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
