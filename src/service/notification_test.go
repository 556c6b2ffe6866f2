package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

type fakeNotificationStore struct {
	created []*models.Notification
	read    []string
	err     error
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	n.ID = "notif-1"
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationStore) ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(ctx context.Context, id, userID string) error {
	f.read = append(f.read, id)
	return nil
}

type fakePublisher struct {
	exchanges []string
	bodies    [][]byte
	err       error
}

func (f *fakePublisher) Publish(exchange string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.bodies = append(f.bodies, body)
	return nil
}

func TestNotifyStoresAndPublishes(t *testing.T) {
	store := &fakeNotificationStore{}
	publisher := &fakePublisher{}
	svc := NewNotificationService(store, publisher)

	err := svc.Notify(context.Background(), &models.Notification{
		UserID: "mentee-1",
		Type:   models.NotifySessionScheduled,
		Title:  "Session Scheduled",
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	require.Len(t, publisher.bodies, 1)
	assert.Equal(t, NotificationExchange, publisher.exchanges[0])

	var event models.Notification
	require.NoError(t, json.Unmarshal(publisher.bodies[0], &event))
	assert.Equal(t, "mentee-1", event.UserID)
	assert.Equal(t, models.NotifySessionScheduled, event.Type)
}

func TestNotifyWithoutPublisher(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, nil)

	err := svc.Notify(context.Background(), &models.Notification{UserID: "mentee-1"})
	require.NoError(t, err)
	assert.Len(t, store.created, 1)
}

func TestNotifySwallowsPublishFailure(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, &fakePublisher{err: errors.New("broker down")})

	err := svc.Notify(context.Background(), &models.Notification{UserID: "mentee-1"})
	require.NoError(t, err)
	assert.Len(t, store.created, 1)
}

func TestNotifyPropagatesStoreFailure(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{err: errors.New("db down")}, &fakePublisher{})

	err := svc.Notify(context.Background(), &models.Notification{UserID: "mentee-1"})
	assert.Error(t, err)
}
