package hub

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorship-service/src/models"
)

type fakeSaver struct {
	saved int
}

func (f *fakeSaver) Save(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	f.saved++
	return &models.Message{
		ID:          fmt.Sprintf("msg-%d", f.saved),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}, nil
}

func TestSendDropsSlowConsumer(t *testing.T) {
	client := NewClient("user-1", nil, nil)

	for i := 0; i < cap(client.send); i++ {
		client.Send([]byte("payload"))
	}

	// Overflow closes the client; further sends are discarded, not panics.
	assert.NotPanics(t, func() {
		client.Send([]byte("overflow"))
		client.Send([]byte("after close"))
	})

	delivered := 0
	for range client.send {
		delivered++
	}
	assert.Equal(t, cap(client.send), delivered)
}

func TestCloseIsIdempotent(t *testing.T) {
	client := NewClient("user-1", nil, nil)
	assert.NotPanics(t, func() {
		client.Close()
		client.Close()
		client.Send([]byte("after close"))
	})
}

func TestHubSurvivesDroppedClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(ctx, &fakeSaver{})
	go h.Run()

	slow := NewClient("slow", nil, h)
	h.Register(slow)
	peer := NewClient("peer", nil, h)
	h.Register(peer)

	// Nothing drains slow's buffer; one extra message tips it over and the
	// hub must keep routing afterwards. The sender is offline so the echo
	// path stays out of the way.
	for i := 0; i < cap(slow.send)+2; i++ {
		h.inbox <- Envelope{SenderID: "offline", RecipientID: "slow", Content: "hi"}
	}

	h.inbox <- Envelope{SenderID: "offline", RecipientID: "peer", Content: "still alive"}

	select {
	case payload := <-peer.send:
		require.Contains(t, string(payload), "still alive")
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after dropping a slow consumer")
	}
}
