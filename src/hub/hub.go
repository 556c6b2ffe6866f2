package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"mentorship-service/src/models"
)

// MessageSaver persists an inbound chat message before delivery.
type MessageSaver interface {
	Save(ctx context.Context, senderID, recipientID, content string) (*models.Message, error)
}

// Envelope is one inbound message routed through the hub.
type Envelope struct {
	SenderID    string
	RecipientID string
	Content     string
}

// Hub routes direct messages between connected clients. Every message is
// persisted first; live delivery only happens when the recipient is
// currently connected.
type Hub struct {
	ctx        context.Context
	clients    map[string]*Client
	inbox      chan Envelope
	register   chan *Client
	unregister chan *Client
	store      MessageSaver
	mutex      sync.RWMutex
}

func NewHub(ctx context.Context, store MessageSaver) *Hub {
	return &Hub{
		ctx:        ctx,
		clients:    make(map[string]*Client),
		inbox:      make(chan Envelope),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		store:      store,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			slog.Info("Chat hub shutting down")
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case msg := <-h.inbox:
			h.dispatchMessage(msg)
		}
	}
}

// Register attaches a connected client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	// A reconnect replaces the previous connection for the same user.
	if previous, ok := h.clients[client.UserID()]; ok {
		previous.Close()
	}
	h.clients[client.UserID()] = client
	slog.Info("Chat client connected", "user_id", client.UserID(), "total_clients", len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if current, ok := h.clients[client.UserID()]; ok && current == client {
		delete(h.clients, client.UserID())
		client.Close()
	}
	slog.Info("Chat client disconnected", "user_id", client.UserID(), "total_clients", len(h.clients))
}

func (h *Hub) dispatchMessage(msg Envelope) {
	stored, err := h.store.Save(h.ctx, msg.SenderID, msg.RecipientID, msg.Content)
	if err != nil {
		slog.Warn("Dropping undeliverable chat message",
			"sender_id", msg.SenderID,
			"recipient_id", msg.RecipientID,
			"error", err)
		return
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		slog.Error("Failed to encode chat message", "message_id", stored.ID, "error", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if recipient, ok := h.clients[msg.RecipientID]; ok {
		recipient.Send(payload)
	}
	// Echo back so the sender's other tabs stay in sync.
	if sender, ok := h.clients[msg.SenderID]; ok {
		sender.Send(payload)
	}
}
