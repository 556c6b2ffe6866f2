package hub

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// inboundMessage is the JSON frame a client sends over the socket.
type inboundMessage struct {
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

// Client is one user's websocket connection registered with the hub.
type Client struct {
	userID string
	conn   *websocket.Conn
	hub    *Hub
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(userID string, conn *websocket.Conn, h *Hub) *Client {
	return &Client{
		userID: userID,
		conn:   conn,
		hub:    h,
		send:   make(chan []byte, 256),
	}
}

func (c *Client) UserID() string {
	return c.userID
}

// ReadPump reads frames off the socket and feeds them into the hub until
// the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		if err := c.conn.Close(); err != nil {
			slog.Debug("failed to close websocket connection", "error", err)
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket error", "user_id", c.userID, "error", err)
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Warn("invalid websocket payload", "user_id", c.userID, "error", err)
			continue
		}
		if msg.RecipientID == "" || msg.Content == "" {
			continue
		}

		c.hub.inbox <- Envelope{
			SenderID:    c.userID,
			RecipientID: msg.RecipientID,
			Content:     msg.Content,
		}
	}
}

// WritePump drains the send channel onto the socket.
func (c *Client) WritePump() {
	defer func() {
		if err := c.conn.Close(); err != nil {
			slog.Debug("failed to close websocket connection", "error", err)
		}
	}()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// Send queues a payload for delivery, dropping the connection if its buffer
// is full. Sends after the client has been dropped are discarded, so the
// hub may keep routing to a stale map entry until ReadPump unregisters it.
func (c *Client) Send(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		c.closeLocked()
	}
}

// Close terminates the write pump. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *Client) closeLocked() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
