package hub

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Sender writes a single WebSocket frame. *websocket.Conn satisfies it; tests
// substitute a recording stub.
type Sender interface {
	WriteMessage(messageType int, data []byte) error
}

// Client is one live connection as seen by the hub. The transport layer
// assigns the ID and owns the read side; the hub only ever writes.
type Client struct {
	ID      string
	conn    Sender
	writeMu sync.Mutex
}

// NewClient wraps an accepted connection under its transport-assigned id.
func NewClient(id string, conn Sender) *Client {
	return &Client{ID: id, conn: conn}
}

// wsEnvelope is the outbound frame format: {"type": ..., "payload": ...}
type wsEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Send marshals and writes one event frame. Writes are serialized per
// connection so concurrent broadcasts never interleave frames.
func (c *Client) Send(event string, payload any) error {
	data, err := json.Marshal(wsEnvelope{Type: event, Payload: payload})
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}
