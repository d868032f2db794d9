package hub

import (
	"log"
	"sync"
	"time"

	"whiteboard-backend/internal/metrics"
	"whiteboard-backend/internal/model"
)

// =============================================================================
// Hub - room store, connection registry and broadcast fan-out
// =============================================================================

// Presence TTL defaults. Cursors older than CursorTTL are evicted by the
// sweeper; drawing flags older than DrawingTTL are cleared.
const (
	DefaultCursorTTL     = 10 * time.Second
	DefaultDrawingTTL    = 5 * time.Second
	DefaultSweepInterval = 5 * time.Second
)

// membership bridges a bare connection id to its room and presented profile.
// It is the only place room membership is resolved for events that do not
// carry a room id.
type membership struct {
	roomID  string
	profile model.UserInfo
}

// Options carries the presence TTLs. Zero values fall back to the defaults.
type Options struct {
	CursorTTL  time.Duration
	DrawingTTL time.Duration
}

// Hub owns every room and connection binding in the process. One lock covers
// the whole store: an event handler mutates and fans out under it, so no
// handler ever observes a partially mutated room.
type Hub struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	registry map[string]membership // connection id -> binding, created on join
	clients  map[string]*Client    // connection id -> live connection

	cursorTTL  time.Duration
	drawingTTL time.Duration

	metrics *metrics.Metrics
	now     func() time.Time // swapped in tests
}

// New creates an empty hub. Metrics may be nil.
func New(opts Options, m *metrics.Metrics) *Hub {
	if opts.CursorTTL <= 0 {
		opts.CursorTTL = DefaultCursorTTL
	}
	if opts.DrawingTTL <= 0 {
		opts.DrawingTTL = DefaultDrawingTTL
	}

	return &Hub{
		rooms:      make(map[string]*Room),
		registry:   make(map[string]membership),
		clients:    make(map[string]*Client),
		cursorTTL:  opts.CursorTTL,
		drawingTTL: opts.DrawingTTL,
		metrics:    m,
		now:        time.Now,
	}
}

// GetOrCreateRoom returns the existing room or creates an empty one.
func (h *Hub) GetOrCreateRoom(roomID string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.getOrCreateRoom(roomID)
}

// RemoveRoom deletes a room; no-op when absent.
func (h *Hub) RemoveRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeRoom(roomID)
}

// RoomCount returns the number of rooms currently in the store.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// ConnCount returns the number of live connections, joined or not.
func (h *Hub) ConnCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// getOrCreateRoom expects the hub lock to be held.
func (h *Hub) getOrCreateRoom(roomID string) *Room {
	if room, exists := h.rooms[roomID]; exists {
		return room
	}

	room := newRoom(roomID)
	h.rooms[roomID] = room
	log.Printf("[Hub] Created room: %s", roomID)

	if h.metrics != nil {
		h.metrics.RoomsCreated.Inc()
		h.metrics.ActiveRooms.Set(float64(len(h.rooms)))
	}
	return room
}

// removeRoom expects the hub lock to be held.
func (h *Hub) removeRoom(roomID string) {
	if _, exists := h.rooms[roomID]; !exists {
		return
	}

	delete(h.rooms, roomID)
	log.Printf("[Hub] Removed room: %s", roomID)

	if h.metrics != nil {
		h.metrics.RoomsRemoved.Inc()
		h.metrics.ActiveRooms.Set(float64(len(h.rooms)))
	}
}

// roomFor resolves the caller's binding. A miss means the event arrived
// before join or after disconnect and must be dropped silently.
func (h *Hub) roomFor(c *Client) (*Room, membership, bool) {
	m, ok := h.registry[c.ID]
	if !ok {
		if h.metrics != nil {
			h.metrics.EventsDropped.Inc()
		}
		return nil, membership{}, false
	}

	room := h.rooms[m.roomID]
	if room == nil {
		return nil, membership{}, false
	}
	return room, m, true
}

// broadcast fans an event out to every connection currently joined to the
// room, skipping excludeID when set. The roster is read at call time, so
// mutations made earlier in the same handler are already visible.
func (h *Hub) broadcast(room *Room, event string, payload any, excludeID string) {
	for id := range room.Participants {
		if id == excludeID {
			continue
		}
		c := h.clients[id]
		if c == nil {
			// connection already torn down; the transport owns that race
			continue
		}
		h.deliver(c, event, payload)
		if h.metrics != nil {
			h.metrics.BroadcastsSent.Inc()
		}
	}
}

// deliver writes one frame to one connection, swallowing transport errors.
func (h *Hub) deliver(c *Client, event string, payload any) {
	if err := c.Send(event, payload); err != nil {
		log.Printf("[Hub] Failed to send %s to %s: %v", event, c.ID, err)
		if h.metrics != nil {
			h.metrics.SendErrors.Inc()
		}
	}
}

func (h *Hub) countEvent(event string) {
	if h.metrics != nil {
		h.metrics.EventsReceived.WithLabelValues(event).Inc()
	}
}
