package hub

import (
	"encoding/json"
	"log"

	"whiteboard-backend/internal/model"
)

// =============================================================================
// Session event handlers - one per inbound event kind
// =============================================================================

// Connect registers a freshly accepted connection. It is not a member of any
// room until a join-room event arrives.
func (h *Hub) Connect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.ID] = c

	if h.metrics != nil {
		h.metrics.ConnectionsTotal.Inc()
		h.metrics.ActiveConnections.Set(float64(len(h.clients)))
	}
}

// Join puts the connection into a room, creating it on first reference. The
// joiner gets the authoritative room snapshot; everyone already in the room
// gets a user-joined event. A join from an already-bound connection is
// dropped silently: rebinding would strand the participant record in the
// first room.
func (h *Hub) Join(c *Client, roomID string, profile model.UserInfo) {
	h.countEvent(EventJoinRoom)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, bound := h.registry[c.ID]; bound {
		if h.metrics != nil {
			h.metrics.EventsDropped.Inc()
		}
		return
	}

	room := h.getOrCreateRoom(roomID)
	now := h.now().UnixMilli()

	p := &model.Participant{
		ID:         c.ID,
		Nickname:   profile.Nickname,
		Emoji:      profile.Emoji,
		IsDrawing:  false,
		LastActive: now,
	}
	room.Participants[c.ID] = p
	h.registry[c.ID] = membership{roomID: roomID, profile: profile}

	h.deliver(c, EventRoomState, RoomStatePayload{
		Users:   room.users(),
		Lines:   room.Strokes,
		Cursors: room.liveCursors(now, h.cursorTTL.Milliseconds()),
	})

	h.broadcast(room, EventUserJoined, UserJoinedPayload{User: p, Users: room.users()}, c.ID)

	log.Printf("[Room %s] %s joined (conn %s), total: %d",
		roomID, profile.Nickname, c.ID, len(room.Participants))
}

// StrokeUpdate upserts a stroke by its client-assigned id and relays it to
// the other room members. The sender keeps its authoritative local copy.
func (h *Hub) StrokeUpdate(c *Client, raw json.RawMessage) {
	h.countEvent(EventDrawingUpdate)

	h.mu.Lock()
	defer h.mu.Unlock()

	room, _, ok := h.roomFor(c)
	if !ok {
		return
	}

	room.upsertStroke(model.NewStroke(raw))

	if p := room.Participants[c.ID]; p != nil {
		p.IsDrawing = true
		p.LastActive = h.now().UnixMilli()
	}

	h.broadcast(room, EventDrawingUpdate, raw, c.ID)
}

// CursorMove refreshes the caller's cursor and relays it to the other members.
func (h *Hub) CursorMove(c *Client, x, y float64) {
	h.countEvent(EventCursorMove)

	h.mu.Lock()
	defer h.mu.Unlock()

	room, m, ok := h.roomFor(c)
	if !ok {
		return
	}

	cur := &model.Cursor{
		UserID:     c.ID,
		X:          x,
		Y:          y,
		Nickname:   m.profile.Nickname,
		Emoji:      m.profile.Emoji,
		LastActive: h.now().UnixMilli(),
	}
	room.Cursors[c.ID] = cur

	h.broadcast(room, EventCursorUpdate, cur, c.ID)
}

// Reaction relays an emoji reaction without touching room state. The sender
// is included so the command is visibly acknowledged everywhere.
func (h *Hub) Reaction(c *Client, raw json.RawMessage) {
	h.countEvent(EventEmojiReaction)

	h.mu.Lock()
	defer h.mu.Unlock()

	room, m, ok := h.roomFor(c)
	if !ok {
		return
	}

	// Merge the identity fields into whatever the client sent. Non-object
	// payloads collapse to just the identity fields.
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	out["userId"] = c.ID
	out["userInfo"] = m.profile

	h.broadcast(room, EventEmojiReaction, out, "")
}

// ClearCanvas truncates the room's stroke log and notifies everyone,
// sender included.
func (h *Hub) ClearCanvas(c *Client) {
	h.countEvent(EventClearCanvas)

	h.mu.Lock()
	defer h.mu.Unlock()

	room, _, ok := h.roomFor(c)
	if !ok {
		return
	}

	room.Strokes = room.Strokes[:0]

	h.broadcast(room, EventCanvasCleared, struct{}{}, "")
	log.Printf("[Room %s] Canvas cleared by %s", room.ID, c.ID)
}

// Disconnect tears the connection down in any state: drop the participant
// and cursor, unbind, and remove the room when it just became empty. The
// user-left broadcast is skipped entirely when the room was removed.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c.ID)
	if h.metrics != nil {
		h.metrics.ActiveConnections.Set(float64(len(h.clients)))
	}

	m, ok := h.registry[c.ID]
	if !ok {
		return // never joined a room
	}
	delete(h.registry, c.ID)

	room := h.rooms[m.roomID]
	if room == nil {
		return
	}

	delete(room.Participants, c.ID)
	delete(room.Cursors, c.ID)

	if len(room.Participants) == 0 {
		h.removeRoom(room.ID)
		return
	}

	h.broadcast(room, EventUserLeft, UserLeftPayload{UserID: c.ID, Users: room.users()}, c.ID)
	log.Printf("[Room %s] %s left, remaining: %d", room.ID, c.ID, len(room.Participants))
}
