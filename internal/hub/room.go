package hub

import "whiteboard-backend/internal/model"

// Room represents a single collaborative session: participant roster, ordered
// stroke log and live cursor set. Rooms are only ever constructed by the hub,
// and all access is serialized by the hub lock.
type Room struct {
	ID           string
	Participants map[string]*model.Participant // connection id -> participant
	Strokes      []model.Stroke                // first-write order, upserted in place
	Cursors      map[string]*model.Cursor      // connection id -> cursor
}

func newRoom(id string) *Room {
	return &Room{
		ID:           id,
		Participants: make(map[string]*model.Participant),
		Strokes:      []model.Stroke{},
		Cursors:      make(map[string]*model.Cursor),
	}
}

// upsertStroke replaces the stroke with the same id in place, keeping its
// position in the sequence, or appends when the id is unseen. Returns true
// when an existing stroke was replaced.
func (r *Room) upsertStroke(s model.Stroke) bool {
	for i := range r.Strokes {
		if r.Strokes[i].ID == s.ID {
			r.Strokes[i] = s
			return true
		}
	}
	r.Strokes = append(r.Strokes, s)
	return false
}

// users returns the roster as a slice for wire payloads.
func (r *Room) users() []*model.Participant {
	users := make([]*model.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		users = append(users, p)
	}
	return users
}

// liveCursors returns the cursors still within their TTL at nowMillis, so a
// join snapshot never serves presence data the sweeper is about to reclaim.
func (r *Room) liveCursors(nowMillis, ttlMillis int64) []*model.Cursor {
	cursors := make([]*model.Cursor, 0, len(r.Cursors))
	for _, cur := range r.Cursors {
		if nowMillis-cur.LastActive > ttlMillis {
			continue
		}
		cursors = append(cursors, cur)
	}
	return cursors
}
