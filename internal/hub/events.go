package hub

import "whiteboard-backend/internal/model"

// Inbound event types
const (
	EventJoinRoom      = "join-room"
	EventDrawingUpdate = "drawing-update"
	EventCursorMove    = "cursor-move"
	EventEmojiReaction = "emoji-reaction"
	EventClearCanvas   = "clear-canvas"
)

// Outbound event types (drawing-update and emoji-reaction are echoed under
// their inbound names)
const (
	EventRoomState     = "room-state"
	EventUserJoined    = "user-joined"
	EventCursorUpdate  = "cursor-update"
	EventCanvasCleared = "canvas-cleared"
	EventUserLeft      = "user-left"
)

// RoomStatePayload 입장 직후 전송되는 방 전체 스냅샷
type RoomStatePayload struct {
	Users   []*model.Participant `json:"users"`
	Lines   []model.Stroke       `json:"lines"`
	Cursors []*model.Cursor      `json:"cursors"`
}

// UserJoinedPayload 다른 참가자에게 알리는 입장 이벤트
type UserJoinedPayload struct {
	User  *model.Participant   `json:"user"`
	Users []*model.Participant `json:"users"`
}

// UserLeftPayload 퇴장 이벤트
type UserLeftPayload struct {
	UserID string               `json:"userId"`
	Users  []*model.Participant `json:"users"`
}
