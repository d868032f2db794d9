package model

import "encoding/json"

// UserInfo 참가자 프로필 (join 시 클라이언트가 제시)
type UserInfo struct {
	Nickname string `json:"nickname"`
	Emoji    string `json:"emoji"`
}

// Participant 방에 입장한 연결의 존재 정보
type Participant struct {
	ID         string `json:"id"`
	Nickname   string `json:"nickname"`
	Emoji      string `json:"emoji"`
	IsDrawing  bool   `json:"isDrawing"`
	LastActive int64  `json:"lastActive"` // unix millis
}

// Cursor 참가자의 실시간 포인터 위치
type Cursor struct {
	UserID     string  `json:"userId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Nickname   string  `json:"nickname"`
	Emoji      string  `json:"emoji"`
	LastActive int64   `json:"lastActive"` // unix millis
}

// Stroke keeps the client payload verbatim; only the id is interpreted for
// the in-place upsert. Drawing attributes (points, color, width) pass through.
type Stroke struct {
	ID  string
	Raw json.RawMessage
}

// MarshalJSON emits the original client payload unchanged.
func (s Stroke) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

// NewStroke extracts the client-assigned id from a drawing-update payload.
// Payloads without an id yield an empty id and still upsert against each
// other, matching the relay's permissive contract.
func NewStroke(raw json.RawMessage) Stroke {
	var head struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(raw, &head)
	return Stroke{ID: head.ID, Raw: raw}
}
