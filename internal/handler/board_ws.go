package handler

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"whiteboard-backend/internal/hub"
	"whiteboard-backend/internal/model"
)

// BoardWSHandler 화이트보드 WebSocket 핸들러
type BoardWSHandler struct {
	hub *hub.Hub
}

// NewBoardWSHandler BoardWSHandler 생성
func NewBoardWSHandler(h *hub.Hub) *BoardWSHandler {
	return &BoardWSHandler{hub: h}
}

// BoardWSMessage WebSocket 메시지
type BoardWSMessage struct {
	Type    string          `json:"type"` // join-room, drawing-update, cursor-move, emoji-reaction, clear-canvas, ping
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinRoomPayload join-room 페이로드
type JoinRoomPayload struct {
	RoomID   string         `json:"roomId"`
	UserInfo model.UserInfo `json:"userInfo"`
}

// CursorMovePayload cursor-move 페이로드
type CursorMovePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandleWebSocket WebSocket 연결 처리
func (h *BoardWSHandler) HandleWebSocket(c *websocket.Conn) {
	// 패닉 복구 - 서버 크래시 방지
	defer func() {
		if r := recover(); r != nil {
			log.Printf("화이트보드 WebSocket 패닉 복구: %v", r)
		}
	}()

	client := hub.NewClient(uuid.New().String(), c)
	h.hub.Connect(client)

	log.Printf("화이트보드 클라이언트 연결: conn=%s", client.ID)

	// 연결 해제 시 정리: 참가자/커서 제거, 빈 방 정리, user-left 브로드캐스트
	defer func() {
		h.hub.Disconnect(client)
		c.Close()
		log.Printf("화이트보드 클라이언트 연결 해제: conn=%s", client.ID)
	}()

	// 메시지 수신 루프
	for {
		_, msgBytes, err := c.ReadMessage()
		if err != nil {
			break
		}

		var msg BoardWSMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "ping":
			// transport-level keepalive, answered even before join
			_ = client.Send("pong", nil)

		case hub.EventJoinRoom:
			var p JoinRoomPayload
			// unmarshal errors leave zero values; the relay is permissive
			_ = json.Unmarshal(msg.Payload, &p)
			h.hub.Join(client, p.RoomID, p.UserInfo)

		case hub.EventDrawingUpdate:
			h.hub.StrokeUpdate(client, msg.Payload)

		case hub.EventCursorMove:
			var p CursorMovePayload
			_ = json.Unmarshal(msg.Payload, &p)
			h.hub.CursorMove(client, p.X, p.Y)

		case hub.EventEmojiReaction:
			h.hub.Reaction(client, msg.Payload)

		case hub.EventClearCanvas:
			h.hub.ClearCanvas(client)
		}
	}
}
