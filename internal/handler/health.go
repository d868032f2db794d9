package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"whiteboard-backend/internal/hub"
)

// HealthHandler 헬스체크 핸들러
type HealthHandler struct {
	hub *hub.Hub
}

// NewHealthHandler HealthHandler 생성
func NewHealthHandler(h *hub.Hub) *HealthHandler {
	return &HealthHandler{hub: h}
}

// ComponentCheck 컴포넌트 상태
type ComponentCheck struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
	Conns  int    `json:"connections"`
}

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	Status    string                    `json:"status"`
	Timestamp string                    `json:"timestamp"`
	Checks    map[string]ComponentCheck `json:"checks"`
}

// Check 전체 상태 확인
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Checks: map[string]ComponentCheck{
			"hub": {
				Status: "healthy",
				Rooms:  h.hub.RoomCount(),
				Conns:  h.hub.ConnCount(),
			},
		},
	}

	return c.JSON(response)
}

// Liveness K8s liveness probe용 (단순 체크)
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.SendString("OK")
}
