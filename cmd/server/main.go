package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"whiteboard-backend/internal/config"
	"whiteboard-backend/internal/hub"
	"whiteboard-backend/internal/metrics"
	"whiteboard-backend/internal/server"
)

func main() {
	// 설정 로드
	cfg := config.Load()

	// 메트릭 등록
	m := metrics.NewMetrics()

	// 허브 생성 및 스위퍼 시작
	h := hub.New(hub.Options{
		CursorTTL:  cfg.Sweep.CursorTTL,
		DrawingTTL: cfg.Sweep.DrawingTTL,
	}, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	h.StartSweeper(ctx, cfg.Sweep.Interval)

	// 서버 생성 및 설정
	srv := server.New(cfg, h)
	srv.SetupMiddleware()
	srv.SetupRoutes()

	// 서버 시작
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
