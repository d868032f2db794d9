package hub

import (
	"context"
	"log"
	"time"
)

// StartSweeper runs the staleness sweep every interval until ctx is done.
func (h *Hub) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Printf("[Hub] Sweeper started (interval: %s)", interval)
		for {
			select {
			case <-ctx.Done():
				log.Println("[Hub] Sweeper stopped")
				return
			case <-ticker.C:
				h.sweep()
			}
		}
	}()
}

// sweep evicts expired cursors and clears idle drawing flags in every room.
// It emits no broadcast: members observe staleness through the next snapshot
// or update rather than sweep-driven traffic in otherwise idle rooms.
func (h *Hub) sweep() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now().UnixMilli()
	cursorTTL := h.cursorTTL.Milliseconds()
	drawingTTL := h.drawingTTL.Milliseconds()

	evicted := 0
	for _, room := range h.rooms {
		for id, cur := range room.Cursors {
			if now-cur.LastActive > cursorTTL {
				delete(room.Cursors, id)
				evicted++
			}
		}
		for _, p := range room.Participants {
			if p.IsDrawing && now-p.LastActive > drawingTTL {
				p.IsDrawing = false
			}
		}
	}

	if h.metrics != nil {
		h.metrics.SweepRuns.Inc()
		h.metrics.CursorsEvicted.Add(float64(evicted))
	}
	if evicted > 0 {
		log.Printf("[Hub] Sweep evicted %d stale cursors", evicted)
	}
}
