package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the whiteboard relay
type Metrics struct {
	// Connection metrics
	ActiveConnections prometheus.Gauge
	ConnectionsTotal  prometheus.Counter

	// Room metrics
	ActiveRooms  prometheus.Gauge
	RoomsCreated prometheus.Counter
	RoomsRemoved prometheus.Counter

	// Event metrics
	EventsReceived *prometheus.CounterVec
	EventsDropped  prometheus.Counter
	BroadcastsSent prometheus.Counter
	SendErrors     prometheus.Counter

	// Sweeper metrics
	CursorsEvicted prometheus.Counter
	SweepRuns      prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ActiveConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "whiteboard_active_connections",
			Help: "Number of currently open WebSocket connections",
		}),
		ConnectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_connections_total",
			Help: "Total number of WebSocket connections accepted",
		}),
		ActiveRooms: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "whiteboard_active_rooms",
			Help: "Number of rooms currently held in the room store",
		}),
		RoomsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_rooms_created_total",
			Help: "Total number of rooms created",
		}),
		RoomsRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_rooms_removed_total",
			Help: "Total number of rooms removed after becoming empty",
		}),
		EventsReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "whiteboard_events_received_total",
			Help: "Total number of inbound session events by type",
		}, []string{"event"}),
		EventsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_events_dropped_total",
			Help: "Total number of events dropped for connections with no room binding",
		}),
		BroadcastsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_broadcasts_sent_total",
			Help: "Total number of event frames fanned out to room members",
		}),
		SendErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_send_errors_total",
			Help: "Total number of failed WebSocket writes",
		}),
		CursorsEvicted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_cursors_evicted_total",
			Help: "Total number of stale cursors evicted by the sweeper",
		}),
		SweepRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "whiteboard_sweep_runs_total",
			Help: "Total number of staleness sweep runs",
		}),
	}
}
