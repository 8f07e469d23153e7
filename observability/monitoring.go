// Package observability aggregates runtime counters for the heartbeat
// log line. Counters are atomic; reading them never touches game state.
package observability

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// MonitoringStats is a point-in-time snapshot of the server counters.
type MonitoringStats struct {
	DrawsCommitted    uint64 `json:"draws_committed"`
	EventsFanned      uint64 `json:"events_fanned"`
	EventsDropped     uint64 `json:"events_dropped"`
	ActiveConnections int64  `json:"active_connections"`
	RoomsCreated      uint64 `json:"rooms_created"`
	ErrorCount        uint64 `json:"error_count"`
}

// MonitoringManager keeps the live counters.
type MonitoringManager struct {
	log *slog.Logger

	drawsCommitted    uint64
	eventsFanned      uint64
	eventsDropped     uint64
	activeConnections int64
	roomsCreated      uint64
	errorCount        uint64

	LastCheck time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, LastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrDrawsCommitted() {
	atomic.AddUint64(&mm.drawsCommitted, 1)
}

func (mm *MonitoringManager) IncrEventsFanned() {
	atomic.AddUint64(&mm.eventsFanned, 1)
}

func (mm *MonitoringManager) IncrEventsDropped() {
	atomic.AddUint64(&mm.eventsDropped, 1)
}

func (mm *MonitoringManager) IncrRoomsCreated() {
	atomic.AddUint64(&mm.roomsCreated, 1)
}

func (mm *MonitoringManager) IncrErrorCount() {
	atomic.AddUint64(&mm.errorCount, 1)
}

func (mm *MonitoringManager) ConnectionOpened() {
	atomic.AddInt64(&mm.activeConnections, 1)
}

func (mm *MonitoringManager) ConnectionClosed() {
	atomic.AddInt64(&mm.activeConnections, -1)
}

// GetLatest snapshots every counter.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	return MonitoringStats{
		DrawsCommitted:    atomic.LoadUint64(&mm.drawsCommitted),
		EventsFanned:      atomic.LoadUint64(&mm.eventsFanned),
		EventsDropped:     atomic.LoadUint64(&mm.eventsDropped),
		ActiveConnections: atomic.LoadInt64(&mm.activeConnections),
		RoomsCreated:      atomic.LoadUint64(&mm.roomsCreated),
		ErrorCount:        atomic.LoadUint64(&mm.errorCount),
	}
}
