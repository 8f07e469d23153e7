// Package projection builds local read models from observed events.
// It never emits events and never touches the repositories.
package projection

import (
	"context"
	"sync"

	"tokenbag/domain"
	"tokenbag/domain/event"
)

// Timeline keeps the per-room sequence of committed draws as seen on the
// event stream. Best-effort by construction: a dropped event leaves a gap
// here, never in the durable ledger.
type Timeline struct {
	mu    sync.RWMutex
	draws map[domain.RoomID][]domain.HistoryRecord
}

func NewTimeline() *Timeline {
	return &Timeline{draws: make(map[domain.RoomID][]domain.HistoryRecord)}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.TokensDrawn:
		t.append(evt.Room, evt.Record)
	case event.RiskAllResolved:
		t.append(evt.Room, evt.Record)
	case event.BagReset:
		t.mu.Lock()
		delete(t.draws, evt.Room)
		t.mu.Unlock()
	}
	return nil
}

func (t *Timeline) append(room domain.RoomID, record domain.HistoryRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draws[room] = append(t.draws[room], record)
}

// Draws returns a copy of the room's observed draw sequence.
func (t *Timeline) Draws(room domain.RoomID) []domain.HistoryRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	records := t.draws[room]
	out := make([]domain.HistoryRecord, len(records))
	copy(out, records)
	return out
}
