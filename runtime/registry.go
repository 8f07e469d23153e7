// Package runtime holds the in-process coordination pieces: the
// subscriber registry, the transient modifier tracker, and the per-room
// lock table. No business rules live here.
package runtime

import (
	"sync"

	"tokenbag/contract"
	"tokenbag/domain"
)

type set map[string]struct{}

// Registry maps live connections to rooms. It replaces the ambient
// "active rooms" dictionary with an explicit, injected store: sessions
// resolve a participant to their sink, roomMembers scope broadcasts to a
// single table.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]contract.EventSink
	roomMembers map[domain.RoomID]set
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[string]contract.EventSink),
		roomMembers: make(map[domain.RoomID]set),
	}
}

// GetSinksForRoom resolves the active sinks of one room. Membership and
// connections are kept separate so a connection is managed in a single
// place even if it hops between rooms. Returns nil for an unknown or
// empty room.
func (r *Registry) GetSinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for participantID := range members {
		if sink, exists := r.sessions[participantID]; exists {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

// Subscribe registers a participant's connection and binds it to a room,
// initializing the member set on first use.
func (r *Registry) Subscribe(participantID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[participantID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(set)
	}
	r.roomMembers[roomID][participantID] = struct{}{}
}

// Unsubscribe drops a participant and cleans up empty member sets so
// abandoned rooms don't accumulate.
func (r *Registry) Unsubscribe(participantID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, participantID)

	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, participantID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
}
