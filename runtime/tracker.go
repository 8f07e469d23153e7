package runtime

import (
	"sync"

	"tokenbag/domain"
)

type trackerKey struct {
	room   domain.RoomID
	player string
}

// Tracker keeps the transient adrenaline and confusion values per
// (room, player). Deliberately in-memory only: these represent live
// table-state the game master resets every scene, so a restart wipes
// them while the durable bag survives.
type Tracker struct {
	mu         sync.RWMutex
	adrenaline map[trackerKey]int
	confusion  map[trackerKey]int
}

func NewTracker() *Tracker {
	return &Tracker{
		adrenaline: make(map[trackerKey]int),
		confusion:  make(map[trackerKey]int),
	}
}

func (t *Tracker) SetAdrenaline(room domain.RoomID, player string, value int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.adrenaline[trackerKey{room, player}] = value
}

func (t *Tracker) Adrenaline(room domain.RoomID, player string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.adrenaline[trackerKey{room, player}]
}

func (t *Tracker) SetConfusion(room domain.RoomID, player string, value int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.confusion[trackerKey{room, player}] = value
}

func (t *Tracker) Confusion(room domain.RoomID, player string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.confusion[trackerKey{room, player}]
}

// DropRoom forgets every tracked value of a room.
func (t *Tracker) DropRoom(room domain.RoomID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.adrenaline {
		if key.room == room {
			delete(t.adrenaline, key)
		}
	}
	for key := range t.confusion {
		if key.room == room {
			delete(t.confusion, key)
		}
	}
}
