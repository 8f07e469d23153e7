package runtime

import (
	"sync"

	"tokenbag/domain"
)

// RoomLocks hands out one mutex per room so every read-modify-write of a
// bag is serialized within its room while distinct rooms proceed in
// parallel. Locks are created on first use and never reclaimed; a mutex
// per room ever seen is cheap next to the room's own data.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[domain.RoomID]*sync.Mutex
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[domain.RoomID]*sync.Mutex)}
}

// For returns the mutex owning the given room.
func (l *RoomLocks) For(room domain.RoomID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[room]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[room] = lock
	}
	return lock
}
