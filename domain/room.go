package domain

import "time"

type RoomID string

// MaxPlayersPerRoom caps the roster of a single room.
const MaxPlayersPerRoom = 10

// Room is a shared table. The bag lives for the room's lifetime and is
// zeroed when the room is created or reset.
type Room struct {
	ID        RoomID    `json:"room_id"`
	OwnerID   string    `json:"owner_id"`
	Active    bool      `json:"active"`
	Bag       Bag       `json:"bag"`
	CreatedAt time.Time `json:"created_at"`
}

// Player links a user (or a guest name) to a room. The room creator is
// always flagged master.
type Player struct {
	Name     string    `json:"name"`
	UserID   string    `json:"user_id,omitempty"`
	Master   bool      `json:"master"`
	JoinedAt time.Time `json:"joined_at"`
}
