package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tokenbag/domain"
	"tokenbag/domain/event"
)

type Sink struct{}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Room_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	roomID := domain.RoomID("ab12cd34")
	sink := Sink{}

	// Given no connection exists
	req.Empty(registry.GetSinksForRoom(roomID))

	// When a participant subscribes a room
	registry.Subscribe(participantID, roomID, sink)

	// Then the room resolves to that sink
	sinks := registry.GetSinksForRoom(roomID)
	req.Len(sinks, 1)
	req.Equal(sink, sinks[0].(Sink))
}

func TestRegistry_Unsubscribe_Cleans_Empty_Rooms(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	roomID := domain.RoomID("ab12cd34")

	registry.Subscribe(participantID, roomID, Sink{})
	registry.Unsubscribe(participantID, roomID)

	req.Empty(registry.GetSinksForRoom(roomID))
}

func TestRegistry_Hopping_Moves_The_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	first := domain.RoomID("ab12cd34")
	second := domain.RoomID("ef56ab78")

	registry.Subscribe(participantID, first, Sink{})
	registry.Unsubscribe(participantID, first)
	registry.Subscribe(participantID, second, Sink{})

	req.Empty(registry.GetSinksForRoom(first))
	req.Len(registry.GetSinksForRoom(second), 1)
}

func TestTracker_Values_Are_Scoped_Per_Room_And_Player(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	roomID := domain.RoomID("ab12cd34")

	tracker.SetAdrenaline(roomID, "Alice", 3)
	tracker.SetConfusion(roomID, "Alice", 1)
	tracker.SetAdrenaline(roomID, "Bob", 5)

	req.Equal(3, tracker.Adrenaline(roomID, "Alice"))
	req.Equal(1, tracker.Confusion(roomID, "Alice"))
	req.Equal(5, tracker.Adrenaline(roomID, "Bob"))
	// Untracked players read as zero
	req.Zero(tracker.Adrenaline(roomID, "Clara"))
}

func TestTracker_DropRoom_Forgets_Everything(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	roomID := domain.RoomID("ab12cd34")
	other := domain.RoomID("ef56ab78")

	tracker.SetAdrenaline(roomID, "Alice", 3)
	tracker.SetConfusion(roomID, "Alice", 2)
	tracker.SetAdrenaline(other, "Alice", 7)

	tracker.DropRoom(roomID)

	req.Zero(tracker.Adrenaline(roomID, "Alice"))
	req.Zero(tracker.Confusion(roomID, "Alice"))
	// Other rooms are untouched
	req.Equal(7, tracker.Adrenaline(other, "Alice"))
}

func TestRoomLocks_Same_Room_Same_Mutex(t *testing.T) {
	req := require.New(t)
	locks := NewRoomLocks()

	req.Same(locks.For("ab12cd34"), locks.For("ab12cd34"))
	req.NotSame(locks.For("ab12cd34"), locks.For("ef56ab78"))
}
