//go:generate go run go.uber.org/mock/mockgen -source=character_service.go -destination=../mocks/mock_character_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"tokenbag/domain"
	"tokenbag/domain/event"
	"tokenbag/errors"
	"tokenbag/repositories"
)

type ICharacterService interface {
	Save(ctx context.Context, cmd SaveCharacterCommand) (domain.Character, error)
	Characters(ctx context.Context, room domain.RoomID, viewer Viewer) ([]domain.Character, error)
	AllForMaster(ctx context.Context, room domain.RoomID, viewer Viewer) ([]domain.Character, error)
	SetVisible(ctx context.Context, room domain.RoomID, viewer Viewer, playerNames []string) error
	Mine(ctx context.Context, room domain.RoomID, playerName string) (domain.Character, error)
}

// Viewer is who is asking: name resolves the roster entry, UserID the
// account (empty for guests).
type Viewer struct {
	PlayerName string
	UserID     string
}

type SaveCharacterCommand struct {
	Room       domain.RoomID
	PlayerName string
	UserID     string
	Sheet      domain.CharacterSheet
}

// CharacterService owns the sheets and their visibility gating. Reads go
// through the gate: the master sees everything, owners see their own, the
// rest only what was explicitly made visible.
type CharacterService struct {
	log        *slog.Logger
	characters repositories.ICharacterRepository
	rooms      repositories.IRoomRepository
	events     chan<- event.DomainEvent
}

func NewCharacterService(
	log *slog.Logger,
	characters repositories.ICharacterRepository,
	rooms repositories.IRoomRepository,
	events chan<- event.DomainEvent,
) ICharacterService {
	return &CharacterService{log: log, characters: characters, rooms: rooms, events: events}
}

// Save upserts the viewer's sheet and announces it to the room.
func (s *CharacterService) Save(_ context.Context, cmd SaveCharacterCommand) (domain.Character, error) {
	if cmd.PlayerName == "" || cmd.Sheet.Name == "" {
		return domain.Character{}, errors.ErrInvalidRequest
	}
	if _, err := s.rooms.GetRoom(cmd.Room); err != nil {
		return domain.Character{}, err
	}

	now := time.Now().UTC()
	character := domain.Character{
		Room:       cmd.Room,
		OwnerID:    cmd.UserID,
		PlayerName: cmd.PlayerName,
		Sheet:      cmd.Sheet,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// A re-save keeps the original creation time and visibility.
	if previous, err := s.characters.ByPlayerName(cmd.Room, cmd.PlayerName); err == nil {
		character.CreatedAt = previous.CreatedAt
		character.VisibleToAll = previous.VisibleToAll
	}

	if err := s.characters.Upsert(character); err != nil {
		return domain.Character{}, err
	}

	s.dispatch(event.CharacterSaved{Room: cmd.Room, PlayerName: cmd.PlayerName, Sheet: cmd.Sheet})
	return character, nil
}

// Characters returns the sheets the viewer is allowed to see.
func (s *CharacterService) Characters(_ context.Context, room domain.RoomID, viewer Viewer) ([]domain.Character, error) {
	master, err := s.isMaster(room, viewer)
	if err != nil {
		return nil, err
	}

	all, err := s.characters.ByRoom(room)
	if err != nil {
		return nil, err
	}
	if master {
		return all, nil
	}

	return lo.Filter(all, func(character domain.Character, _ int) bool {
		return character.VisibleToAll || character.PlayerName == viewer.PlayerName
	}), nil
}

// AllForMaster returns every sheet regardless of visibility; master only.
func (s *CharacterService) AllForMaster(_ context.Context, room domain.RoomID, viewer Viewer) ([]domain.Character, error) {
	master, err := s.isMaster(room, viewer)
	if err != nil {
		return nil, err
	}
	if !master {
		return nil, errors.ErrMasterOnly
	}
	return s.characters.ByRoom(room)
}

// SetVisible replaces the set of room-visible sheets; master only.
func (s *CharacterService) SetVisible(_ context.Context, room domain.RoomID, viewer Viewer, playerNames []string) error {
	master, err := s.isMaster(room, viewer)
	if err != nil {
		return err
	}
	if !master {
		return errors.ErrMasterOnly
	}
	if err := s.characters.SetVisible(room, playerNames); err != nil {
		return err
	}

	s.dispatch(event.VisibilityUpdated{Room: room})
	return nil
}

// Mine loads the viewer's own sheet.
func (s *CharacterService) Mine(_ context.Context, room domain.RoomID, playerName string) (domain.Character, error) {
	if _, err := s.rooms.GetRoom(room); err != nil {
		return domain.Character{}, err
	}
	return s.characters.ByPlayerName(room, playerName)
}

func (s *CharacterService) isMaster(room domain.RoomID, viewer Viewer) (bool, error) {
	if _, err := s.rooms.GetRoom(room); err != nil {
		return false, err
	}
	players, err := s.rooms.Players(room)
	if err != nil {
		return false, err
	}
	player, found := lo.Find(players, func(p domain.Player) bool {
		return p.Name == viewer.PlayerName
	})
	if !found {
		return false, errors.ErrPlayerNotFound
	}
	return player.Master, nil
}

func (s *CharacterService) dispatch(evt event.DomainEvent) {
	select {
	case s.events <- evt:
	default:
		s.log.Warn("Event channel full, dropping broadcast", "room", evt.RoomID())
	}
}
