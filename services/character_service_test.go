package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tokenbag/domain"
	"tokenbag/domain/event"
	"tokenbag/errors"
	"tokenbag/mocks"
	"tokenbag/services"
)

type characterServiceFixture struct {
	characters *mocks.MockICharacterRepository
	rooms      *mocks.MockIRoomRepository
	events     chan event.DomainEvent
	service    services.ICharacterService
}

func newCharacterServiceFixture(t *testing.T) characterServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	characters := mocks.NewMockICharacterRepository(ctrl)
	rooms := mocks.NewMockIRoomRepository(ctrl)
	events := make(chan event.DomainEvent, 16)
	service := services.NewCharacterService(slog.Default(), characters, rooms, events)
	return characterServiceFixture{characters: characters, rooms: rooms, events: events, service: service}
}

var testRoom = domain.Room{ID: "ab12cd34", Active: true}

func roster() []domain.Player {
	return []domain.Player{
		{Name: "Alice", UserID: "user-1", Master: true},
		{Name: "Bob", UserID: "user-2"},
		{Name: "Clara"},
	}
}

func sheetFor(name string) domain.CharacterSheet {
	return domain.CharacterSheet{Name: name, Motivation: "survive", Archetype: "wanderer"}
}

func TestCharacterService_Save(t *testing.T) {
	t.Run("should upsert and broadcast the sheet", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.characters.EXPECT().ByPlayerName(testRoom.ID, "Bob").Return(domain.Character{}, errors.ErrPlayerNotFound)
		f.characters.EXPECT().Upsert(gomock.Any()).Return(nil)

		character, err := f.service.Save(context.Background(), services.SaveCharacterCommand{
			Room: testRoom.ID, PlayerName: "Bob", UserID: "user-2", Sheet: sheetFor("Grim"),
		})

		req.NoError(err)
		req.Equal("Grim", character.Sheet.Name)
		req.False(character.VisibleToAll)

		evt := <-f.events
		req.Equal("Bob", evt.(event.CharacterSaved).PlayerName)
	})

	t.Run("should keep creation time and visibility on re-save", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		previous := domain.Character{Room: testRoom.ID, PlayerName: "Bob", VisibleToAll: true}
		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.characters.EXPECT().ByPlayerName(testRoom.ID, "Bob").Return(previous, nil)

		var stored domain.Character
		f.characters.EXPECT().Upsert(gomock.Any()).
			DoAndReturn(func(c domain.Character) error {
				stored = c
				return nil
			})

		_, err := f.service.Save(context.Background(), services.SaveCharacterCommand{
			Room: testRoom.ID, PlayerName: "Bob", Sheet: sheetFor("Grim II"),
		})

		req.NoError(err)
		req.True(stored.VisibleToAll)
	})

	t.Run("should reject an unnamed sheet", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		_, err := f.service.Save(context.Background(), services.SaveCharacterCommand{
			Room: testRoom.ID, PlayerName: "Bob", Sheet: domain.CharacterSheet{},
		})
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})
}

func TestCharacterService_Characters(t *testing.T) {
	all := []domain.Character{
		{Room: testRoom.ID, PlayerName: "Alice", Sheet: sheetFor("Morwen")},
		{Room: testRoom.ID, PlayerName: "Bob", Sheet: sheetFor("Grim"), VisibleToAll: true},
		{Room: testRoom.ID, PlayerName: "Clara", Sheet: sheetFor("Vex")},
	}

	t.Run("should return everything to the master", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)
		f.characters.EXPECT().ByRoom(testRoom.ID).Return(all, nil)

		characters, err := f.service.Characters(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Alice", UserID: "user-1"})
		req.NoError(err)
		req.Len(characters, 3)
	})

	t.Run("should gate a regular player to own plus visible sheets", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)
		f.characters.EXPECT().ByRoom(testRoom.ID).Return(all, nil)

		characters, err := f.service.Characters(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Clara"})
		req.NoError(err)
		req.Len(characters, 2) // Bob (visible) + Clara (own)
	})

	t.Run("should reject a viewer who is not in the room", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)

		_, err := f.service.Characters(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Intruder"})
		req.ErrorIs(err, errors.ErrPlayerNotFound)
	})
}

func TestCharacterService_MasterOnlyOperations(t *testing.T) {
	t.Run("should refuse AllForMaster to a regular player", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)

		_, err := f.service.AllForMaster(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Bob"})
		req.ErrorIs(err, errors.ErrMasterOnly)
	})

	t.Run("should let the master replace the visible set and broadcast", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)
		f.characters.EXPECT().SetVisible(testRoom.ID, []string{"Bob", "Clara"}).Return(nil)

		err := f.service.SetVisible(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Alice"}, []string{"Bob", "Clara"})
		req.NoError(err)

		_, ok := (<-f.events).(event.VisibilityUpdated)
		req.True(ok)
	})

	t.Run("should refuse SetVisible to a regular player", func(t *testing.T) {
		req := require.New(t)
		f := newCharacterServiceFixture(t)

		f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
		f.rooms.EXPECT().Players(testRoom.ID).Return(roster(), nil)

		err := f.service.SetVisible(context.Background(), testRoom.ID, services.Viewer{PlayerName: "Clara"}, []string{"Clara"})
		req.ErrorIs(err, errors.ErrMasterOnly)
	})
}

func TestCharacterService_Mine(t *testing.T) {
	req := require.New(t)
	f := newCharacterServiceFixture(t)

	mine := domain.Character{Room: testRoom.ID, PlayerName: "Bob", Sheet: sheetFor("Grim")}
	f.rooms.EXPECT().GetRoom(testRoom.ID).Return(testRoom, nil)
	f.characters.EXPECT().ByPlayerName(testRoom.ID, "Bob").Return(mine, nil)

	character, err := f.service.Mine(context.Background(), testRoom.ID, "Bob")
	req.NoError(err)
	req.Equal("Grim", character.Sheet.Name)
}
