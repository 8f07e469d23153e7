package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tokenbag/domain"
	"tokenbag/errors"
)

func Test_Upsert_And_Fetch_Character(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openTestDB(t), slog.Default())

	character := domain.Character{
		Room:       "ab12cd34",
		OwnerID:    "user-1",
		PlayerName: "Alice",
		Sheet: domain.CharacterSheet{
			Name:       "Morwen",
			Motivation: "Find the lost caravan",
			Archetype:  "Hunter",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	req.NoError(repository.Upsert(character))

	fetched, err := repository.ByPlayerName("ab12cd34", "Alice")
	req.NoError(err)
	req.Equal("Morwen", fetched.Sheet.Name)
	req.False(fetched.VisibleToAll)

	// A second save for the same player replaces the sheet
	character.Sheet.Name = "Morwen the Grey"
	req.NoError(repository.Upsert(character))

	all, err := repository.ByRoom("ab12cd34")
	req.NoError(err)
	req.Len(all, 1)
	req.Equal("Morwen the Grey", all[0].Sheet.Name)
}

func Test_ByPlayerName_Unknown(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openTestDB(t), slog.Default())

	_, err := repository.ByPlayerName("ab12cd34", "Nobody")
	req.ErrorIs(err, errors.ErrPlayerNotFound)
}

func Test_SetVisible_Is_Absolute(t *testing.T) {
	req := require.New(t)
	repository := NewCharacterRepository(openTestDB(t), slog.Default())

	for _, name := range []string{"Alice", "Bob", "Clara"} {
		req.NoError(repository.Upsert(domain.Character{
			Room:       "ab12cd34",
			PlayerName: name,
			Sheet:      domain.CharacterSheet{Name: name},
		}))
	}

	req.NoError(repository.SetVisible("ab12cd34", []string{"Alice", "Clara"}))

	visible := map[string]bool{}
	all, err := repository.ByRoom("ab12cd34")
	req.NoError(err)
	for _, character := range all {
		visible[character.PlayerName] = character.VisibleToAll
	}
	req.True(visible["Alice"])
	req.False(visible["Bob"])
	req.True(visible["Clara"])

	// A later call with a new list resets the previous one
	req.NoError(repository.SetVisible("ab12cd34", []string{"Bob"}))

	all, err = repository.ByRoom("ab12cd34")
	req.NoError(err)
	for _, character := range all {
		req.Equal(character.PlayerName == "Bob", character.VisibleToAll)
	}
}
