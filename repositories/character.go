//go:generate go run go.uber.org/mock/mockgen -source=character.go -destination=../mocks/mock_character_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"tokenbag/domain"
	"tokenbag/errors"
)

type ICharacterRepository interface {
	Upsert(character domain.Character) error
	ByRoom(room domain.RoomID) ([]domain.Character, error)
	ByPlayerName(room domain.RoomID, playerName string) (domain.Character, error)
	SetVisible(room domain.RoomID, playerNames []string) error
}

type CharacterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCharacterRepository(db *badger.DB, log *slog.Logger) ICharacterRepository {
	return &CharacterRepository{db: db, log: log}
}

// One sheet per (room, player name): a re-save replaces the previous one.
func charKey(room domain.RoomID, playerName string) []byte {
	return []byte(fmt.Sprintf("char:%s:%s", room, playerName))
}

func (c CharacterRepository) Upsert(character domain.Character) error {
	bytes, err := json.Marshal(character)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(charKey(character.Room, character.PlayerName), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (c CharacterRepository) ByRoom(room domain.RoomID) ([]domain.Character, error) {
	var characters []domain.Character
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("char:%s:", room))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var character domain.Character
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &character)
			})
			if err != nil {
				return err
			}
			characters = append(characters, character)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return characters, nil
}

func (c CharacterRepository) ByPlayerName(room domain.RoomID, playerName string) (domain.Character, error) {
	var character domain.Character
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(charKey(room, playerName))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &character)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Character{}, errors.ErrPlayerNotFound
	}
	if err != nil {
		return domain.Character{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return character, nil
}

// SetVisible makes exactly the named sheets visible to the whole room and
// hides every other sheet, in a single transaction. The list is absolute,
// not a delta.
func (c CharacterRepository) SetVisible(room domain.RoomID, playerNames []string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("char:%s:", room))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Collect first: mutating while iterating confuses the iterator.
		var characters []domain.Character
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var character domain.Character
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &character)
			})
			if err != nil {
				return err
			}
			characters = append(characters, character)
		}

		for _, character := range characters {
			character.VisibleToAll = lo.Contains(playerNames, character.PlayerName)
			bytes, err := json.Marshal(character)
			if err != nil {
				return err
			}
			if err := txn.Set(charKey(room, character.PlayerName), bytes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}
