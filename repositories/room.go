//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"tokenbag/domain"
	"tokenbag/errors"
)

type IRoomRepository interface {
	CreateRoom(room domain.Room, creator domain.Player) error
	GetRoom(id domain.RoomID) (domain.Room, error)
	SaveBag(id domain.RoomID, bag domain.Bag) error
	AddPlayer(id domain.RoomID, player domain.Player) error
	Players(id domain.RoomID) ([]domain.Player, error)
	RoomsOwnedBy(userID string) ([]domain.Room, error)
	RoomsSharedWith(userID string) ([]RoomMembership, error)
	CommitDraw(room domain.Room, record domain.HistoryRecord) error
}

// RoomMembership pairs a room with the name the user plays under there.
type RoomMembership struct {
	Room       domain.Room
	PlayerName string
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) IRoomRepository {
	return &RoomRepository{db: db, log: log}
}

// Key layout:
//
//	room:{room_id}                     -> Room JSON
//	player:{room_id}:{name}            -> Player JSON
//	idx:owner:{user_id}:{room_id}      -> empty (rooms the user created)
//	idx:member:{user_id}:{room_id}     -> player name (rooms joined as guestish member)
//
// The idx: entries are secondary indexes so the lobby queries stay prefix
// scans instead of full-table walks.
func roomKey(id domain.RoomID) []byte {
	return []byte("room:" + string(id))
}

func playerKey(id domain.RoomID, name string) []byte {
	return []byte(fmt.Sprintf("player:%s:%s", id, name))
}

func ownerIdxKey(userID string, id domain.RoomID) []byte {
	return []byte(fmt.Sprintf("idx:owner:%s:%s", userID, id))
}

func memberIdxKey(userID string, id domain.RoomID) []byte {
	return []byte(fmt.Sprintf("idx:member:%s:%s", userID, id))
}

// CreateRoom persists the room, its creator's roster entry and the owner
// index in a single transaction.
func (r RoomRepository) CreateRoom(room domain.Room, creator domain.Player) error {
	roomBytes, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	playerBytes, err := json.Marshal(creator)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(roomKey(room.ID), roomBytes); err != nil {
			return err
		}
		if err := txn.Set(playerKey(room.ID, creator.Name), playerBytes); err != nil {
			return err
		}
		if room.OwnerID != "" {
			return txn.Set(ownerIdxKey(room.OwnerID, room.ID), nil)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (r RoomRepository) GetRoom(id domain.RoomID) (domain.Room, error) {
	var room domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &room)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Room{}, errors.ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return room, nil
}

// SaveBag rewrites the room record with the new bag.
func (r RoomRepository) SaveBag(id domain.RoomID, bag domain.Bag) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		room, err := readRoom(txn, id)
		if err != nil {
			return err
		}
		room.Bag = bag
		bytes, err := json.Marshal(room)
		if err != nil {
			return err
		}
		return txn.Set(roomKey(id), bytes)
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

// AddPlayer writes the roster entry and, for a registered user who is not
// the owner, the membership index used by the lobby.
func (r RoomRepository) AddPlayer(id domain.RoomID, player domain.Player) error {
	playerBytes, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if _, err := readRoom(txn, id); err != nil {
			return err
		}
		if err := txn.Set(playerKey(id, player.Name), playerBytes); err != nil {
			return err
		}
		if player.UserID != "" && !player.Master {
			return txn.Set(memberIdxKey(player.UserID, id), []byte(player.Name))
		}
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func (r RoomRepository) Players(id domain.RoomID) ([]domain.Player, error) {
	var players []domain.Player
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("player:%s:", id))
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var player domain.Player
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &player)
			})
			if err != nil {
				return err
			}
			players = append(players, player)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return players, nil
}

// RoomsOwnedBy resolves the owner index into full room records.
func (r RoomRepository) RoomsOwnedBy(userID string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("idx:owner:%s:", userID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			roomID := domain.RoomID(strings.TrimPrefix(string(it.Item().Key()), prefixStr))
			room, err := readRoom(txn, roomID)
			if err == badger.ErrKeyNotFound {
				// Stale index entry, skip.
				continue
			}
			if err != nil {
				return err
			}
			rooms = append(rooms, room)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return rooms, nil
}

// RoomsSharedWith resolves the membership index, keeping the player name
// the user joined under.
func (r RoomRepository) RoomsSharedWith(userID string) ([]RoomMembership, error) {
	var memberships []RoomMembership
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("idx:member:%s:", userID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			roomID := domain.RoomID(strings.TrimPrefix(string(item.Key()), prefixStr))

			var playerName string
			if err := item.Value(func(val []byte) error {
				playerName = string(val)
				return nil
			}); err != nil {
				return err
			}

			room, err := readRoom(txn, roomID)
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			memberships = append(memberships, RoomMembership{Room: room, PlayerName: playerName})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return memberships, nil
}

// CommitDraw persists the mutated bag and the ledger entry in one
// transaction: either both survive a crash or neither does.
func (r RoomRepository) CommitDraw(room domain.Room, record domain.HistoryRecord) error {
	roomBytes, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	recordBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(roomKey(room.ID), roomBytes); err != nil {
			return err
		}
		return txn.Set(drawKey(record), recordBytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

func readRoom(txn *badger.Txn, id domain.RoomID) (domain.Room, error) {
	var room domain.Room
	item, err := txn.Get(roomKey(id))
	if err != nil {
		return domain.Room{}, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &room)
	})
	return room, err
}
