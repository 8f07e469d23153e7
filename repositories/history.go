//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"tokenbag/domain"
	"tokenbag/errors"
)

type IHistoryRepository interface {
	Append(record domain.HistoryRecord) error
	Recent(room domain.RoomID, limit int) ([]domain.HistoryRecord, error)
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) IHistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// drawKey formats a ledger key as "draw:{room_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two draws
//     land on the same nanosecond.
func drawKey(record domain.HistoryRecord) []byte {
	return []byte(fmt.Sprintf("draw:%s:%019d:%s",
		record.Room,
		record.At.UnixNano(),
		record.ID,
	))
}

// Append adds one immutable entry to the room's ledger.
func (h HistoryRepository) Append(record domain.HistoryRecord) error {
	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	err = h.db.Update(func(txn *badger.Txn) error {
		return txn.Set(drawKey(record), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

// Recent retrieves the most recent draws of a room, newest first, using a
// reverse prefix scan. Thanks to the padded timestamp in the key the scan
// order is the time order; it stops once limit entries are collected.
func (h HistoryRepository) Recent(room domain.RoomID, limit int) ([]domain.HistoryRecord, error) {
	var records []domain.HistoryRecord
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("draw:%s:", room))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			var record domain.HistoryRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return records, nil
}
