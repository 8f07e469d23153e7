package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tokenbag/domain"
)

func Test_Append_Multiple_Draws(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	room := domain.RoomID("ab12cd34")
	at := time.Now().UTC()
	records := []domain.HistoryRecord{
		{ID: uuid.New(), Room: room, PlayerName: "Alice", Successes: 1, At: at},
		{ID: uuid.New(), Room: room, PlayerName: "Bob", Complications: 1, At: at.Add(1 * time.Minute)},
		{ID: uuid.New(), Room: room, PlayerName: "Clara", Successes: 2, At: at.Add(2 * time.Minute)},
	}
	for _, record := range records {
		req.NoError(repository.Append(record))
	}

	fetched, err := repository.Recent(room, 20)
	req.NoError(err)
	req.Len(fetched, len(records))
	// Newest first
	req.Equal("Clara", fetched[0].PlayerName)
	req.Equal("Bob", fetched[1].PlayerName)
	req.Equal("Alice", fetched[2].PlayerName)
}

func Test_Recent_Honors_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	room := domain.RoomID("ab12cd34")
	at := time.Now().UTC()
	for i := 0; i < 25; i++ {
		req.NoError(repository.Append(domain.HistoryRecord{
			ID:         uuid.New(),
			Room:       room,
			PlayerName: "Alice",
			At:         at.Add(time.Duration(i) * time.Second),
		}))
	}

	fetched, err := repository.Recent(room, 20)
	req.NoError(err)
	req.Len(fetched, 20)
	// The newest entry survives the cut
	req.Equal(at.Add(24*time.Second), fetched[0].At)
}

func Test_Recent_Scopes_By_Room(t *testing.T) {
	req := require.New(t)
	repository := NewHistoryRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	req.NoError(repository.Append(domain.HistoryRecord{ID: uuid.New(), Room: "roomaaaa", PlayerName: "Alice", At: at}))
	req.NoError(repository.Append(domain.HistoryRecord{ID: uuid.New(), Room: "roombbbb", PlayerName: "Bob", At: at}))

	fetched, err := repository.Recent("roomaaaa", 20)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("Alice", fetched[0].PlayerName)

	fetched, err = repository.Recent("empty000", 20)
	req.NoError(err)
	req.Empty(fetched)
}
