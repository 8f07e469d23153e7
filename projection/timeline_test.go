package projection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tokenbag/domain"
	"tokenbag/domain/event"
)

func TestTimeline_Consume(t *testing.T) {
	t.Run("should keep draws in arrival order per room", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline()
		ctx := context.Background()

		first := domain.HistoryRecord{
			ID:         uuid.New(),
			Room:       "ab12cd34",
			PlayerName: "Alice",
			Successes:  2,
			At:         time.Now(),
		}
		second := domain.HistoryRecord{
			ID:         uuid.New(),
			Room:       "ab12cd34",
			PlayerName: "Bob",
			Successes:  1,
			At:         time.Now().Add(time.Second),
		}

		req.NoError(timeline.Consume(ctx, event.TokensDrawn{Room: "ab12cd34", Record: first}))
		req.NoError(timeline.Consume(ctx, event.RiskAllResolved{Room: "ab12cd34", Record: second}))

		draws := timeline.Draws("ab12cd34")
		req.Len(draws, 2)
		req.Equal("Alice", draws[0].PlayerName)
		req.Equal("Bob", draws[1].PlayerName)
	})

	t.Run("should scope draws to their room", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline()
		ctx := context.Background()

		req.NoError(timeline.Consume(ctx, event.TokensDrawn{
			Room:   "roomaaaa",
			Record: domain.HistoryRecord{Room: "roomaaaa", PlayerName: "Alice"},
		}))

		req.Len(timeline.Draws("roomaaaa"), 1)
		req.Empty(timeline.Draws("roombbbb"))
	})

	t.Run("should forget a room on bag reset", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline()
		ctx := context.Background()

		req.NoError(timeline.Consume(ctx, event.TokensDrawn{
			Room:   "roomaaaa",
			Record: domain.HistoryRecord{Room: "roomaaaa", PlayerName: "Alice"},
		}))
		req.NoError(timeline.Consume(ctx, event.BagReset{Room: "roomaaaa"}))

		req.Empty(timeline.Draws("roomaaaa"))
	})

	t.Run("should ignore events it does not project", func(t *testing.T) {
		req := require.New(t)
		timeline := NewTimeline()

		req.NoError(timeline.Consume(context.Background(), event.PlayerJoined{
			Room:       "roomaaaa",
			PlayerName: "Alice",
			Players:    []string{"Alice"},
		}))
		req.Empty(timeline.Draws("roomaaaa"))
	})
}
