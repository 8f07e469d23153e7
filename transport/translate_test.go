package transport

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"tokenbag/domain"
	"tokenbag/domain/event"
)

func TestTranslate(t *testing.T) {
	t.Run("should frame a draw as tokens_drawn", func(t *testing.T) {
		req := require.New(t)

		env, ok := translate(event.TokensDrawn{
			Room: "ab12cd34",
			Record: domain.HistoryRecord{
				PlayerName: "Alice",
				Drawn:      []domain.Token{domain.TokenSuccess, domain.TokenComplication},
				Successes:  1, Complications: 1,
			},
			Bag: domain.Bag{Successes: 2, Complications: 1},
		})

		req.True(ok)
		req.Equal(EvTokensDrawn, env.Event)

		var payload map[string]json.RawMessage
		req.NoError(json.Unmarshal(env.Data, &payload))
		req.Contains(payload, "record")
		req.Contains(payload, "bag")
		req.JSONEq(`"ab12cd34"`, string(payload["room_id"]))
	})

	t.Run("should carry the running totals on risk_all_result", func(t *testing.T) {
		req := require.New(t)

		env, ok := translate(event.RiskAllResolved{
			Room:               "ab12cd34",
			TotalSuccesses:     5,
			TotalComplications: 2,
		})

		req.True(ok)
		req.Equal(EvRiskAllResult, env.Event)

		var payload struct {
			TotalSuccesses     int `json:"total_successes"`
			TotalComplications int `json:"total_complications"`
		}
		req.NoError(json.Unmarshal(env.Data, &payload))
		req.Equal(5, payload.TotalSuccesses)
		req.Equal(2, payload.TotalComplications)
	})

	t.Run("should use snake_case field names", func(t *testing.T) {
		req := require.New(t)

		env, ok := translate(event.AdrenalineUpdated{Room: "ab12cd34", PlayerName: "Alice", Value: 3})
		req.True(ok)

		req.Contains(string(env.Data), `"player_name"`)
		req.Contains(string(env.Data), `"room_id"`)
	})
}

func TestConnSink(t *testing.T) {
	t.Run("should buffer events for the writer", func(t *testing.T) {
		req := require.New(t)
		sink := NewConnSink(2)

		req.NoError(sink.Consume(context.Background(), event.BagReset{Room: "ab12cd34"}))
		req.Len(sink.Events, 1)
	})

	t.Run("should drop instead of blocking when full", func(t *testing.T) {
		req := require.New(t)
		sink := NewConnSink(1)

		req.NoError(sink.Consume(context.Background(), event.BagReset{Room: "ab12cd34"}))
		req.NoError(sink.Consume(context.Background(), event.BagReset{Room: "ab12cd34"}))
		req.Len(sink.Events, 1)
	})
}
