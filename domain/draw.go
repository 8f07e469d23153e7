package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdrenalineDrawSize is the fixed number of tokens an adrenaline draw
// always pulls, overriding the requested count.
const AdrenalineDrawSize = 4

// DrawRequest describes a single draw from a room's bag.
// Adrenaline and the requested count are mutually exclusive: adrenaline
// always forces the effective count to AdrenalineDrawSize.
type DrawRequest struct {
	Room       RoomID
	PlayerName string
	Count      int
	Adrenaline bool
	Confusion  bool
}

// EffectiveCount is the number of tokens the draw will actually attempt.
func (r DrawRequest) EffectiveCount() int {
	if r.Adrenaline {
		return AdrenalineDrawSize
	}
	return r.Count
}

// DrawResult is the outcome of a draw. Drawn preserves draw order, which
// the clients rely on for history and animation.
type DrawResult struct {
	Drawn         []Token
	Successes     int
	Complications int
	Bag           Bag
}

// RiskAllRequest is the escalating multi-round variant of a draw. The
// previous totals are supplied by the caller and never cross-checked
// against server-held history.
type RiskAllRequest struct {
	Room                  RoomID
	PlayerName            string
	Count                 int
	PreviousSuccesses     int
	PreviousComplications int
}

// RiskAllResult reports both the per-call delta and the running totals.
type RiskAllResult struct {
	DrawResult
	TotalSuccesses     int
	TotalComplications int
}

// HistoryRecord is one entry of a room's append-only draw ledger.
// Records are immutable once appended and queried most-recent-first.
// Risk-all cumulative totals are intentionally absent: only the per-call
// delta is durable.
type HistoryRecord struct {
	ID            uuid.UUID `json:"id"`
	Room          RoomID    `json:"room_id"`
	PlayerName    string    `json:"player"`
	Drawn         []Token   `json:"drawn"`
	Successes     int       `json:"successes"`
	Complications int       `json:"complications"`
	Adrenaline    bool      `json:"adrenaline"`
	Confusion     bool      `json:"confusion"`
	RiskAll       bool      `json:"risk_all"`
	At            time.Time `json:"timestamp"`
}
