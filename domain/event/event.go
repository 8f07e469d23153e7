// Package event defines the domain events fanned out to room subscribers
// after a mutation has been committed.
package event

import "tokenbag/domain"

// DomainEvent is anything the fanout can deliver. Every event belongs to
// exactly one room; delivery is scoped to that room's subscribers.
type DomainEvent interface {
	RoomID() domain.RoomID
}

// PlayerJoined is broadcast after a player is added to the roster (or
// re-joins under the same identity).
type PlayerJoined struct {
	Room       domain.RoomID
	PlayerName string
	Players    []string
}

func (e PlayerJoined) RoomID() domain.RoomID { return e.Room }

// BagConfigured carries the new absolute bag state.
type BagConfigured struct {
	Room domain.RoomID
	Bag  domain.Bag
}

func (e BagConfigured) RoomID() domain.RoomID { return e.Room }

// HelpAdded is broadcast when a player adds one success token.
type HelpAdded struct {
	Room   domain.RoomID
	Helper string
	Bag    domain.Bag
}

func (e HelpAdded) RoomID() domain.RoomID { return e.Room }

// TokensDrawn carries the committed draw record plus the remaining bag.
type TokensDrawn struct {
	Room   domain.RoomID
	Record domain.HistoryRecord
	Bag    domain.Bag
}

func (e TokensDrawn) RoomID() domain.RoomID { return e.Room }

// RiskAllResolved is the risk-all counterpart of TokensDrawn. The running
// totals come from the caller and are echoed back, never persisted.
type RiskAllResolved struct {
	Room               domain.RoomID
	Record             domain.HistoryRecord
	Bag                domain.Bag
	TotalSuccesses     int
	TotalComplications int
}

func (e RiskAllResolved) RoomID() domain.RoomID { return e.Room }

// TokensReturned carries the bag after tokens were given back.
type TokensReturned struct {
	Room domain.RoomID
	Bag  domain.Bag
}

func (e TokensReturned) RoomID() domain.RoomID { return e.Room }

// BagReset is broadcast after both counters were zeroed.
type BagReset struct {
	Room domain.RoomID
}

func (e BagReset) RoomID() domain.RoomID { return e.Room }

// AdrenalineUpdated mirrors a transient per-player adrenaline change.
type AdrenalineUpdated struct {
	Room       domain.RoomID
	PlayerName string
	Value      int
}

func (e AdrenalineUpdated) RoomID() domain.RoomID { return e.Room }

// ConfusionUpdated mirrors a transient per-player confusion change.
type ConfusionUpdated struct {
	Room       domain.RoomID
	PlayerName string
	Value      int
}

func (e ConfusionUpdated) RoomID() domain.RoomID { return e.Room }

// WeatherGenerated shares a weather roll with the table.
type WeatherGenerated struct {
	Room       domain.RoomID
	PlayerName string
	Season     string
	Zone       string
	Weather    string
}

func (e WeatherGenerated) RoomID() domain.RoomID { return e.Room }

// CharacterSaved is broadcast after a sheet upsert.
type CharacterSaved struct {
	Room       domain.RoomID
	PlayerName string
	Sheet      domain.CharacterSheet
}

func (e CharacterSaved) RoomID() domain.RoomID { return e.Room }

// VisibilityUpdated tells room members to reload the character list.
type VisibilityUpdated struct {
	Room domain.RoomID
}

func (e VisibilityUpdated) RoomID() domain.RoomID { return e.Room }
