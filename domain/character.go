package domain

import (
	"encoding/json"
	"time"
)

// CharacterSheet holds the player-editable part of a character. Trait
// lists are kept as raw JSON: their shape belongs to the client.
type CharacterSheet struct {
	Name            string          `json:"name"`
	Motivation      string          `json:"motivation"`
	Archetype       string          `json:"archetype"`
	Photo           string          `json:"photo,omitempty"`
	Traits          json.RawMessage `json:"traits,omitempty"`
	SelectedTraits  json.RawMessage `json:"selected_traits,omitempty"`
	EmpoweredTraits json.RawMessage `json:"empowered_traits,omitempty"`
	QualityCounter  int             `json:"quality_counter"`
	AbilityCounter  int             `json:"ability_counter"`
	Misfortunes     json.RawMessage `json:"misfortunes,omitempty"`
	Lessons         json.RawMessage `json:"lessons,omitempty"`
	Resources       string          `json:"resources,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Character is a sheet bound to a room and its owner. VisibleToAll opens
// the sheet to every room member; the master and the owner always see it.
type Character struct {
	Room         RoomID         `json:"room_id"`
	OwnerID      string         `json:"owner_id"`
	PlayerName   string         `json:"player_name"`
	Sheet        CharacterSheet `json:"sheet"`
	VisibleToAll bool           `json:"visible_to_all"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
