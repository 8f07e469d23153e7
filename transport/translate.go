package transport

import (
	"encoding/json"

	"tokenbag/domain"
	"tokenbag/domain/event"
)

// translate maps a domain event to its wire envelope. Unknown events map
// to ok=false and are silently skipped by the writer.
func translate(evt event.DomainEvent) (Envelope, bool) {
	switch e := evt.(type) {
	case event.PlayerJoined:
		return envelope(EvPlayerJoined, struct {
			RoomID     domain.RoomID `json:"room_id"`
			PlayerName string        `json:"player_name"`
			Players    []string      `json:"players"`
		}{e.Room, e.PlayerName, e.Players})
	case event.BagConfigured:
		return envelope(EvBagConfigured, struct {
			RoomID domain.RoomID `json:"room_id"`
			Bag    domain.Bag    `json:"bag"`
		}{e.Room, e.Bag})
	case event.HelpAdded:
		return envelope(EvHelpAdded, struct {
			RoomID domain.RoomID `json:"room_id"`
			Helper string        `json:"helper"`
			Bag    domain.Bag    `json:"bag"`
		}{e.Room, e.Helper, e.Bag})
	case event.TokensDrawn:
		return envelope(EvTokensDrawn, struct {
			RoomID domain.RoomID        `json:"room_id"`
			Record domain.HistoryRecord `json:"record"`
			Bag    domain.Bag           `json:"bag"`
		}{e.Room, e.Record, e.Bag})
	case event.RiskAllResolved:
		return envelope(EvRiskAllResult, struct {
			RoomID             domain.RoomID        `json:"room_id"`
			Record             domain.HistoryRecord `json:"record"`
			Bag                domain.Bag           `json:"bag"`
			TotalSuccesses     int                  `json:"total_successes"`
			TotalComplications int                  `json:"total_complications"`
		}{e.Room, e.Record, e.Bag, e.TotalSuccesses, e.TotalComplications})
	case event.TokensReturned:
		return envelope(EvTokensReturned, struct {
			RoomID domain.RoomID `json:"room_id"`
			Bag    domain.Bag    `json:"bag"`
		}{e.Room, e.Bag})
	case event.BagReset:
		return envelope(EvBagReset, struct {
			RoomID domain.RoomID `json:"room_id"`
		}{e.Room})
	case event.AdrenalineUpdated:
		return envelope(EvAdrenalineUpdated, struct {
			RoomID     domain.RoomID `json:"room_id"`
			PlayerName string        `json:"player_name"`
			Value      int           `json:"value"`
		}{e.Room, e.PlayerName, e.Value})
	case event.ConfusionUpdated:
		return envelope(EvConfusionUpdated, struct {
			RoomID     domain.RoomID `json:"room_id"`
			PlayerName string        `json:"player_name"`
			Value      int           `json:"value"`
		}{e.Room, e.PlayerName, e.Value})
	case event.WeatherGenerated:
		return envelope(EvWeatherGenerated, struct {
			RoomID     domain.RoomID `json:"room_id"`
			PlayerName string        `json:"player_name"`
			Season     string        `json:"season"`
			Zone       string        `json:"zone"`
			Weather    string        `json:"weather"`
		}{e.Room, e.PlayerName, e.Season, e.Zone, e.Weather})
	case event.CharacterSaved:
		return envelope(EvCharacterSaved, struct {
			RoomID     domain.RoomID         `json:"room_id"`
			PlayerName string                `json:"player_name"`
			Character  domain.CharacterSheet `json:"character"`
		}{e.Room, e.PlayerName, e.Sheet})
	case event.VisibilityUpdated:
		return envelope(EvVisibilityUpdated, struct {
			RoomID domain.RoomID `json:"room_id"`
		}{e.Room})
	default:
		return Envelope{}, false
	}
}

func envelope(name string, payload any) (Envelope, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, false
	}
	return Envelope{Event: name, Data: data}, true
}
