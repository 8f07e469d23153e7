package transport

import (
	"encoding/json"

	"tokenbag/domain"
	"tokenbag/services"
)

// Envelope frames every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound event names.
const (
	EvRegister          = "register"
	EvLogin             = "login"
	EvRefreshRooms      = "refresh_rooms"
	EvCreateRoom        = "create_room"
	EvJoinRoom          = "join_room"
	EvConfigureBag      = "configure_bag"
	EvAddHelp           = "add_help"
	EvDrawTokens        = "draw_tokens"
	EvRiskAll           = "risk_all"
	EvReturnTokens      = "return_tokens"
	EvResetBag          = "reset_bag"
	EvUpdateAdrenaline  = "update_adrenaline"
	EvUpdateConfusion   = "update_confusion"
	EvGenerateWeather   = "generate_weather"
	EvSaveCharacter     = "save_character"
	EvGetCharacters     = "get_characters"
	EvAllCharacters     = "get_all_characters_for_master"
	EvToggleVisibility  = "toggle_character_visibility"
	EvLoadMyCharacter   = "load_my_character"
)

// Outbound event names.
const (
	EvError              = "error"
	EvRegisterSuccess    = "register_success"
	EvLoginSuccess       = "login_success"
	EvRoomsRefreshed     = "rooms_refreshed"
	EvRoomCreated        = "room_created"
	EvRoomJoined         = "room_joined"
	EvPlayerJoined       = "player_joined"
	EvBagConfigured      = "bag_configured"
	EvHelpAdded          = "help_added"
	EvTokensDrawn        = "tokens_drawn"
	EvRiskAllResult      = "risk_all_result"
	EvTokensReturned     = "tokens_returned"
	EvBagReset           = "bag_reset"
	EvAdrenalineUpdated  = "adrenaline_updated"
	EvConfusionUpdated   = "confusion_updated"
	EvWeatherGenerated   = "weather_generated"
	EvCharacterSaved     = "character_saved"
	EvVisibilityUpdated  = "visibility_updated"
	EvCharactersLoaded   = "characters_loaded"
	EvAllCharacterSheets = "all_characters_loaded"
	EvMyCharacterLoaded  = "my_character_loaded"
)

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRoomsPayload struct {
	Token string `json:"token"`
}

type createRoomPayload struct {
	PlayerName string `json:"player_name"`
}

type joinRoomPayload struct {
	RoomID     domain.RoomID `json:"room_id"`
	PlayerName string        `json:"player_name"`
}

type bagPayload struct {
	RoomID        domain.RoomID `json:"room_id"`
	Successes     int           `json:"successes"`
	Complications int           `json:"complications"`
}

type roomPayload struct {
	RoomID domain.RoomID `json:"room_id"`
}

type drawPayload struct {
	RoomID     domain.RoomID `json:"room_id"`
	PlayerName string        `json:"player_name"`
	NumTokens  int           `json:"num_tokens"`
	Adrenaline bool          `json:"adrenaline"`
	Confusion  bool          `json:"confusion"`
}

type addHelpPayload struct {
	RoomID     domain.RoomID `json:"room_id"`
	PlayerName string        `json:"player_name"`
}

type riskAllPayload struct {
	RoomID                domain.RoomID `json:"room_id"`
	NumTokens             int           `json:"num_tokens"`
	PreviousSuccesses     int           `json:"previous_successes"`
	PreviousComplications int           `json:"previous_complications"`
}

type modifierPayload struct {
	RoomID     domain.RoomID `json:"room_id"`
	PlayerName string        `json:"player_name"`
	Value      int           `json:"value"`
}

type weatherPayload struct {
	RoomID domain.RoomID `json:"room_id"`
	Season string        `json:"season"`
	Zone   string        `json:"zone"`
}

type weatherGeneratedPayload struct {
	RoomID     domain.RoomID `json:"room_id,omitempty"`
	PlayerName string        `json:"player_name"`
	Season     string        `json:"season"`
	Zone       string        `json:"zone"`
	Weather    string        `json:"weather"`
}

type saveCharacterPayload struct {
	RoomID    domain.RoomID        `json:"room_id"`
	Character domain.CharacterSheet `json:"character"`
}

type visibilityPayload struct {
	RoomID      domain.RoomID `json:"room_id"`
	PlayerNames []string      `json:"player_names"`
}

type errorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type sessionPayload struct {
	Token    string         `json:"token"`
	UserID   string         `json:"user_id"`
	Username string         `json:"username"`
	Lobby    services.Lobby `json:"rooms"`
}

type roomJoinedPayload struct {
	RoomID  domain.RoomID          `json:"room_id"`
	Bag     domain.Bag             `json:"bag"`
	Players []string               `json:"players"`
	Master  bool                   `json:"master"`
	History []domain.HistoryRecord `json:"history"`
}

type roomCreatedPayload struct {
	RoomID domain.RoomID `json:"room_id"`
	Bag    domain.Bag    `json:"bag"`
}

type charactersPayload struct {
	RoomID     domain.RoomID      `json:"room_id"`
	Characters []domain.Character `json:"characters"`
}

func bagFrom(p bagPayload) domain.Bag {
	return domain.Bag{Successes: p.Successes, Complications: p.Complications}
}

func drawRequestFrom(p drawPayload, sessionName string) domain.DrawRequest {
	count := p.NumTokens
	if count == 0 {
		// A missing num_tokens means a single pull
		count = 1
	}
	return domain.DrawRequest{
		Room:       p.RoomID,
		PlayerName: nameOr(p.PlayerName, sessionName),
		Count:      count,
		Adrenaline: p.Adrenaline,
		Confusion:  p.Confusion,
	}
}

// nameOr resolves the target player: the payload may name another room
// member (the master acting for a player), else the session's own name.
func nameOr(payloadName, sessionName string) string {
	if payloadName != "" {
		return payloadName
	}
	return sessionName
}

func riskAllRequestFrom(p riskAllPayload, playerName string) domain.RiskAllRequest {
	return domain.RiskAllRequest{
		Room:                  p.RoomID,
		PlayerName:            playerName,
		Count:                 p.NumTokens,
		PreviousSuccesses:     p.PreviousSuccesses,
		PreviousComplications: p.PreviousComplications,
	}
}

func playerNames(players []domain.Player) []string {
	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player.Name)
	}
	return names
}
