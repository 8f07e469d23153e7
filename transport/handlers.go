package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"tokenbag/domain"
	"tokenbag/errors"
	"tokenbag/services"
)

var errInvalidEnvelope = fmt.Errorf("%w: malformed envelope", errors.ErrInvalidRequest)

// dispatch routes one inbound envelope. Every failure is reported to the
// originating caller only, as an error event; nothing here can kill the
// process or reach other connections.
func (s *Server) dispatch(ctx context.Context, sess *session, env Envelope) {
	var err error
	switch env.Event {
	case EvRegister:
		err = s.handleRegister(sess, env.Data)
	case EvLogin:
		err = s.handleLogin(sess, env.Data)
	case EvRefreshRooms:
		err = s.handleRefreshRooms(sess, env.Data)
	case EvCreateRoom:
		err = s.handleCreateRoom(ctx, sess, env.Data)
	case EvJoinRoom:
		err = s.handleJoinRoom(ctx, sess, env.Data)
	case EvConfigureBag:
		err = s.handleConfigureBag(ctx, sess, env.Data)
	case EvAddHelp:
		err = s.handleAddHelp(ctx, sess, env.Data)
	case EvDrawTokens:
		err = s.handleDrawTokens(ctx, sess, env.Data)
	case EvRiskAll:
		err = s.handleRiskAll(ctx, sess, env.Data)
	case EvReturnTokens:
		err = s.handleReturnTokens(ctx, sess, env.Data)
	case EvResetBag:
		err = s.handleResetBag(ctx, sess, env.Data)
	case EvUpdateAdrenaline:
		err = s.handleModifier(ctx, sess, env.Data, s.roomService.UpdateAdrenaline)
	case EvUpdateConfusion:
		err = s.handleModifier(ctx, sess, env.Data, s.roomService.UpdateConfusion)
	case EvGenerateWeather:
		err = s.handleGenerateWeather(ctx, sess, env.Data)
	case EvSaveCharacter:
		err = s.handleSaveCharacter(ctx, sess, env.Data)
	case EvGetCharacters:
		err = s.handleGetCharacters(ctx, sess, env.Data)
	case EvAllCharacters:
		err = s.handleAllCharacters(ctx, sess, env.Data)
	case EvToggleVisibility:
		err = s.handleToggleVisibility(ctx, sess, env.Data)
	case EvLoadMyCharacter:
		err = s.handleLoadMyCharacter(ctx, sess, env.Data)
	default:
		err = fmt.Errorf("%w: unknown event %q", errors.ErrInvalidRequest, env.Event)
	}

	if err != nil {
		s.monitoring.IncrErrorCount()
		s.sendError(sess, err)
	}
}

func (s *Server) sendError(sess *session, err error) {
	s.send(sess, EvError, errorPayload{Kind: errors.Kind(err), Message: err.Error()})
}

func (s *Server) handleRegister(sess *session, data json.RawMessage) error {
	var payload credentialsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	result, err := s.authService.Register(payload.Username, payload.Password)
	if err != nil {
		return err
	}
	sess.userID = result.UserID
	sess.username = result.Username
	s.send(sess, EvRegisterSuccess, sessionPayload{
		Token: result.Token, UserID: result.UserID, Username: result.Username, Lobby: result.Lobby,
	})
	return nil
}

func (s *Server) handleLogin(sess *session, data json.RawMessage) error {
	var payload credentialsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	result, err := s.authService.Login(payload.Username, payload.Password)
	if err != nil {
		return err
	}
	sess.userID = result.UserID
	sess.username = result.Username
	s.send(sess, EvLoginSuccess, sessionPayload{
		Token: result.Token, UserID: result.UserID, Username: result.Username, Lobby: result.Lobby,
	})
	return nil
}

func (s *Server) handleRefreshRooms(sess *session, data json.RawMessage) error {
	var payload refreshRoomsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}

	// A reconnecting client presents its token instead of logging in again.
	if sess.userID == "" {
		if payload.Token == "" {
			return errors.ErrInvalidSession
		}
		claims, err := s.authService.Verify(payload.Token)
		if err != nil {
			return err
		}
		sess.userID = claims.UserID
		sess.username = claims.Username
	}

	lobby, err := s.authService.Rooms(sess.userID)
	if err != nil {
		return err
	}
	s.send(sess, EvRoomsRefreshed, lobby)
	return nil
}

func (s *Server) handleCreateRoom(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload createRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	room, err := s.roomService.CreateRoom(ctx, sess.userID, payload.PlayerName)
	if err != nil {
		return err
	}

	sess.playerName = payload.PlayerName
	sess.room = room.ID
	s.roomService.Subscribe(sess.id, room.ID, sess.sink)

	s.send(sess, EvRoomCreated, roomCreatedPayload{RoomID: room.ID, Bag: room.Bag})
	return nil
}

func (s *Server) handleJoinRoom(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload joinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	result, err := s.roomService.JoinRoom(ctx, services.JoinRoomCommand{
		Room:       payload.RoomID,
		PlayerName: payload.PlayerName,
		UserID:     sess.userID,
	})
	if err != nil {
		return err
	}

	// Joining another room moves the subscription, never duplicates it.
	if sess.room != "" && sess.room != payload.RoomID {
		s.roomService.Unsubscribe(sess.id, sess.room)
	}
	sess.playerName = payload.PlayerName
	sess.room = payload.RoomID
	s.roomService.Subscribe(sess.id, payload.RoomID, sess.sink)

	s.send(sess, EvRoomJoined, roomJoinedPayload{
		RoomID:  result.Room.ID,
		Bag:     result.Room.Bag,
		Players: playerNames(result.Players),
		Master:  result.Master,
		History: result.History,
	})
	return nil
}

func (s *Server) handleConfigureBag(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload bagPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.roomService.ConfigureBag(ctx, payload.RoomID, bagFrom(payload))
	return err
}

func (s *Server) handleAddHelp(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload addHelpPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.roomService.AddHelp(ctx, payload.RoomID, nameOr(payload.PlayerName, sess.playerName))
	return err
}

func (s *Server) handleDrawTokens(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload drawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.roomService.Draw(ctx, drawRequestFrom(payload, sess.playerName))
	return err
}

func (s *Server) handleRiskAll(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload riskAllPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.roomService.RiskAll(ctx, riskAllRequestFrom(payload, sess.playerName))
	return err
}

func (s *Server) handleReturnTokens(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload bagPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.roomService.ReturnTokens(ctx, payload.RoomID, payload.Successes, payload.Complications)
	return err
}

func (s *Server) handleResetBag(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload roomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	return s.roomService.ResetBag(ctx, payload.RoomID)
}

func (s *Server) handleModifier(
	ctx context.Context,
	sess *session,
	data json.RawMessage,
	update func(context.Context, domain.RoomID, string, int) error,
) error {
	var payload modifierPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	return update(ctx, payload.RoomID, nameOr(payload.PlayerName, sess.playerName), payload.Value)
}

func (s *Server) handleGenerateWeather(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload weatherPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	report, shared, err := s.roomService.GenerateWeather(ctx, payload.RoomID, sess.playerName, payload.Season, payload.Zone)
	if err != nil {
		return err
	}

	// Without a live room the forecast goes to the caller alone.
	if !shared {
		s.send(sess, EvWeatherGenerated, weatherGeneratedPayload{
			PlayerName: sess.playerName,
			Season:     report.Season,
			Zone:       report.Zone,
			Weather:    report.Weather,
		})
	}
	return nil
}

func (s *Server) handleSaveCharacter(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload saveCharacterPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	_, err := s.characterService.Save(ctx, services.SaveCharacterCommand{
		Room:       payload.RoomID,
		PlayerName: sess.playerName,
		UserID:     sess.userID,
		Sheet:      payload.Character,
	})
	return err
}

func (s *Server) handleGetCharacters(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload roomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	characters, err := s.characterService.Characters(ctx, payload.RoomID, s.viewer(sess))
	if err != nil {
		return err
	}
	s.send(sess, EvCharactersLoaded, charactersPayload{RoomID: payload.RoomID, Characters: characters})
	return nil
}

func (s *Server) handleAllCharacters(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload roomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	characters, err := s.characterService.AllForMaster(ctx, payload.RoomID, s.viewer(sess))
	if err != nil {
		return err
	}
	s.send(sess, EvAllCharacterSheets, charactersPayload{RoomID: payload.RoomID, Characters: characters})
	return nil
}

func (s *Server) handleToggleVisibility(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload visibilityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	return s.characterService.SetVisible(ctx, payload.RoomID, s.viewer(sess), payload.PlayerNames)
}

func (s *Server) handleLoadMyCharacter(ctx context.Context, sess *session, data json.RawMessage) error {
	var payload roomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errInvalidEnvelope
	}
	character, err := s.characterService.Mine(ctx, payload.RoomID, sess.playerName)
	if err != nil {
		return err
	}
	s.send(sess, EvMyCharacterLoaded, character)
	return nil
}

func (s *Server) viewer(sess *session) services.Viewer {
	return services.Viewer{PlayerName: sess.playerName, UserID: sess.userID}
}
