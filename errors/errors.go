// Package errors holds the failure taxonomy of the server. Every failure
// is reported synchronously to the originating caller only; handlers must
// isolate their own failures and keep the process serving.
package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrRoomNotFound       = fmt.Errorf("room not found")
	ErrRoomFull           = fmt.Errorf("room is full (max 10 players)")
	ErrInsufficientTokens = fmt.Errorf("not enough tokens in the bag")
	ErrDuplicateName      = fmt.Errorf("player name already in use in this room")
	ErrPlayerNotFound     = fmt.Errorf("player not found in this room")
	ErrMasterOnly         = fmt.Errorf("only the master may do that")
	ErrPersistence        = fmt.Errorf("persistence failure")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrUnknownForecast    = fmt.Errorf("unknown season or zone")

	ErrUserAlreadyExists  = fmt.Errorf("username already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet requirements")
	ErrTokenGeneration    = fmt.Errorf("could not generate session token")
	ErrInvalidSession     = fmt.Errorf("invalid or expired session")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)

// Kind maps an error to the machine-readable kind carried by the error
// event. Anything unmapped is reported as internal.
func Kind(err error) string {
	switch {
	case stderrors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	case stderrors.Is(err, ErrRoomFull):
		return "room_full"
	case stderrors.Is(err, ErrInsufficientTokens):
		return "insufficient_tokens"
	case stderrors.Is(err, ErrDuplicateName):
		return "duplicate_name"
	case stderrors.Is(err, ErrPlayerNotFound):
		return "player_not_found"
	case stderrors.Is(err, ErrMasterOnly):
		return "master_only"
	case stderrors.Is(err, ErrPersistence):
		return "persistence_failure"
	case stderrors.Is(err, ErrInvalidRequest), stderrors.Is(err, ErrUnknownForecast):
		return "invalid_request"
	case stderrors.Is(err, ErrUserAlreadyExists),
		stderrors.Is(err, ErrUserNotFound),
		stderrors.Is(err, ErrInvalidCredentials),
		stderrors.Is(err, ErrInvalidPassword),
		stderrors.Is(err, ErrTokenGeneration),
		stderrors.Is(err, ErrInvalidSession):
		return "auth_failure"
	default:
		return "internal"
	}
}
