//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"tokenbag/auth"
	"tokenbag/domain"
	"tokenbag/errors"
	"tokenbag/repositories"
)

type IAuthService interface {
	Register(username, password string) (Session, error)
	Login(username, password string) (Session, error)
	Verify(token string) (*auth.CustomClaims, error)
	Rooms(userID string) (Lobby, error)
}

// Session is what a fresh login or registration hands back.
type Session struct {
	Token    string
	UserID   string
	Username string
	Lobby    Lobby
}

// Lobby lists the rooms a user can get back into.
type Lobby struct {
	Owned  []RoomSummary `json:"owned"`
	Shared []RoomSummary `json:"shared"`
}

// RoomSummary is one lobby line. MyPlayerName is the name the user plays
// under in that room (their own pick for owned rooms too).
type RoomSummary struct {
	RoomID       domain.RoomID `json:"room_id"`
	Active       bool          `json:"active"`
	CreatedAt    time.Time     `json:"created_at"`
	MyPlayerName string        `json:"my_player_name,omitempty"`
}

type AuthService struct {
	userRepository repositories.IUserRepository
	roomRepository repositories.IRoomRepository
	tokens         *auth.TokenManager
}

func NewAuthService(
	userRepository repositories.IUserRepository,
	roomRepository repositories.IRoomRepository,
	tokens *auth.TokenManager,
) IAuthService {
	return &AuthService{
		userRepository: userRepository,
		roomRepository: roomRepository,
		tokens:         tokens,
	}
}

func (s *AuthService) Register(username, password string) (Session, error) {
	// Validate business rules before any expensive cryptographic work.
	if err := auth.ValidateRegister(auth.RegisterRequest{Username: username, Password: password}); err != nil {
		return Session{}, err
	}

	// Hashing happens in the service layer to keep the repository unaware
	// of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(username, hashedPassword)
	if err != nil {
		return Session{}, err // Propagates ErrUserAlreadyExists if the name is taken
	}

	return s.openSession(user)
}

func (s *AuthService) Login(username, password string) (Session, error) {
	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	// Best-effort: a failed timestamp update must not block the login.
	_ = s.userRepository.UpdateLastLogin(username, time.Now().UTC())

	return s.openSession(user)
}

// Verify parses the session token and returns its claims.
func (s *AuthService) Verify(token string) (*auth.CustomClaims, error) {
	return s.tokens.Validate(token)
}

// Rooms rebuilds the lobby listings for an already-authenticated user.
func (s *AuthService) Rooms(userID string) (Lobby, error) {
	owned, err := s.roomRepository.RoomsOwnedBy(userID)
	if err != nil {
		return Lobby{}, err
	}
	shared, err := s.roomRepository.RoomsSharedWith(userID)
	if err != nil {
		return Lobby{}, err
	}

	ownedSummaries := lo.Map(owned, func(room domain.Room, _ int) RoomSummary {
		return RoomSummary{RoomID: room.ID, Active: room.Active, CreatedAt: room.CreatedAt}
	})
	sharedSummaries := lo.Map(shared, func(m repositories.RoomMembership, _ int) RoomSummary {
		return RoomSummary{
			RoomID:       m.Room.ID,
			Active:       m.Room.Active,
			CreatedAt:    m.Room.CreatedAt,
			MyPlayerName: m.PlayerName,
		}
	})
	return Lobby{Owned: ownedSummaries, Shared: sharedSummaries}, nil
}

func (s *AuthService) openSession(user domain.User) (Session, error) {
	token, err := s.tokens.Generate(user.ID, user.Username, user.Roles)
	if err != nil {
		return Session{}, err
	}
	lobby, err := s.Rooms(user.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: user.ID, Username: user.Username, Lobby: lobby}, nil
}
