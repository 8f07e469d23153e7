package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tokenbag/auth"
	"tokenbag/domain"
	"tokenbag/errors"
	"tokenbag/mocks"
	"tokenbag/repositories"
	"tokenbag/services"
)

func newAuthServiceFixture(t *testing.T) (*mocks.MockIUserRepository, *mocks.MockIRoomRepository, services.IAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	rooms := mocks.NewMockIRoomRepository(ctrl)
	tokens := auth.NewTokenManager("unit-test-secret", time.Hour)
	return users, rooms, services.NewAuthService(users, rooms, tokens)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestAuthService_Register(t *testing.T) {
	t.Run("should hash the password and open a session", func(t *testing.T) {
		req := require.New(t)
		users, rooms, service := newAuthServiceFixture(t)

		var storedHash string
		users.EXPECT().CreateUser("alice", gomock.Any()).
			DoAndReturn(func(username, hashedPassword string) (domain.User, error) {
				storedHash = hashedPassword
				return domain.User{ID: "user-1", Username: username, Roles: []string{"user"}}, nil
			})
		rooms.EXPECT().RoomsOwnedBy("user-1").Return(nil, nil)
		rooms.EXPECT().RoomsSharedWith("user-1").Return(nil, nil)

		session, err := service.Register("alice", "secret")

		req.NoError(err)
		req.NotEmpty(session.Token)
		req.Equal("alice", session.Username)
		// Plain password never reaches the repository
		req.NotEqual("secret", storedHash)
		match, err := auth.ComparePassword("secret", storedHash)
		req.NoError(err)
		req.True(match)
	})

	t.Run("should reject weak input before hashing", func(t *testing.T) {
		req := require.New(t)
		_, _, service := newAuthServiceFixture(t)

		_, err := service.Register("alice", "nope")
		req.ErrorIs(err, errors.ErrInvalidPassword)

		_, err = service.Register("al", "secret")
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("should propagate a taken username", func(t *testing.T) {
		req := require.New(t)
		users, _, service := newAuthServiceFixture(t)

		users.EXPECT().CreateUser("alice", gomock.Any()).Return(domain.User{}, errors.ErrUserAlreadyExists)

		_, err := service.Register("alice", "secret")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("should verify credentials and list the lobby", func(t *testing.T) {
		req := require.New(t)
		users, rooms, service := newAuthServiceFixture(t)

		users.EXPECT().GetUserByUsername("alice").Return(domain.User{
			ID: "user-1", Username: "alice", PasswordHash: hashOf(t, "secret"), Roles: []string{"user"},
		}, nil)
		users.EXPECT().UpdateLastLogin("alice", gomock.Any()).Return(nil)
		rooms.EXPECT().RoomsOwnedBy("user-1").Return([]domain.Room{
			{ID: "owned001", Active: true},
		}, nil)
		rooms.EXPECT().RoomsSharedWith("user-1").Return([]repositories.RoomMembership{
			{Room: domain.Room{ID: "shared01", Active: true}, PlayerName: "Ally"},
		}, nil)

		session, err := service.Login("alice", "secret")

		req.NoError(err)
		req.Len(session.Lobby.Owned, 1)
		req.Equal(domain.RoomID("owned001"), session.Lobby.Owned[0].RoomID)
		req.Len(session.Lobby.Shared, 1)
		req.Equal("Ally", session.Lobby.Shared[0].MyPlayerName)

		claims, err := service.Verify(session.Token)
		req.NoError(err)
		req.Equal("user-1", claims.UserID)
	})

	t.Run("should answer the same error for unknown user and wrong password", func(t *testing.T) {
		req := require.New(t)
		users, _, service := newAuthServiceFixture(t)

		users.EXPECT().GetUserByUsername("ghost").Return(domain.User{}, errors.ErrUserNotFound)
		_, err := service.Login("ghost", "whatever")
		req.ErrorIs(err, errors.ErrInvalidCredentials)

		users.EXPECT().GetUserByUsername("alice").Return(domain.User{
			ID: "user-1", Username: "alice", PasswordHash: hashOf(t, "secret"),
		}, nil)
		_, err = service.Login("alice", "wrong")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

func TestAuthService_Verify(t *testing.T) {
	req := require.New(t)
	_, _, service := newAuthServiceFixture(t)

	_, err := service.Verify("not-a-token")
	req.ErrorIs(err, errors.ErrInvalidSession)
}
