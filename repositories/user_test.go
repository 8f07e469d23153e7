package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tokenbag/errors"
)

func Test_CreateUser_And_Lookups(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	created, err := repository.CreateUser("alice", "hashed-secret")
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Equal([]string{"user"}, created.Roles)

	byName, err := repository.GetUserByUsername("alice")
	req.NoError(err)
	req.Equal(created.ID, byName.ID)
	req.Equal("hashed-secret", byName.PasswordHash)

	byID, err := repository.GetUserByID(created.ID)
	req.NoError(err)
	req.Equal("alice", byID.Username)
}

func Test_CreateUser_Duplicate(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice", "hash-1")
	req.NoError(err)

	_, err = repository.CreateUser("alice", "hash-2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func Test_Unknown_User(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.GetUserByUsername("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)

	_, err = repository.GetUserByID("no-such-id")
	req.ErrorIs(err, errors.ErrUserNotFound)

	req.ErrorIs(repository.UpdateLastLogin("nobody", time.Now()), errors.ErrUserNotFound)
}

func Test_UpdateLastLogin(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice", "hash")
	req.NoError(err)

	at := time.Now().UTC().Truncate(time.Second)
	req.NoError(repository.UpdateLastLogin("alice", at))

	fetched, err := repository.GetUserByUsername("alice")
	req.NoError(err)
	req.Equal(at, fetched.LastLogin)
}
