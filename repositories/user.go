//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"tokenbag/domain"
	"tokenbag/errors"
)

type IUserRepository interface {
	CreateUser(username, hashedPassword string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	GetUserByID(id string) (domain.User, error)
	UpdateLastLogin(username string, at time.Time) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// Accounts are keyed by username; "idx:user:{id}" maps the generated ID
// back to the username for token-based lookups.
func userKey(username string) []byte {
	return []byte("user:" + username)
}

func userIdxKey(id string) []byte {
	return []byte("idx:user:" + id)
}

// CreateUser persists a new account. The password arrives already hashed.
func (u UserRepository) CreateUser(username, hashedPassword string) (domain.User, error) {
	user := domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(userIdxKey(user.ID), []byte(username))
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return user, nil
}

// GetUserByID follows the ID index to the account record.
func (u UserRepository) GetUserByID(id string) (domain.User, error) {
	var username string
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userIdxKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			username = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return u.GetUserByUsername(username)
}

func (u UserRepository) UpdateLastLogin(username string, at time.Time) error {
	err := u.db.Update(func(txn *badger.Txn) error {
		var user domain.User
		item, err := txn.Get(userKey(username))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		}); err != nil {
			return err
		}
		user.LastLogin = at
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return txn.Set(userKey(username), data)
	})
	if err == badger.ErrKeyNotFound {
		return errors.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}
