package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tokenbag/errors"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "table-secret-42"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"Valid request", RegisterRequest{"alice", "secret"}, nil},
		{"Username too short", RegisterRequest{"al", "secret"}, errors.ErrInvalidRequest},
		{"Username not alphanumeric", RegisterRequest{"al ice!", "secret"}, errors.ErrInvalidRequest},
		{"Password too short", RegisterRequest{"alice", "nope"}, errors.ErrInvalidPassword},
		{"Password too long", RegisterRequest{"alice", strings.Repeat("a", 73)}, errors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenManager(t *testing.T) {
	t.Run("should round-trip the claims", func(t *testing.T) {
		req := require.New(t)
		tm := NewTokenManager("unit-test-secret", time.Hour)

		token, err := tm.Generate("user-1", "alice", []string{"user"})
		req.NoError(err)

		claims, err := tm.Validate(token)
		req.NoError(err)
		req.Equal("user-1", claims.UserID)
		req.Equal("alice", claims.Username)
		req.Equal([]string{"user"}, claims.Roles)
		req.Equal("tokenbag", claims.Issuer)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		req := require.New(t)
		tm := NewTokenManager("unit-test-secret", time.Hour)
		other := NewTokenManager("different-secret", time.Hour)

		token, err := other.Generate("user-1", "alice", nil)
		req.NoError(err)

		_, err = tm.Validate(token)
		req.ErrorIs(err, errors.ErrInvalidSession)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)
		tm := NewTokenManager("unit-test-secret", -time.Minute)

		token, err := tm.Generate("user-1", "alice", nil)
		req.NoError(err)

		_, err = tm.Validate(token)
		req.ErrorIs(err, errors.ErrInvalidSession)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		req := require.New(t)
		tm := NewTokenManager("unit-test-secret", time.Hour)

		_, err := tm.Validate("not.a.token")
		req.ErrorIs(err, errors.ErrInvalidSession)
	})
}

// BenchmarkHashPassword measures the CPU/RAM cost of a hash.
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("a-long-password-for-bench-123")
	}
}
