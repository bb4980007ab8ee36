package users

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"calendard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "c0rrect-horse-battery-st4ple"

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo), repo
}

func signupTestUser(t *testing.T, s *Service, username string) *User {
	t.Helper()
	u, err := s.Signup(context.Background(), username, strongPassword)
	require.NoError(t, err)
	return u
}

func TestSignup_Success(t *testing.T) {
	s, _ := newTestService()

	user, err := s.Signup(context.Background(), "alice", strongPassword)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.Token)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Friends)
}

func TestSignup_PasswordNeverStoredInPlaintext(t *testing.T) {
	s, repo := newTestService()
	signupTestUser(t, s, "alice")

	stored, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, stored.Salt)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.False(t, bytes.Contains(stored.PasswordHash, []byte(strongPassword)))
	assert.False(t, bytes.Contains(stored.Salt, []byte(strongPassword)))
}

func TestSignup_Validation(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		field    string
	}{
		{"missing username", "", strongPassword, "username"},
		{"missing password", "alice", "", "password"},
		{"username too long", "abcdefghijklmnopqrstu", strongPassword, "username"},
		{"username too short", "al", strongPassword, "username"},
		{"password too short", "alice", "aB3!x", "password"},
		{"password weak", "alice", "password1", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Signup(ctx, tt.username, tt.password)
			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	s, _ := newTestService()
	signupTestUser(t, s, "alice")

	_, err := s.Signup(context.Background(), "alice", strongPassword)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestLogin_ReturnsExistingToken(t *testing.T) {
	s, _ := newTestService()
	created := signupTestUser(t, s, "alice")

	resolved, err := s.Login(context.Background(), "alice", strongPassword)
	require.NoError(t, err)

	assert.Equal(t, created.ID, resolved.ID)
	assert.Equal(t, created.Token, resolved.Token, "login must not mint a new token")
}

func TestLogin_BadCredentials(t *testing.T) {
	s, _ := newTestService()
	signupTestUser(t, s, "alice")
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.Login(ctx, "nobody", strongPassword)
	assert.ErrorIs(t, err, common.ErrUnauthorized, "unknown user and bad password must be indistinguishable")
}

func TestResolveToken(t *testing.T) {
	s, _ := newTestService()
	created := signupTestUser(t, s, "alice")
	ctx := context.Background()

	resolved, err := s.ResolveToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
	assert.Empty(t, resolved.Friends)

	_, err = s.ResolveToken(ctx, "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.ResolveToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestResolveToken_JoinsFriends(t *testing.T) {
	s, repo := newTestService()
	alice := signupTestUser(t, s, "alice")
	bob := signupTestUser(t, s, "bob")

	repo.SetFriends(alice.ID, []string{bob.ID})

	resolved, err := s.ResolveToken(context.Background(), alice.Token)
	require.NoError(t, err)
	require.Len(t, resolved.Friends, 1)
	assert.Equal(t, Friend{ID: bob.ID, Username: "bob"}, resolved.Friends[0])
}

func TestResolveToken_FriendJoinIsAllOrNothing(t *testing.T) {
	s, repo := newTestService()
	alice := signupTestUser(t, s, "alice")
	bob := signupTestUser(t, s, "bob")

	repo.SetFriends(alice.ID, []string{bob.ID, "missing-id"})

	_, err := s.ResolveToken(context.Background(), alice.Token)
	assert.ErrorIs(t, err, common.ErrFriendResolution)
}
