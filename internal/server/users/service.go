package users

import (
	"context"
	"errors"
	"fmt"

	"calendard/internal/common"
	"calendard/internal/cryptox"
	"github.com/google/uuid"
)

// Service implements signup, login, and the auth gate that resolves an
// opaque token to a user.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup validates the payload, hashes the password, and creates a user with
// a fresh id and session token. The token never rotates afterwards.
func (s *Service) Signup(ctx context.Context, username, password string) (*User, error) {

	if username == "" {
		return nil, common.NewValidationError("username", "Username is required")
	}
	if password == "" {
		return nil, common.NewValidationError("password", "Password is required")
	}
	if len(username) > 20 {
		return nil, common.NewValidationError("username", "Username must be less than 20 characters")
	}
	if len(username) < 3 {
		return nil, common.NewValidationError("username", "Username must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, common.NewValidationError("password", "Password must be at least 6 characters")
	}
	if cryptox.PasswordScore(password) < cryptox.MinPasswordScore {
		return nil, common.NewValidationError("password", "Password is weak")
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrConflict
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking username: %w", common.ErrInternal)
	}

	salt := cryptox.RandomSalt()

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Token:        uuid.NewString(),
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         salt,
		Friends:      []string{},
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", common.ErrInternal)
	}

	return user, nil
}

// Login verifies the credentials and returns the resolved user together with
// the existing token. A bad username and a bad password produce the same
// answer.
func (s *Service) Login(ctx context.Context, username, password string) (*ResolvedUser, error) {

	if username == "" {
		return nil, common.NewValidationError("username", "Username is required")
	}
	if password == "" {
		return nil, common.NewValidationError("password", "Password is required")
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("error looking up user: %w", common.ErrInternal)
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return s.resolve(ctx, user)
}

// ResolveToken is the auth gate: it maps a bearer token to a resolved user.
// An empty token is ErrUnauthorized; a token matching no user is
// ErrInvalidToken, which tells the transport layer to clear the client-held
// credential.
func (s *Service) ResolveToken(ctx context.Context, token string) (*ResolvedUser, error) {

	if token == "" {
		return nil, common.ErrUnauthorized
	}

	user, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error looking up token: %w", common.ErrInternal)
	}

	return s.resolve(ctx, user)
}

// resolve joins the friends list. The join is all-or-nothing: any friend id
// that fails to resolve fails the whole resolution.
func (s *Service) resolve(ctx context.Context, user *User) (*ResolvedUser, error) {

	friends := make([]Friend, 0, len(user.Friends))

	for _, id := range user.Friends {
		friend, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrFriendResolution
			}
			return nil, fmt.Errorf("error resolving friend: %w", common.ErrInternal)
		}
		friends = append(friends, Friend{ID: friend.ID, Username: friend.Username})
	}

	return &ResolvedUser{
		ID:       user.ID,
		Username: user.Username,
		Token:    user.Token,
		Friends:  friends,
	}, nil
}
