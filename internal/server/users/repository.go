package users

import "context"

// Repository abstracts user persistence. Lookups return common.ErrNotFound
// when no record matches; Create returns common.ErrConflict on a duplicate
// username.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByToken(ctx context.Context, token string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
