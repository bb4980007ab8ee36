package users

import (
	"context"
	"sync"

	"calendard/internal/common"
)

// MemoryRepository is a map-backed Repository used by tests and the memory
// storage mode.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, common.ErrConflict
		}
	}

	stored := cloneUser(user)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(func(u *User) bool { return u.Username == username })
}

func (r *MemoryRepository) GetByToken(ctx context.Context, token string) (*User, error) {
	return r.find(func(u *User) bool { return u.Token == token })
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.find(func(u *User) bool { return u.ID == id })
}

func (r *MemoryRepository) find(match func(*User) bool) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrNotFound
}

// SetFriends replaces the friends list of a stored user. Test helper; the
// API has no friend management endpoints.
func (r *MemoryRepository) SetFriends(id string, friends []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		u.Friends = append([]string(nil), friends...)
	}
}

func cloneUser(u *User) *User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.Salt = append([]byte(nil), u.Salt...)
	c.Friends = append([]string(nil), u.Friends...)
	return &c
}
