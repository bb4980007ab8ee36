package db

import (
	"context"

	"calendard/internal/server/events"
	"calendard/internal/server/users"
)

// InMemoryRepositoryManager backs the memory storage mode. Data does not
// survive a restart; intended for development and tests.
type InMemoryRepositoryManager struct {
	users  users.Repository
	events events.Repository
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Events() events.Repository {
	return m.events
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewMemoryRepository(),
		events: events.NewMemoryRepository(),
	}
}
