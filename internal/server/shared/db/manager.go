// Package db wires concrete repository implementations behind a single
// manager so the app can swap storage backends.
package db

import (
	"context"

	"calendard/internal/server/events"
	"calendard/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Close() error
	Users() users.Repository
	Events() events.Repository
}
