package events

import "context"

// Repository abstracts event persistence. GetByID, Replace, and Delete
// return common.ErrNotFound when no record matches the id. Replace is a
// full-record write; partial-merge semantics live in the service.
type Repository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Event, error)
	Replace(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}
