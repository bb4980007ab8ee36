package events

import (
	"context"
	"sort"
	"sync"

	"calendard/internal/common"
)

// MemoryRepository is a map-backed Repository used by tests and the memory
// storage mode. Returned records are copies; mutating them does not touch
// the store.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[string]*Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[string]*Event)}
}

func (r *MemoryRepository) Create(ctx context.Context, event *Event) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *event
	r.events[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	result := *event
	return &result, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Event, 0)
	for _, event := range r.events {
		if event.OwnerID == ownerID {
			c := *event
			result = append(result, &c)
		}
	}

	// wire order is chronological, mirrors the postgres ORDER BY
	sort.Slice(result, func(i, j int) bool {
		if result[i].Start != result[j].Start {
			return result[i].Start < result[j].Start
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *MemoryRepository) Replace(ctx context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return common.ErrNotFound
	}

	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return common.ErrNotFound
	}

	delete(r.events, id)
	return nil
}
