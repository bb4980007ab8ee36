package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calendard/internal/calendar"
	"calendard/internal/common"
	"github.com/google/uuid"
)

// Service validates and applies event operations. Callers pass the id of the
// already-authenticated user; ownership is still re-checked against the
// loaded record on every mutation.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all events owned by the caller. Stored wire timestamps are
// passed through untouched; range filtering for display is a client concern.
func (s *Service) List(ctx context.Context, ownerID string) ([]*Event, error) {
	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", common.ErrInternal)
	}
	return result, nil
}

// Create validates the payload and persists a new event owned by the caller.
// Rules are checked in a fixed order and the first failure aborts.
func (s *Service) Create(ctx context.Context, ownerID string, p CreateParams) (*Event, error) {

	if p.Name == "" {
		return nil, common.NewValidationError("name", "Name is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, common.NewValidationError("name", "Name must not be empty")
	}
	if p.Start == "" {
		return nil, common.NewValidationError("start", "Start date is required")
	}
	if p.End == "" {
		return nil, common.NewValidationError("end", "End date is required")
	}
	if p.Description == nil {
		return nil, common.NewValidationError("description", "Description is required")
	}
	if calendar.CompareWire(p.Start, p.End) > 0 {
		return nil, common.NewValidationError("start", "Start date must be before end date")
	}

	event := &Event{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        p.Name,
		Start:       p.Start,
		End:         p.End,
		Description: *p.Description,
	}

	event, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", common.ErrInternal)
	}

	return event, nil
}

// Update applies a partial update to an existing event. Only supplied fields
// are touched; explicitly supplied empty strings are honored verbatim. An
// empty patch is a no-op that returns the current record.
func (s *Service) Update(ctx context.Context, eventID, ownerID string, p Patch) (*Event, error) {

	event, err := s.loadOwned(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, common.NewValidationError("name", "Name must not be empty")
	}
	switch {
	case p.Start != nil && p.End != nil:
		if calendar.CompareWire(*p.Start, *p.End) > 0 {
			return nil, common.NewValidationError("start", "Start date must be before end date")
		}
	case p.Start != nil:
		if calendar.CompareWire(*p.Start, event.End) > 0 {
			return nil, common.NewValidationError("start", "Start date must be before end date")
		}
	case p.End != nil:
		if calendar.CompareWire(event.Start, *p.End) > 0 {
			return nil, common.NewValidationError("end", "End date must be after start date")
		}
	}

	if p.isEmpty() {
		return event, nil
	}

	if p.Name != nil {
		event.Name = *p.Name
	}
	if p.Start != nil {
		event.Start = *p.Start
	}
	if p.End != nil {
		event.End = *p.End
	}
	if p.Description != nil {
		event.Description = *p.Description
	}

	if err := s.repo.Replace(ctx, event); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error writing event: %w", common.ErrInternal)
	}

	return event, nil
}

// Delete removes the caller's event and returns the caller's remaining
// events so the client can refresh its view in one round trip.
func (s *Service) Delete(ctx context.Context, eventID, ownerID string) ([]*Event, error) {

	if _, err := s.loadOwned(ctx, eventID, ownerID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error deleting event: %w", common.ErrInternal)
	}

	return s.List(ctx, ownerID)
}

// loadOwned fetches the event and enforces the ownership check that guards
// every mutation.
func (s *Service) loadOwned(ctx context.Context, eventID, ownerID string) (*Event, error) {

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading event: %w", common.ErrInternal)
	}

	if event.OwnerID != ownerID {
		return nil, common.ErrForbidden
	}

	return event, nil
}
