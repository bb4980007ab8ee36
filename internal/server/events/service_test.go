package events

import (
	"context"
	"errors"
	"testing"

	"calendard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo), repo
}

func createTestEvent(t *testing.T, s *Service, ownerID string) *Event {
	t.Helper()
	event, err := s.Create(context.Background(), ownerID, CreateParams{
		Name:        "standup",
		Start:       "2024-05-01T09:00:00",
		End:         "2024-05-01T09:30:00",
		Description: strPtr("daily sync"),
	})
	require.NoError(t, err)
	return event
}

func TestCreate_Success(t *testing.T) {
	s, repo := newTestService()

	event := createTestEvent(t, s, "owner-1")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "owner-1", event.OwnerID)

	stored, err := repo.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event, stored)
}

func TestCreate_EmptyDescriptionAllowed(t *testing.T) {
	s, _ := newTestService()

	event, err := s.Create(context.Background(), "owner-1", CreateParams{
		Name:        "standup",
		Start:       "2024-05-01T09:00:00",
		End:         "2024-05-01T09:30:00",
		Description: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", event.Description)
}

func TestCreate_ValidationOrder(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		params CreateParams
		field  string
		reason string
	}{
		{
			name:   "name missing",
			params: CreateParams{Start: "2024-05-01T09:00:00", End: "2024-05-01T10:00:00", Description: strPtr("")},
			field:  "name", reason: "Name is required",
		},
		{
			name:   "name blank after trim",
			params: CreateParams{Name: "   ", Start: "2024-05-01T09:00:00", End: "2024-05-01T10:00:00", Description: strPtr("")},
			field:  "name", reason: "Name must not be empty",
		},
		{
			name:   "start missing",
			params: CreateParams{Name: "x", End: "2024-05-01T10:00:00", Description: strPtr("")},
			field:  "start", reason: "Start date is required",
		},
		{
			name:   "end missing",
			params: CreateParams{Name: "x", Start: "2024-05-01T09:00:00", Description: strPtr("")},
			field:  "end", reason: "End date is required",
		},
		{
			name:   "description field missing entirely",
			params: CreateParams{Name: "x", Start: "2024-05-01T09:00:00", End: "2024-05-01T10:00:00"},
			field:  "description", reason: "Description is required",
		},
		{
			name:   "start after end",
			params: CreateParams{Name: "x", Start: "2024-05-01T10:00:00", End: "2024-05-01T09:00:00", Description: strPtr("")},
			field:  "start", reason: "Start date must be before end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, "owner-1", tt.params)
			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}

	// no record was created by any of the rejected payloads
	remaining, err := s.List(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCreate_OwnerIsNeverClientSupplied(t *testing.T) {
	s, _ := newTestService()

	event := createTestEvent(t, s, "owner-1")
	assert.Equal(t, "owner-1", event.OwnerID)
}

func TestList_ScopedToOwner(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	mine := createTestEvent(t, s, "owner-1")
	createTestEvent(t, s, "owner-2")

	result, err := s.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, mine.ID, result[0].ID)
}

func TestUpdate_PartialMergeLeavesOtherFieldsUntouched(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	event := createTestEvent(t, s, "owner-1")

	updated, err := s.Update(ctx, event.ID, "owner-1", Patch{Description: strPtr("moved notes")})
	require.NoError(t, err)

	assert.Equal(t, "moved notes", updated.Description)
	assert.Equal(t, event.Name, updated.Name)
	assert.Equal(t, event.Start, updated.Start)
	assert.Equal(t, event.End, updated.End)
}

func TestUpdate_EmptyDescriptionHonoredVerbatim(t *testing.T) {
	s, _ := newTestService()
	event := createTestEvent(t, s, "owner-1")

	updated, err := s.Update(context.Background(), event.ID, "owner-1", Patch{Description: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
}

func TestUpdate_EmptyPatchIsNoOp(t *testing.T) {
	s, _ := newTestService()
	event := createTestEvent(t, s, "owner-1")

	updated, err := s.Update(context.Background(), event.ID, "owner-1", Patch{})
	require.NoError(t, err)
	assert.Equal(t, event, updated)
}

func TestUpdate_DateValidation(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		patch Patch
	}{
		{"both supplied, inverted", Patch{Start: strPtr("2024-05-02T10:00:00"), End: strPtr("2024-05-02T09:00:00")}},
		{"start only, after existing end", Patch{Start: strPtr("2024-05-01T11:00:00")}},
		{"end only, before existing start", Patch{End: strPtr("2024-05-01T08:00:00")}},
		{"name blank after trim", Patch{Name: strPtr("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := createTestEvent(t, s, "owner-1")

			_, err := s.Update(ctx, event.ID, "owner-1", tt.patch)
			var ve *common.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)

			// stored record unchanged after the rejected update
			stored, err := s.repo.GetByID(ctx, event.ID)
			require.NoError(t, err)
			assert.Equal(t, event, stored)
		})
	}
}

func TestUpdate_StartOnlyAgainstExistingEnd(t *testing.T) {
	s, _ := newTestService()
	event := createTestEvent(t, s, "owner-1")

	// new start still before the existing end
	updated, err := s.Update(context.Background(), event.ID, "owner-1", Patch{Start: strPtr("2024-05-01T09:15:00")})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T09:15:00", updated.Start)
	assert.Equal(t, event.End, updated.End)
}

func TestUpdate_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Update(context.Background(), "missing", "owner-1", Patch{Name: strPtr("x")})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_ForbiddenForNonOwner(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	event := createTestEvent(t, s, "owner-1")

	_, err := s.Update(ctx, event.ID, "owner-2", Patch{Name: strPtr("hijacked")})
	assert.ErrorIs(t, err, common.ErrForbidden)

	stored, err := s.repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event, stored, "record must be unchanged after forbidden update")
}

func TestDelete_ReturnsCallersRemainingEvents(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	doomed := createTestEvent(t, s, "owner-1")
	kept := createTestEvent(t, s, "owner-1")
	createTestEvent(t, s, "owner-2") // other owner's event must not leak

	remaining, err := s.Delete(ctx, doomed.ID, "owner-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	_, err = s.repo.GetByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Delete(context.Background(), "missing", "owner-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_ForbiddenForNonOwner(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()
	event := createTestEvent(t, s, "owner-1")

	_, err := s.Delete(ctx, event.ID, "owner-2")
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = s.repo.GetByID(ctx, event.ID)
	assert.NoError(t, err, "event must still exist")
}
