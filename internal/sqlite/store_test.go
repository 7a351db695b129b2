package sqlite

import (
	"context"
	"testing"

	"github.com/mergington/activities/internal/domain/registry"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(NewTestDB(t))
	require.NoError(t, store.Seed(context.Background(), registry.SeedActivities()))
	return store
}

func TestStore_SeedAndList(t *testing.T) {
	store := newSeededStore(t)

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)

	chess := activities["Chess Club"]
	require.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddParticipant(ctx, "Chess Club", "extra@mergington.edu"))
	require.NoError(t, store.Seed(ctx, registry.SeedActivities()))

	act, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, act.Participants, 2)
}

func TestStore_GetUnknownActivity(t *testing.T) {
	store := newSeededStore(t)

	_, err := store.Get(context.Background(), "Nonexistent Club")
	require.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestStore_AddParticipantPreservesOrder(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddParticipant(ctx, "Chess Club", "first@mergington.edu"))
	require.NoError(t, store.AddParticipant(ctx, "Chess Club", "second@mergington.edu"))

	act, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"first@mergington.edu",
		"second@mergington.edu",
	}, act.Participants)
}

func TestStore_AddParticipantDuplicate(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	err := store.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, registry.ErrAlreadySignedUp)

	act, getErr := store.Get(ctx, "Chess Club")
	require.NoError(t, getErr)
	require.Len(t, act.Participants, 2)
}

func TestStore_AddParticipantUnknownActivity(t *testing.T) {
	store := newSeededStore(t)

	err := store.AddParticipant(context.Background(), "Nonexistent Club", "student@mergington.edu")
	require.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestStore_AddParticipantIgnoresCapacity(t *testing.T) {
	store := NewStore(NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, map[string]registry.Activity{
		"Tiny Club": {
			Description:     "small",
			Schedule:        "never",
			MaxParticipants: 1,
			Participants:    []string{"a@mergington.edu"},
		},
	}))

	require.NoError(t, store.AddParticipant(ctx, "Tiny Club", "b@mergington.edu"))

	act, err := store.Get(ctx, "Tiny Club")
	require.NoError(t, err)
	require.Len(t, act.Participants, 2)
}

func TestStore_RemoveParticipant(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"))

	act, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"daniel@mergington.edu"}, act.Participants)
}

func TestStore_RemoveParticipantAbsent(t *testing.T) {
	store := newSeededStore(t)

	err := store.RemoveParticipant(context.Background(), "Chess Club", "notsignedup@mergington.edu")
	require.ErrorIs(t, err, registry.ErrNotSignedUp)
}

func TestStore_RemoveParticipantUnknownActivity(t *testing.T) {
	store := newSeededStore(t)

	err := store.RemoveParticipant(context.Background(), "Nonexistent Club", "student@mergington.edu")
	require.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestStore_RemoveThenReAddGoesToEnd(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"))
	require.NoError(t, store.AddParticipant(ctx, "Chess Club", "michael@mergington.edu"))

	act, err := store.Get(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"daniel@mergington.edu", "michael@mergington.edu"}, act.Participants)
}
