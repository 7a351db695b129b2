package registry_test

import (
	"context"
	"testing"

	"github.com/mergington/activities/internal/domain/registry"
	"github.com/mergington/activities/internal/domain/registry/mocks"
	"github.com/stretchr/testify/require"
)

func TestService_ListActivities(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("List", ctx).Return(registry.SeedActivities(), nil)

	svc := registry.NewService(store, nil)
	activities, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 9)
	require.Contains(t, activities, "Chess Club")
	require.Equal(t, 12, activities["Chess Club"].MaxParticipants)
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("AddParticipant", ctx, "Chess Club", "newstudent@mergington.edu").Return(nil)

	svc := registry.NewService(store, nil)
	err := svc.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestService_SignupUnknownActivity(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("AddParticipant", ctx, "Nonexistent Club", "student@mergington.edu").
		Return(registry.ErrActivityNotFound)

	svc := registry.NewService(store, nil)
	err := svc.Signup(ctx, "Nonexistent Club", "student@mergington.edu")
	require.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestService_SignupDuplicate(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("AddParticipant", ctx, "Chess Club", "michael@mergington.edu").
		Return(registry.ErrAlreadySignedUp)

	svc := registry.NewService(store, nil)
	err := svc.Signup(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, registry.ErrAlreadySignedUp)
}

func TestService_UnregisterAbsent(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("RemoveParticipant", ctx, "Chess Club", "ghost@mergington.edu").
		Return(registry.ErrNotSignedUp)

	svc := registry.NewService(store, nil)
	err := svc.Unregister(ctx, "Chess Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, registry.ErrNotSignedUp)
}

func TestActivity_HasParticipant(t *testing.T) {
	act := registry.Activity{Participants: []string{"michael@mergington.edu"}}

	require.True(t, act.HasParticipant("michael@mergington.edu"))
	require.False(t, act.HasParticipant("Michael@mergington.edu"), "matching is case-sensitive")
	require.False(t, act.HasParticipant("michael@mergington.edu "), "matching does not trim")
}
