package mocks

import (
	"context"

	"github.com/mergington/activities/internal/domain/registry"
	"github.com/stretchr/testify/mock"
)

// Store is a mock for registry.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Seed(ctx context.Context, activities map[string]registry.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *Store) List(ctx context.Context) (map[string]registry.Activity, error) {
	args := m.Called(ctx)
	if activities, ok := args.Get(0).(map[string]registry.Activity); ok {
		return activities, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Get(ctx context.Context, name string) (registry.Activity, error) {
	args := m.Called(ctx, name)
	if act, ok := args.Get(0).(registry.Activity); ok {
		return act, args.Error(1)
	}
	return registry.Activity{}, args.Error(1)
}

func (m *Store) AddParticipant(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}

func (m *Store) RemoveParticipant(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}
