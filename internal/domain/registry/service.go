package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Service handles activity registry operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new registry service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, logger: logger}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	activities, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

// Signup adds email to the activity's participant list, preserving signup
// order. Capacity (max_participants) is deliberately not checked; the
// reference behavior accepts signups past capacity.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	if err := s.store.AddParticipant(ctx, activityName, email); err != nil {
		return err
	}
	s.logger.Info("student signed up", "activity", activityName, "email", email)
	return nil
}

// Unregister removes email from the activity's participant list.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	if err := s.store.RemoveParticipant(ctx, activityName, email); err != nil {
		return err
	}
	s.logger.Info("student unregistered", "activity", activityName, "email", email)
	return nil
}
