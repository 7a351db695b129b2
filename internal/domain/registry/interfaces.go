package registry

import "context"

// Store provides persistence operations for the activity registry.
type Store interface {
	// Seed installs the initial dataset, replacing any existing state.
	Seed(ctx context.Context, activities map[string]Activity) error
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) (map[string]Activity, error)
	// Get returns one activity or ErrActivityNotFound.
	Get(ctx context.Context, name string) (Activity, error)
	// AddParticipant appends email to the activity's participant list.
	// Returns ErrActivityNotFound or ErrAlreadySignedUp.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity's participant list.
	// Returns ErrActivityNotFound or ErrNotSignedUp.
	RemoveParticipant(ctx context.Context, name, email string) error
}
