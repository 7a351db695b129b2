package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/domain/registry"
)

// Store implements registry.Store for SQLite.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Seed replaces the store contents with the given dataset.
func (s *Store) Seed(ctx context.Context, activities map[string]registry.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM participants`); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}

	for name, act := range activities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants) VALUES (?, ?, ?, ?)`,
			name, act.Description, act.Schedule, act.MaxParticipants,
		)
		if err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", name, err)
		}
		for i, email := range act.Participants {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO participants (activity_name, email, position) VALUES (?, ?, ?)`,
				name, email, i,
			)
			if err != nil {
				return fmt.Errorf("failed to seed participant %q: %w", email, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// List returns every activity keyed by name, participants in signup order.
func (s *Store) List(ctx context.Context) (map[string]registry.Activity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, description, schedule, max_participants FROM activities`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	out := make(map[string]registry.Activity)
	for rows.Next() {
		var name string
		var act registry.Activity
		if err := rows.Scan(&name, &act.Description, &act.Schedule, &act.MaxParticipants); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		act.Participants = []string{}
		out[name] = act
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	prows, err := s.db.QueryContext(ctx,
		`SELECT activity_name, email FROM participants ORDER BY activity_name, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		act, ok := out[name]
		if !ok {
			continue
		}
		act.Participants = append(act.Participants, email)
		out[name] = act
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return out, nil
}

// Get returns one activity or registry.ErrActivityNotFound.
func (s *Store) Get(ctx context.Context, name string) (registry.Activity, error) {
	var act registry.Activity
	err := s.db.QueryRowContext(ctx,
		`SELECT description, schedule, max_participants FROM activities WHERE name = ?`,
		name,
	).Scan(&act.Description, &act.Schedule, &act.MaxParticipants)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.Activity{}, registry.ErrActivityNotFound
	}
	if err != nil {
		return registry.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT email FROM participants WHERE activity_name = ? ORDER BY position`,
		name,
	)
	if err != nil {
		return registry.Activity{}, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	act.Participants = []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return registry.Activity{}, fmt.Errorf("failed to scan participant: %w", err)
		}
		act.Participants = append(act.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return registry.Activity{}, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return act, nil
}

// AddParticipant appends email at the end of the activity's signup order.
// The primary key on (activity_name, email) backs the duplicate check, so a
// concurrent double signup surfaces as a unique violation rather than two
// inserted rows.
func (s *Store) AddParticipant(ctx context.Context, name, email string) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM activities WHERE name = ?`, name,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO participants (activity_name, email, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM participants WHERE activity_name = ?`,
		name, email, name,
	)
	if isUniqueViolation(err) {
		return registry.ErrAlreadySignedUp
	}
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant removes email from the activity's participant list.
func (s *Store) RemoveParticipant(ctx context.Context, name, email string) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM activities WHERE name = ?`, name,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check activity: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM participants WHERE activity_name = ? AND email = ?`,
		name, email,
	)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return registry.ErrNotSignedUp
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
