package registry

import "errors"

var (
	// ErrActivityNotFound indicates the activity name is not a registry key.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already a participant.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotSignedUp indicates the student is not a participant.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
)
