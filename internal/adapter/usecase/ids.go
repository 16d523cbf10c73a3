package usecase

import "github.com/google/uuid"

// newID returns a time-ordered identifier.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
