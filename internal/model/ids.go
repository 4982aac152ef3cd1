package model

import "github.com/google/uuid"

// IDGenerator returns a fresh entry id on every call.
type IDGenerator func() string

// NewID returns a time-ordered UUIDv7. uuid guarantees monotonic values
// within the process, so entries added in the same millisecond never
// collide.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
