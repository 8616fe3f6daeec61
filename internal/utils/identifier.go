package utils

import "github.com/google/uuid"

// NewID generates a unique identifier suitable as a primary key for any
// entity type. UUIDv7 carries a millisecond timestamp plus random bits, so
// rapid successive calls within the same millisecond still cannot collide
// and ids sort roughly by creation time. Falls back to v4 in the unlikely
// event the v7 constructor fails (entropy exhaustion).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
