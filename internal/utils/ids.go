package utils

import "github.com/google/uuid"

// NewID returns a fresh time-ordered identifier (UUIDv7).
// Ids minted in the same millisecond still differ.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
