package common

import "github.com/google/uuid"

// NewID returns a fresh random identifier for an experience or question.
// Identifiers never change after creation, unlike list positions.
func NewID() string {
	return uuid.NewString()
}
