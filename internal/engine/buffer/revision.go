package buffer

import "github.com/google/uuid"

// RevisionID identifies a buffer content state. Two buffers (or the same
// buffer at two points in time) share a RevisionID only if no content
// replacement happened between them.
type RevisionID string

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.New().String())
}
