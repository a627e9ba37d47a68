package photo

import (
	"time"

	"github.com/google/uuid"
)

// Photo is an immutable binary blob uploaded by a user, served back with its
// original content type.
type Photo struct {
	ID          uuid.UUID
	OwnerID     string
	Data        []byte
	ContentType string
	CreatedAt   time.Time
}
