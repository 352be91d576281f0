package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted long-lived credential. The most recent record for
// a user is that user's current session; deleting it revokes the session even
// though the signed token stays cryptographically valid until expiry.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string // Signed JWT carrying the user id and expiry.
	CreatedAt time.Time
}
