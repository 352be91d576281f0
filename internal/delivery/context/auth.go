package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key holding the authenticated user's id.
const KeyUserID ContextKey = "user_id"

// SetUserID records the user the access token was minted for.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated user id set by the auth gate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
