package service

import (
	"time"

	"paygate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the payload of an access token: a snapshot of the user at mint time.
type AccessClaims struct {
	User entity.PublicUser `json:"user"`
	jwt.RegisteredClaims
}

// IsExpired reports whether the token carries an expiry earlier than now.
// A token without expiry is not considered expired; callers reject it separately.
func (c *AccessClaims) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// RefreshClaims is the payload of a refresh token.
type RefreshClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService signs and parses JWTs.
type TokenService interface {
	// SignAccessToken mints a short-lived access token embedding the user's public fields.
	SignAccessToken(user *entity.User) (string, error)

	// SignRefreshToken mints a long-lived refresh token embedding the user id.
	SignRefreshToken(userID uuid.UUID) (string, error)

	// ParseAccessToken verifies the signature but not the expiry, so an
	// expired token still yields its claims.
	ParseAccessToken(token string) (*AccessClaims, error)

	// ValidateRefreshToken verifies signature and expiry.
	ValidateRefreshToken(token string) (*RefreshClaims, error)
}
