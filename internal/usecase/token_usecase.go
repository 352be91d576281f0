package usecase

import (
	"context"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenIssuer mints access tokens and manages persisted refresh tokens.
type TokenIssuer interface {
	// GenerateAccessToken loads the user and signs a token carrying its public fields.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID) (string, error)
	// CreateRefreshToken signs and persists a refresh token for the user.
	CreateRefreshToken(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error)
	// GetRefreshTokenByUserID returns the user's current (most recent) refresh token.
	GetRefreshTokenByUserID(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error)
	// DestroyRefreshToken removes the record. Failures are logged, never returned.
	DestroyRefreshToken(ctx context.Context, token *entity.RefreshToken)
	// CheckValidity reports whether the signed token verifies and is unexpired.
	CheckValidity(token string) bool
}
