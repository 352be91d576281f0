package repository

import (
	"context"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists refresh token records.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindLatestByUserID returns the user's most recently issued token.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes a refresh token by its ID.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
