// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput carries a new account's fields.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountUsecase manages stored user records.
type AccountUsecase interface {
	// CreateAccount hashes the password and stores the user.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetUserByIdentifier looks up by email when identifier contains "@", else by username.
	GetUserByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	// UpdatePassword hashes the plaintext and replaces the stored hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	// DeleteAccount removes the user and every refresh token they hold.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
