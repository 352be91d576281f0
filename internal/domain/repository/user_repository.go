// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the persistence operations of the credential store.
// Lookups return domainerrors.ErrUserNotFound when no row matches.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Unique violations yield domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateEmail changes the user's email.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the user; refresh tokens go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
