package usecase

import (
	"context"

	"paygate/internal/domain/entity"
)

// AuthResult is returned by register and login.
type AuthResult struct {
	User         *entity.User
	AccessToken  string
	RefreshToken *entity.RefreshToken
}

// AuthUsecase handles registration and login.
type AuthUsecase interface {
	// Register fails with ErrUserAlreadyExists when the username or email is taken.
	Register(ctx context.Context, input *CreateAccountInput) (*AuthResult, error)
	// Login accepts a username or email as identifier. The user's previous
	// refresh token is destroyed before a new one is issued.
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
}
