package impl

import (
	"context"
	"log/slog"

	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accounts usecase.AccountUsecase
	tokens   usecase.TokenIssuer
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Tokens   usecase.TokenIssuer
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accounts: params.Accounts,
		tokens:   params.Tokens,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and opens its first session.
func (srv *authService) Register(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AuthResult, error) {
	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	user, err := srv.accounts.CreateAccount(ctx, input)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokens.GenerateAccessToken(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokens.CreateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login rotates the user's session: the current refresh token is destroyed
// before a new one is created, leaving exactly one record.
func (srv *authService) Login(ctx context.Context, identifier, password string) (*usecase.AuthResult, error) {
	if identifier == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	user, err := srv.accounts.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Info("Login for unknown identifier", slog.String("identifier", identifier))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !CheckPassword(srv.hasher, user, password) {
		srv.log(ctx).Info("Login with wrong password", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	previous, err := srv.tokens.GetRefreshTokenByUserID(ctx, user.ID)
	switch {
	case err == nil:
		srv.tokens.DestroyRefreshToken(ctx, previous)
	case errors.Is(err, repository.ErrRefreshTokenNotFound):
	default:
		return nil, errors.Wrap(err, "failed to load current refresh token")
	}

	accessToken, err := srv.tokens.GenerateAccessToken(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokens.CreateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
