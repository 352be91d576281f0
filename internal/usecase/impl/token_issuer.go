package impl

import (
	"context"
	"log/slog"

	deliverycontext "paygate/internal/delivery/context"
	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenIssuer implements the TokenIssuer interface.
type tokenIssuer struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// TokenIssuerParams holds dependencies for TokenIssuer, injected by Fx.
type TokenIssuerParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewTokenIssuer is the constructor for tokenIssuer.
func NewTokenIssuer(params TokenIssuerParams) usecase.TokenIssuer {
	return &tokenIssuer{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

func (srv *tokenIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateAccessToken reloads the user so the token carries current fields.
func (srv *tokenIssuer) GenerateAccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	token, err := srv.tokenService.SignAccessToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("user_id", userID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

func (srv *tokenIssuer) CreateRefreshToken(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error) {
	signed, err := srv.tokenService.SignRefreshToken(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign refresh token", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	token := &entity.RefreshToken{
		UserID: userID,
		Token:  signed,
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to persist refresh token", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, err
	}

	return token, nil
}

func (srv *tokenIssuer) GetRefreshTokenByUserID(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error) {
	return srv.refreshTokenRepo.FindLatestByUserID(ctx, userID)
}

func (srv *tokenIssuer) DestroyRefreshToken(ctx context.Context, token *entity.RefreshToken) {
	if token == nil {
		return
	}

	err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, token.ID)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Warn("Failed to destroy refresh token",
			slog.Any("token_id", token.ID),
			slog.Any("user_id", token.UserID),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Debug("Refresh token destroyed", slog.Any("token_id", token.ID))
}

func (srv *tokenIssuer) CheckValidity(token string) bool {
	_, err := srv.tokenService.ValidateRefreshToken(token)

	return err == nil
}
