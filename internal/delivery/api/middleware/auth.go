package middleware

import (
	"log/slog"
	"strings"
	"time"

	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes with an access token and silently replaces an
// expired one while the user's refresh token is still valid.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	tokens   usecase.TokenIssuer
	now      func() time.Time
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Tokens   usecase.TokenIssuer
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		tokens:   params.Tokens,
		now:      time.Now,
		logger:   params.Logger,
	}
}

// Authenticate verifies the access token's signature before reading its
// expiry. An expired token is replaced when the user's current refresh token
// verifies; the replacement goes out in the response Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.ParseAccessToken(raw)
		if err != nil || claims.ExpiresAt == nil || claims.User.ID == uuid.Nil {
			return domainerrors.ErrTokenInvalid
		}

		userID := claims.User.ID
		if claims.IsExpired(m.now()) {
			if err := m.refresh(c, userID); err != nil {
				return err
			}
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

func (m *AuthMiddleware) refresh(c echo.Context, userID uuid.UUID) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Any("user_id", userID))

	current, err := m.tokens.GetRefreshTokenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			logger.Info("Access token expired without a session")

			return domainerrors.ErrRefreshTokenInvalid
		}

		return errors.Wrap(err, "failed to load refresh token")
	}

	if !m.tokens.CheckValidity(current.Token) {
		logger.Info("Refresh token no longer valid")
		m.tokens.DestroyRefreshToken(ctx, current)

		// Reported as an unknown user; clients already depend on the 404.
		return domainerrors.ErrUserNotFound
	}

	access, err := m.tokens.GenerateAccessToken(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to reissue access token")
	}

	c.Response().Header().Set(echo.HeaderAuthorization, bearerPrefix+access)
	logger.Debug("Access token reissued")

	return nil
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}

	return token, true
}
