package impl

import (
	"context"
	"testing"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	mockService "paygate/internal/mocks/service"
	mockUsecase "paygate/internal/mocks/usecase"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	accounts *mockUsecase.MockAccountUsecase
	tokens   *mockUsecase.MockTokenIssuer
	hasher   *mockService.MockPasswordHasher
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authMocks) {
	m := &authMocks{
		accounts: mockUsecase.NewMockAccountUsecase(t),
		tokens:   mockUsecase.NewMockTokenIssuer(t),
		hasher:   mockService.NewMockPasswordHasher(t),
	}
	srv := NewAuthService(AuthServiceParams{
		Accounts: m.accounts,
		Tokens:   m.tokens,
		Hasher:   m.hasher,
		Logger:   newTestLogger(),
	})

	return srv, m
}

func TestAuthService_Register_MissingFieldTouchesNothing(t *testing.T) {
	inputs := []*usecase.CreateAccountInput{
		{Email: "u1@x.com", Password: "p1"},
		{Username: "u1", Password: "p1"},
		{Username: "u1", Email: "u1@x.com"},
		nil,
	}

	for _, input := range inputs {
		srv, _ := newAuthService(t)

		result, err := srv.Register(context.Background(), input)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, m := newAuthService(t)
	ctx := context.Background()
	input := &usecase.CreateAccountInput{Username: "u1", Email: "u1@x.com", Password: "p1"}
	user := &entity.User{ID: uuid.New(), Username: "u1"}
	refresh := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, Token: "refresh"}

	m.accounts.EXPECT().CreateAccount(ctx, input).Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken(ctx, user.ID).Return("access", nil)
	m.tokens.EXPECT().CreateRefreshToken(ctx, user.ID).Return(refresh, nil)

	result, err := srv.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Same(t, refresh, result.RefreshToken)
}

func TestAuthService_Register_Conflict(t *testing.T) {
	srv, m := newAuthService(t)
	ctx := context.Background()
	input := &usecase.CreateAccountInput{Username: "u1", Email: "u1@x.com", Password: "p1"}

	m.accounts.EXPECT().CreateAccount(ctx, input).Return(nil, domainerrors.ErrUserAlreadyExists)

	_, err := srv.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_RotatesRefreshToken(t *testing.T) {
	srv, m := newAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hash"}
	previous := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	fresh := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	m.accounts.EXPECT().GetUserByIdentifier(ctx, "u1").Return(user, nil)
	m.hasher.EXPECT().Check("p1", "hash").Return(true)
	m.tokens.EXPECT().GetRefreshTokenByUserID(ctx, user.ID).Return(previous, nil)
	destroy := m.tokens.EXPECT().DestroyRefreshToken(ctx, previous).Return()
	m.tokens.EXPECT().GenerateAccessToken(ctx, user.ID).Return("access", nil)
	m.tokens.EXPECT().CreateRefreshToken(ctx, user.ID).Return(fresh, nil).NotBefore(destroy.Call)

	result, err := srv.Login(ctx, "u1", "p1")

	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Same(t, fresh, result.RefreshToken)
}

func TestAuthService_Login_FirstSession(t *testing.T) {
	srv, m := newAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hash"}

	m.accounts.EXPECT().GetUserByIdentifier(ctx, "u1@x.com").Return(user, nil)
	m.hasher.EXPECT().Check("p1", "hash").Return(true)
	m.tokens.EXPECT().GetRefreshTokenByUserID(ctx, user.ID).Return(nil, repository.ErrRefreshTokenNotFound)
	m.tokens.EXPECT().GenerateAccessToken(ctx, user.ID).Return("access", nil)
	m.tokens.EXPECT().CreateRefreshToken(ctx, user.ID).Return(&entity.RefreshToken{}, nil)

	_, err := srv.Login(ctx, "u1@x.com", "p1")
	require.NoError(t, err)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Run("unknown identifier", func(t *testing.T) {
		srv, m := newAuthService(t)
		ctx := context.Background()

		m.accounts.EXPECT().GetUserByIdentifier(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)

		_, err := srv.Login(ctx, "ghost", "p1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, m := newAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), PasswordHash: "hash"}

		m.accounts.EXPECT().GetUserByIdentifier(ctx, "u1").Return(user, nil)
		m.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := srv.Login(ctx, "u1", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing field", func(t *testing.T) {
		srv, _ := newAuthService(t)

		_, err := srv.Login(context.Background(), "u1", "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
