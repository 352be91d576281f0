package impl

import (
	"context"
	"testing"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	mockRepo "paygate/internal/mocks/repository"
	mockService "paygate/internal/mocks/service"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAccount_Success(t *testing.T) {
	tx := newTxMocks(t)
	hasher := mockService.NewMockPasswordHasher(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager: tx.txManager,
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Hasher:    hasher,
		Logger:    newTestLogger(),
	})

	ctx := context.Background()
	newID := uuid.New()
	input := &usecase.CreateAccountInput{Username: "u1", Email: "u1@x.com", Password: "p1"}

	hasher.EXPECT().Hash("p1").Return("hashed", nil)
	tx.factory.EXPECT().NewUserRepository().Return(txUserRepo)
	txUserRepo.EXPECT().FindByUsername(ctx, "u1").Return(nil, domainerrors.ErrUserNotFound)
	txUserRepo.EXPECT().FindByEmail(ctx, "u1@x.com").Return(nil, domainerrors.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "u1" && u.Email == "u1@x.com" && u.PasswordHash == "hashed"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = newID }).
		Return(nil)

	user, err := srv.CreateAccount(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAccountService_CreateAccount_Conflict(t *testing.T) {
	existing := &entity.User{ID: uuid.New()}

	tests := []struct {
		name       string
		byUsername *entity.User
		byEmail    *entity.User
	}{
		{name: "username taken", byUsername: existing},
		{name: "email taken", byEmail: existing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := newTxMocks(t)
			hasher := mockService.NewMockPasswordHasher(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			srv := NewAccountService(AccountServiceParams{
				TxManager: tx.txManager,
				UserRepo:  mockRepo.NewMockUserRepository(t),
				Hasher:    hasher,
				Logger:    newTestLogger(),
			})
			ctx := context.Background()

			hasher.EXPECT().Hash("p1").Return("hashed", nil)
			tx.factory.EXPECT().NewUserRepository().Return(txUserRepo)
			if tt.byUsername != nil {
				txUserRepo.EXPECT().FindByUsername(ctx, "u1").Return(tt.byUsername, nil)
			} else {
				txUserRepo.EXPECT().FindByUsername(ctx, "u1").Return(nil, domainerrors.ErrUserNotFound)
				txUserRepo.EXPECT().FindByEmail(ctx, "u1@x.com").Return(tt.byEmail, nil)
			}

			user, err := srv.CreateAccount(ctx, &usecase.CreateAccountInput{Username: "u1", Email: "u1@x.com", Password: "p1"})

			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		})
	}
}

func TestAccountService_GetUserByIdentifier(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		UserRepo:  userRepo,
		Hasher:    mockService.NewMockPasswordHasher(t),
		Logger:    newTestLogger(),
	})
	ctx := context.Background()
	byEmail := &entity.User{Username: "by-email"}
	byName := &entity.User{Username: "by-name"}

	userRepo.EXPECT().FindByEmail(ctx, "u1@x.com").Return(byEmail, nil)
	userRepo.EXPECT().FindByUsername(ctx, "u1").Return(byName, nil)

	got, err := srv.GetUserByIdentifier(ctx, "u1@x.com")
	require.NoError(t, err)
	assert.Same(t, byEmail, got)

	got, err = srv.GetUserByIdentifier(ctx, "u1")
	require.NoError(t, err)
	assert.Same(t, byName, got)
}

func TestAccountService_UpdatePassword_StoresHash(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newTestLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	userRepo.EXPECT().UpdatePassword(ctx, id, "new-hash").Return(nil)

	require.NoError(t, srv.UpdatePassword(ctx, id, "new-secret"))
}

func TestAccountService_UpdateEmail_UnknownUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		UserRepo:  userRepo,
		Hasher:    mockService.NewMockPasswordHasher(t),
		Logger:    newTestLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	userRepo.EXPECT().UpdateEmail(ctx, id, "new@x.com").Return(domainerrors.ErrUserNotFound)

	err := srv.UpdateEmail(ctx, id, "new@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_DeleteAccount_RemovesTokensFirst(t *testing.T) {
	tx := newTxMocks(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	srv := NewAccountService(AccountServiceParams{
		TxManager: tx.txManager,
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Hasher:    mockService.NewMockPasswordHasher(t),
		Logger:    newTestLogger(),
	})
	ctx := context.Background()
	id := uuid.New()

	tx.factory.EXPECT().NewRefreshTokenRepository().Return(txTokenRepo)
	tx.factory.EXPECT().NewUserRepository().Return(txUserRepo)
	deleteTokens := txTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, id).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, id).Return(nil).NotBefore(deleteTokens.Call)

	require.NoError(t, srv.DeleteAccount(ctx, id))
}

func TestCheckPassword(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Check("right", "hash").Return(true)
	hasher.EXPECT().Check("wrong", "hash").Return(false)
	user := &entity.User{PasswordHash: "hash"}

	assert.True(t, CheckPassword(hasher, user, "right"))
	assert.False(t, CheckPassword(hasher, user, "wrong"))
	assert.False(t, CheckPassword(hasher, nil, "right"))
	assert.False(t, CheckPassword(hasher, &entity.User{}, "right"))
}
