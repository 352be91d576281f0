// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount checks both unique fields inside one transaction so either
// collision is reported as ErrUserAlreadyExists.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.User, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureAbsent(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			return err
		}
		if err := ensureAbsent(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			return err
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Account already exists", slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Account created", slog.Any("user_id", user.ID))

	return user, nil
}

// ensureAbsent turns a successful lookup into a conflict.
func ensureAbsent(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (srv *accountService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *accountService) GetUserByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		return srv.userRepo.FindByEmail(ctx, identifier)
	}

	return srv.userRepo.FindByUsername(ctx, identifier)
}

func (srv *accountService) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	if err := srv.userRepo.UpdateEmail(ctx, id, email); err != nil {
		srv.log(ctx).Warn("Failed to update email", slog.Any("user_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Email updated", slog.Any("user_id", id))

	return nil
}

func (srv *accountService) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("user_id", id), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
		srv.log(ctx).Warn("Failed to update password", slog.Any("user_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password updated", slog.Any("user_id", id))

	return nil
}

func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, id); err != nil {
			return err
		}

		return repoFactory.NewUserRepository().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete account", slog.Any("user_id", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("user_id", id))

	return nil
}

// CheckPassword verifies plaintext against the user's stored hash.
func CheckPassword(hasher service.PasswordHasher, user *entity.User, plaintext string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}

	return hasher.Check(plaintext, user.PasswordHash)
}
