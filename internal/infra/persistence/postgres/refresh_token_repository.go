package postgres

import (
	"context"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	"paygate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("refresh token owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindLatestByUserID returns repository.ErrRefreshTokenNotFound when the user has no session.
func (repo *refreshTokenRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&tokenM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find refresh token")
	}

	return toRefreshTokenDomain(&tokenM), nil
}

func (repo *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh tokens")
	}

	return nil
}

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
	}
}
