package postgres

import (
	"context"
	"testing"
	"time"

	"paygate/internal/domain/entity"
	"paygate/internal/domain/repository"
	"paygate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRefreshTokens(t *testing.T, db *gorm.DB, userID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.RefreshTokenModel{}).Where("user_id = ?", userID).Count(&count).Error)

	return count
}

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	user := createTestUser(t, users, "u1", "u1@x.com")

	older := &entity.RefreshToken{UserID: user.ID, Token: "older", CreatedAt: time.Now().Add(-time.Minute)}
	newer := &entity.RefreshToken{UserID: user.ID, Token: "newer", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateRefreshToken(ctx, older))
	require.NoError(t, repo.CreateRefreshToken(ctx, newer))
	assert.NotEqual(t, uuid.Nil, newer.ID)

	latest, err := repo.FindLatestByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newer", latest.Token)

	require.NoError(t, repo.DeleteRefreshToken(ctx, latest.ID))
	assert.True(t, errors.Is(repo.DeleteRefreshToken(ctx, latest.ID), repository.ErrRefreshTokenNotFound))

	assert.Equal(t, int64(1), countRefreshTokens(t, db, user.ID))

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, user.ID))

	_, err = repo.FindLatestByUserID(ctx, user.ID)
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenNotFound))
}
