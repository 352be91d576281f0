package postgres

import (
	"context"
	"testing"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Username: "kept", Email: "kept@x.com", PasswordHash: "h"})
	})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Username: "dropped", Email: "dropped@x.com", PasswordHash: "h"}); err != nil {
			return err
		}

		return domainerrors.ErrValidationFailed
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = users.FindByUsername(ctx, "kept")
	require.NoError(t, err)

	_, err = users.FindByUsername(ctx, "dropped")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
