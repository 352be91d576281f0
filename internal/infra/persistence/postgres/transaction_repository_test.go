package postgres

import (
	"context"
	"testing"
	"time"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransaction(userID uuid.UUID, reference string, initiatedAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		UserID:      userID,
		Amount:      decimal.NewFromInt(100),
		Currency:    "USD",
		Status:      entity.TransactionStatusPending,
		Reference:   reference,
		InitiatedAt: initiatedAt,
	}
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()
	narration := "rent"

	tx := newPendingTransaction(uuid.New(), "ref-1", time.UnixMilli(1_700_000_000_123))
	tx.Amount = decimal.RequireFromString("100.50")
	tx.Narration = &narration
	require.NoError(t, repo.Create(ctx, tx))
	assert.NotEqual(t, uuid.Nil, tx.ID)

	got, err := repo.FindByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)
	assert.True(t, decimal.RequireFromString("100.5").Equal(got.Amount))
	assert.Equal(t, entity.TransactionStatusPending, got.Status)
	assert.Equal(t, int64(1_700_000_000_123), got.InitiatedAt.UnixMilli())
	assert.Nil(t, got.CompletedAt)
	require.NotNil(t, got.Narration)
	assert.Equal(t, "rent", *got.Narration)

	_, err = repo.FindByReference(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestTransactionRepository_DuplicateReference(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingTransaction(uuid.New(), "ref-1", time.Now())))
	err := repo.Create(ctx, newPendingTransaction(uuid.New(), "ref-1", time.Now()))
	assert.True(t, errors.Is(err, domainerrors.ErrReferenceConflict))
}

func TestTransactionRepository_UpdateCompletion(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newPendingTransaction(uuid.New(), "ref-1", time.Now())))

	completedAt := time.UnixMilli(1_700_000_100_000)
	require.NoError(t, repo.UpdateCompletion(ctx, "ref-1", entity.TransactionStatusSuccessful, completedAt))
	// Same outcome again is accepted.
	require.NoError(t, repo.UpdateCompletion(ctx, "ref-1", entity.TransactionStatusSuccessful, completedAt))

	got, err := repo.FindByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusSuccessful, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, completedAt.UnixMilli(), got.CompletedAt.UnixMilli())

	err = repo.UpdateCompletion(ctx, "missing", entity.TransactionStatusSuccessful, completedAt)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestTransactionRepository_Lists(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	base := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, repo.Create(ctx, newPendingTransaction(alice, "a-1", base)))
	require.NoError(t, repo.Create(ctx, newPendingTransaction(alice, "a-2", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newPendingTransaction(bob, "b-1", base.Add(2*time.Hour))))

	aliceTxs, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceTxs, 2)
	assert.Equal(t, "a-2", aliceTxs[0].Reference)

	none, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	inclusive, err := repo.ListByInitiationRange(ctx, repository.TransactionFilter{From: base, To: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, inclusive, 3)

	narrow, err := repo.ListByInitiationRange(ctx, repository.TransactionFilter{From: base.Add(time.Minute), To: base.Add(time.Hour)})
	require.NoError(t, err)
	require.Len(t, narrow, 1)
	assert.Equal(t, "a-2", narrow[0].Reference)

	bobOnly, err := repo.ListByInitiationRange(ctx, repository.TransactionFilter{From: base, To: base.Add(3 * time.Hour), UserID: &bob})
	require.NoError(t, err)
	require.Len(t, bobOnly, 1)
	assert.Equal(t, "b-1", bobOnly[0].Reference)
}
