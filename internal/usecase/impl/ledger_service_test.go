package impl

import (
	"context"
	"testing"
	"time"

	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/repository"
	mockRepo "paygate/internal/mocks/repository"
	"paygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newLedger(t *testing.T, txManager repository.TransactionManager, txRepo repository.TransactionRepository) *ledgerService {
	srv := NewLedgerService(LedgerServiceParams{
		TxManager: txManager,
		TxRepo:    txRepo,
		Logger:    newTestLogger(),
	}).(*ledgerService)
	srv.now = func() time.Time { return fixedNow }

	return srv
}

func TestLedgerService_InitiateTransaction_Pending(t *testing.T) {
	txRepo := mockRepo.NewMockTransactionRepository(t)
	srv := newLedger(t, mockRepo.NewMockTransactionManager(t), txRepo)
	ctx := context.Background()
	narration := "rent"
	input := &usecase.InitiateTransactionInput{
		UserID:    uuid.New(),
		Amount:    decimal.NewFromInt(100),
		Currency:  "USD",
		Reference: "ref-1",
		Narration: &narration,
	}

	txRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Status == entity.TransactionStatusPending &&
				tx.CompletedAt == nil &&
				tx.InitiatedAt.Equal(fixedNow) &&
				tx.Reference == "ref-1"
		})).
		Return(nil)

	tx, err := srv.InitiateTransaction(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, tx.Status)
	assert.False(t, tx.IsCompleted())
	assert.True(t, decimal.NewFromInt(100).Equal(tx.Amount))
}

func TestLedgerService_CompleteTransaction(t *testing.T) {
	tx := newTxMocks(t)
	txRepo := mockRepo.NewMockTransactionRepository(t)
	srv := newLedger(t, tx.txManager, mockRepo.NewMockTransactionRepository(t))
	ctx := context.Background()
	current := &entity.Transaction{Reference: "ref-1", Status: entity.TransactionStatusPending}

	tx.factory.EXPECT().NewTransactionRepository().Return(txRepo)
	txRepo.EXPECT().FindByReference(ctx, "ref-1").Return(current, nil)
	txRepo.EXPECT().UpdateCompletion(ctx, "ref-1", entity.TransactionStatusSuccessful, fixedNow).Return(nil)

	completed, err := srv.CompleteTransaction(ctx, "ref-1", entity.TransactionStatusSuccessful)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusSuccessful, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, fixedNow, *completed.CompletedAt)
}

func TestLedgerService_CompleteTransaction_UnknownReferenceNoWrite(t *testing.T) {
	tx := newTxMocks(t)
	txRepo := mockRepo.NewMockTransactionRepository(t)
	srv := newLedger(t, tx.txManager, mockRepo.NewMockTransactionRepository(t))
	ctx := context.Background()

	tx.factory.EXPECT().NewTransactionRepository().Return(txRepo)
	txRepo.EXPECT().FindByReference(ctx, "missing").Return(nil, domainerrors.ErrTransactionNotFound)

	completed, err := srv.CompleteTransaction(ctx, "missing", entity.TransactionStatusSuccessful)

	assert.Nil(t, completed)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
	txRepo.AssertNotCalled(t, "UpdateCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_PluralReadsNeverFail(t *testing.T) {
	txRepo := mockRepo.NewMockTransactionRepository(t)
	srv := newLedger(t, mockRepo.NewMockTransactionManager(t), txRepo)
	ctx := context.Background()
	userID := uuid.New()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "list")

	txRepo.EXPECT().ListByUser(ctx, userID).Return(nil, storeErr)
	txRepo.EXPECT().ListByInitiationRange(ctx, mock.Anything).Return(nil, storeErr)

	byUser := srv.GetTransactionsByUser(ctx, userID)
	byTime := srv.GetTransactionsByTime(ctx, &usecase.PeriodQuery{Start: fixedNow.Add(-time.Hour), End: fixedNow})

	assert.NotNil(t, byUser)
	assert.Empty(t, byUser)
	assert.NotNil(t, byTime)
	assert.Empty(t, byTime)
}

func TestLedgerService_GetTransactionsByTime_PassesFilter(t *testing.T) {
	txRepo := mockRepo.NewMockTransactionRepository(t)
	srv := newLedger(t, mockRepo.NewMockTransactionManager(t), txRepo)
	ctx := context.Background()
	userID := uuid.New()
	start := fixedNow.Add(-24 * time.Hour)
	rows := []*entity.Transaction{{Reference: "ref-1"}}

	txRepo.EXPECT().
		ListByInitiationRange(ctx, repository.TransactionFilter{From: start, To: fixedNow, UserID: &userID}).
		Return(rows, nil)

	got := srv.GetTransactionsByTime(ctx, &usecase.PeriodQuery{Start: start, End: fixedNow, UserID: &userID})
	assert.Equal(t, rows, got)
}
