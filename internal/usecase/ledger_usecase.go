package usecase

import (
	"context"
	"time"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitiateTransactionInput describes a new pending ledger row.
type InitiateTransactionInput struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Reference string
	Narration *string
}

// PeriodQuery selects transactions by initiation time, both ends inclusive.
type PeriodQuery struct {
	Start  time.Time
	End    time.Time
	UserID *uuid.UUID
}

// LedgerUsecase records transactions and their completion.
// Singular operations report absence as ErrTransactionNotFound; plural reads
// never fail and return an empty slice instead.
type LedgerUsecase interface {
	InitiateTransaction(ctx context.Context, input *InitiateTransactionInput) (*entity.Transaction, error)
	// CompleteTransaction sets the terminal status and completion time. An
	// unknown reference performs no write.
	CompleteTransaction(ctx context.Context, reference string, status entity.TransactionStatus) (*entity.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID uuid.UUID) []*entity.Transaction
	GetTransactionsByTime(ctx context.Context, query *PeriodQuery) []*entity.Transaction
	FetchTransactionByReference(ctx context.Context, reference string) (*entity.Transaction, error)
}
