package repository

import (
	"context"
	"time"

	"paygate/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionFilter narrows ledger range queries.
type TransactionFilter struct {
	From   time.Time  // inclusive
	To     time.Time  // inclusive
	UserID *uuid.UUID // optional
}

// TransactionRepository persists ledger rows.
// Singular lookups return domainerrors.ErrTransactionNotFound when no row matches.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error

	FindByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// ListByUser returns the user's transactions, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// ListByInitiationRange returns transactions initiated inside the filter window.
	ListByInitiationRange(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// UpdateCompletion writes the terminal status and completion time for reference.
	UpdateCompletion(ctx context.Context, reference string, status entity.TransactionStatus, completedAt time.Time) error
}
