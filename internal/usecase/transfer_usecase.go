package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitializeTransferInput is a payer's request to start a bank transfer.
type InitializeTransferInput struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Narration *string
}

// InitializeTransferResult carries the payment instructions and the ledger correlation.
type InitializeTransferResult struct {
	TransactionID uuid.UUID
	Reference     string
	PaymentInfo   map[string]any
}

// TransferUsecase orchestrates the gateway call and the ledger write.
type TransferUsecase interface {
	Initialize(ctx context.Context, input *InitializeTransferInput) (*InitializeTransferResult, error)
}
