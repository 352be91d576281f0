package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is pending until the gateway reports an outcome; after that
// it holds whatever status string the gateway sent.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSuccessful TransactionStatus = "successful"
)

// Transaction is a ledger row for one bank-transfer payment.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Currency  string
	Status    TransactionStatus
	Reference string // Correlates the initiating request with the gateway webhook.
	Narration *string

	InitiatedAt time.Time
	CompletedAt *time.Time // nil until the webhook settles the transaction.
}

// IsCompleted reports whether a completion has been recorded.
func (t *Transaction) IsCompleted() bool {
	return t.CompletedAt != nil
}
