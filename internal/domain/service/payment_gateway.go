package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// GatewayStatusSuccess is the only charge status treated as an accepted charge.
const GatewayStatusSuccess = "success"

// BankTransferRequest asks the gateway for pay-in instructions for one transfer.
type BankTransferRequest struct {
	Reference  string
	Amount     decimal.Decimal
	Currency   string
	PayerEmail string
}

// BankTransferResult is the gateway's reply. Authorization holds the payment
// instructions (account, bank, amount) shown to the payer.
type BankTransferResult struct {
	Status        string
	Message       string
	Authorization map[string]any
}

// Succeeded reports whether the gateway accepted the charge.
func (r *BankTransferResult) Succeeded() bool {
	return r != nil && r.Status == GatewayStatusSuccess
}

// PaymentGateway initiates bank-transfer charges with the payment provider.
// A single call is made per initiation; there is no retry.
type PaymentGateway interface {
	InitiateBankTransfer(ctx context.Context, req *BankTransferRequest) (*BankTransferResult, error)
}
