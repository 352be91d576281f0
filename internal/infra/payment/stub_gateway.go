package payment

import (
	"context"

	"paygate/internal/domain/service"
)

// Bank details returned by the stub gateway.
const (
	StubTransferAccount = "0000000000"
	StubTransferBank    = "STUB BANK"
)

// StubGateway accepts every charge without calling out, returning
// instructions shaped like the live bank-transfer authorization.
type StubGateway struct{}

// NewStubGateway creates a stub gateway.
func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

func (g *StubGateway) InitiateBankTransfer(_ context.Context, req *service.BankTransferRequest) (*service.BankTransferResult, error) {
	return &service.BankTransferResult{
		Status:  service.GatewayStatusSuccess,
		Message: "Charge initiated",
		Authorization: map[string]any{
			"transfer_reference": req.Reference,
			"transfer_account":   StubTransferAccount,
			"transfer_bank":      StubTransferBank,
			"transfer_amount":    req.Amount.InexactFloat64(),
			"transfer_note":      "Stub transfer " + req.Reference,
			"mode":               "banktransfer",
		},
	}, nil
}
