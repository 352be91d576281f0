package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"paygate/config"
	"paygate/internal/domain/service"
	"paygate/internal/errors"
)

const bankTransferChargePath = "/v3/charges?type=bank_transfer"

// maxResponseBytes caps how much of a gateway reply is read.
const maxResponseBytes = 1 << 20

type bankTransferCharge struct {
	TxRef    string `json:"tx_ref"`
	Amount   string `json:"amount"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
}

type chargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Meta    struct {
		Authorization map[string]any `json:"authorization"`
	} `json:"meta"`
}

// FlutterwaveGateway calls the Flutterwave charges API.
type FlutterwaveGateway struct {
	client    *http.Client
	baseURL   string
	secretKey string
	logger    *slog.Logger
}

// NewFlutterwaveGateway creates a live gateway client.
func NewFlutterwaveGateway(cfg *config.GatewayConfig, logger *slog.Logger) *FlutterwaveGateway {
	return &FlutterwaveGateway{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

// InitiateBankTransfer creates a bank-transfer charge. Non-2xx replies that
// still carry a JSON body are returned as a result with the gateway's status,
// so callers see one failure path.
func (g *FlutterwaveGateway) InitiateBankTransfer(ctx context.Context, req *service.BankTransferRequest) (*service.BankTransferResult, error) {
	body, err := json.Marshal(bankTransferCharge{
		TxRef:    req.Reference,
		Amount:   req.Amount.String(),
		Email:    req.PayerEmail,
		Currency: req.Currency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal charge request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+bankTransferChargePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create charge request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call payment gateway")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gateway response")
	}

	var decoded chargeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrapf(err, "unexpected gateway response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		g.logger.WarnContext(ctx, "Payment gateway rejected charge",
			slog.String("reference", req.Reference),
			slog.Int("http_status", resp.StatusCode),
			slog.String("gateway_status", decoded.Status),
			slog.String("gateway_message", decoded.Message),
		)
	}

	return &service.BankTransferResult{
		Status:        decoded.Status,
		Message:       decoded.Message,
		Authorization: decoded.Meta.Authorization,
	}, nil
}
