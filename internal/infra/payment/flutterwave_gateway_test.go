package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paygate/config"
	"paygate/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRequest() *service.BankTransferRequest {
	return &service.BankTransferRequest{
		Reference:  "ref-1",
		Amount:     decimal.NewFromInt(100),
		Currency:   "NGN",
		PayerEmail: "u1@x.com",
	}
}

func TestFlutterwaveGateway_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/charges", r.URL.Path)
		assert.Equal(t, "bank_transfer", r.URL.Query().Get("type"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"tx_ref":   "ref-1",
			"amount":   "100",
			"email":    "u1@x.com",
			"currency": "NGN",
		}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"Charge initiated","meta":{"authorization":{"transfer_reference":"MockFLWRef","transfer_account":"7825397990","transfer_bank":"WEMA BANK","transfer_amount":100,"mode":"banktransfer"}}}`))
	}))
	defer server.Close()

	gw := NewFlutterwaveGateway(&config.GatewayConfig{BaseURL: server.URL + "/", SecretKey: "sk_test", Timeout: time.Second}, newDiscardLogger())

	result, err := gw.InitiateBankTransfer(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "WEMA BANK", result.Authorization["transfer_bank"])
	assert.Equal(t, "banktransfer", result.Authorization["mode"])
}

func TestFlutterwaveGateway_ErrorStatusIsReturnedAsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Invalid currency"}`))
	}))
	defer server.Close()

	gw := NewFlutterwaveGateway(&config.GatewayConfig{BaseURL: server.URL, SecretKey: "sk", Timeout: time.Second}, newDiscardLogger())

	result, err := gw.InitiateBankTransfer(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.False(t, result.Succeeded())
	assert.Equal(t, "Invalid currency", result.Message)
}

func TestFlutterwaveGateway_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	gw := NewFlutterwaveGateway(&config.GatewayConfig{BaseURL: server.URL, SecretKey: "sk", Timeout: time.Second}, newDiscardLogger())

	result, err := gw.InitiateBankTransfer(context.Background(), newTestRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestStubGateway_AlwaysSucceeds(t *testing.T) {
	result, err := NewStubGateway().InitiateBankTransfer(context.Background(), newTestRequest())
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Equal(t, "ref-1", result.Authorization["transfer_reference"])
	assert.Equal(t, float64(100), result.Authorization["transfer_amount"])
}

func TestNewPaymentGateway_Selection(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		gateway  *config.GatewayConfig
		wantType any
		wantErr  bool
	}{
		{name: "default outside production", env: "develop", gateway: &config.GatewayConfig{}, wantType: &StubGateway{}},
		{name: "default in production", env: "production", gateway: &config.GatewayConfig{SecretKey: "sk"}, wantType: &FlutterwaveGateway{}},
		{name: "explicit stub in production", env: "production", gateway: &config.GatewayConfig{Provider: "stub"}, wantType: &StubGateway{}},
		{name: "live without secret", env: "develop", gateway: &config.GatewayConfig{Provider: "flutterwave"}, wantErr: true},
		{name: "unknown provider", env: "develop", gateway: &config.GatewayConfig{Provider: "paypal"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Gateway: tt.gateway}
			cfg.Env.Env = tt.env

			gw, err := NewPaymentGateway(GatewayParams{Config: cfg, Logger: newDiscardLogger()})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, gw)
		})
	}
}
