// Package payment provides the payment gateway adapters.
package payment

import (
	"log/slog"

	"paygate/config"
	"paygate/internal/domain/constants"
	"paygate/internal/domain/service"
	"paygate/internal/errors"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the gateway provider.
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway picks the adapter named by gateway.provider, defaulting
// to the live gateway in production and the stub elsewhere.
func NewPaymentGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Gateway
	if cfg == nil {
		cfg = &config.GatewayConfig{}
	}

	provider := cfg.Provider
	if provider == "" {
		provider = constants.GatewayProviderStub
		if params.Config.Env.Env == constants.EnvProduction {
			provider = constants.GatewayProviderFlutterwave
		}
	}

	switch provider {
	case constants.GatewayProviderFlutterwave:
		if cfg.SecretKey == "" {
			return nil, errors.New("gateway.secretKey is required for the flutterwave provider")
		}
		params.Logger.Info("Payment gateway: flutterwave", slog.String("base_url", cfg.BaseURL))

		return NewFlutterwaveGateway(cfg, params.Logger), nil
	case constants.GatewayProviderStub:
		params.Logger.Warn("Payment gateway: stub, charges are not sent to a provider")

		return NewStubGateway(), nil
	default:
		return nil, errors.Errorf("unsupported gateway provider: %s", provider)
	}
}
