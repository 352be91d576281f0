package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"paygate/config"
	"paygate/internal/delivery/api/response"
	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderVerifHash carries the gateway's shared webhook secret.
const HeaderVerifHash = "verif-hash"

// chargePayload is the subset of the gateway's webhook body that settlement reads.
type chargePayload struct {
	Event string `json:"event"`
	Data  *struct {
		ID     int64  `json:"id"`
		TxRef  string `json:"tx_ref"`
		Status string `json:"status"`
	} `json:"data"`
}

// WebhookHandler receives charge notifications from the payment gateway.
type WebhookHandler struct {
	uc     usecase.WebhookUsecase
	secret []byte
	now    func() time.Time
	logger *slog.Logger
}

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Uc     usecase.WebhookUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	var secret []byte
	if params.Config.Gateway != nil {
		secret = []byte(params.Config.Gateway.WebhookHash)
	}

	return &WebhookHandler{
		uc:     params.Uc,
		secret: secret,
		now:    time.Now,
		logger: params.Logger,
	}
}

// Verify handles POST /transfers/verify. The hash is checked before the body
// is read, and the gateway is acknowledged before settlement runs.
func (h *WebhookHandler) Verify(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if !h.validHash(c.Request().Header.Get(HeaderVerifHash)) {
		logger.Warn("Webhook rejected: verification hash mismatch")

		return c.JSON(http.StatusBadRequest, response.Ack{
			Status:  response.AckError,
			Message: domainerrors.ErrWebhookHashInvalid.Message(),
		})
	}

	var payload chargePayload
	if err := c.Bind(&payload); err != nil || (payload.Event == "" && payload.Data == nil) {
		logger.Warn("Webhook rejected: unreadable payload")

		return c.JSON(http.StatusBadRequest, response.Ack{
			Status:  response.AckError,
			Message: domainerrors.ErrWebhookPayloadInvalid.Message(),
		})
	}

	event := &service.ChargeEvent{
		RequestID:  deliverycontext.GetRequestID(c),
		Event:      payload.Event,
		ReceivedAt: h.now().UTC(),
	}
	if payload.Data != nil {
		event.Reference = payload.Data.TxRef
		event.Status = payload.Data.Status
		event.GatewayID = payload.Data.ID
	}

	logger.Info("Webhook accepted",
		slog.String("event", event.Event),
		slog.String("tx_ref", event.Reference),
	)
	h.uc.Dispatch(c.Request().Context(), event)

	return c.JSON(http.StatusOK, response.Ack{
		Status:  response.AckSuccess,
		Message: "Notification received",
	})
}

// validHash compares in constant time. An unconfigured secret rejects everything.
func (h *WebhookHandler) validHash(got string) bool {
	if len(h.secret) == 0 || got == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(got), h.secret) == 1
}
