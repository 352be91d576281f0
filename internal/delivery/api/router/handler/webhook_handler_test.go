package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paygate/config"
	"paygate/internal/domain/service"
	mockUsecase "paygate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const successWebhookBody = `{"event":"charge.completed","data":{"id":4242,"tx_ref":"ref-1","status":"successful","amount":100}}`

func newWebhookHandler(t *testing.T, secret string) (*WebhookHandler, *mockUsecase.MockWebhookUsecase) {
	uc := mockUsecase.NewMockWebhookUsecase(t)
	h := NewWebhookHandler(WebhookHandlerParams{
		Uc:     uc,
		Config: &config.Config{Gateway: &config.GatewayConfig{WebhookHash: secret}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	h.now = func() time.Time { return time.Unix(1700000000, 0) }

	return h, uc
}

func postWebhook(t *testing.T, h *WebhookHandler, hash, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transfers/verify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if hash != "" {
		req.Header.Set(HeaderVerifHash, hash)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.Verify(e.NewContext(req, rec)))

	return rec
}

func TestWebhookHandler_RejectsBadHashWithoutDispatch(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		hash   string
	}{
		{name: "mismatch", secret: "s3cret", hash: "guess"},
		{name: "missing header", secret: "s3cret", hash: ""},
		{name: "no secret configured", secret: "", hash: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newWebhookHandler(t, tt.secret)

			rec := postWebhook(t, h, tt.hash, successWebhookBody)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"status":"error","message":"Invalid verification hash"}`, rec.Body.String())
		})
	}
}

func TestWebhookHandler_RejectsEmptyPayload(t *testing.T) {
	for _, body := range []string{`{}`, `not json`} {
		h, _ := newWebhookHandler(t, "s3cret")

		rec := postWebhook(t, h, "s3cret", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestWebhookHandler_AcknowledgesAndDispatches(t *testing.T) {
	h, uc := newWebhookHandler(t, "s3cret")

	uc.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(e *service.ChargeEvent) bool {
			return e.Reference == "ref-1" &&
				e.IsSuccessfulCharge() &&
				e.GatewayID == 4242 &&
				e.ReceivedAt.Equal(time.Unix(1700000000, 0))
		})).
		Return()

	rec := postWebhook(t, h, "s3cret", successWebhookBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Notification received"}`, rec.Body.String())
}
