package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"paygate/internal/delivery/api/response"
	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "domain error keeps details",
			err:         errors.Wrap(domainerrors.ErrUserAlreadyExists.WithDetails("username taken"), "create account"),
			wantStatus:  http.StatusConflict,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "User already exists!",
			wantDetails: "username taken",
		},
		{
			name:        "unauthorized hides details",
			err:         domainerrors.ErrTokenInvalid.WithDetails("signature is invalid"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "TOKEN_INVALID",
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "store error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert transaction"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Internal server error",
		},
		{
			name:        "echo error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error",
		},
	}

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	mw.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
