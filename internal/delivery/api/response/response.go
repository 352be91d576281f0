// Package response holds the JSON bodies the API writes outside the
// endpoint-specific payloads.
package response

import (
	"net/http"

	deliverycontext "paygate/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Webhook acknowledgement statuses.
const (
	AckSuccess = "success"
	AckError   = "error"
)

// SuccessResponse wraps account maintenance results.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the body for every failed request.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "USER_ALREADY_EXISTS"
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Message is the body of endpoints that only confirm an action.
type Message struct {
	Message string `json:"message"`
}

// Ack is what the payment gateway receives from the webhook endpoint.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error writes the error envelope. Details never leave the server for
// server-side or authentication failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}
