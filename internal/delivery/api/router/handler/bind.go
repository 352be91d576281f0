package handler

import (
	deliverycontext "paygate/internal/delivery/context"
	domainerrors "paygate/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate reports malformed bodies and failed validation alike as 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// currentUser returns the id stored by the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
