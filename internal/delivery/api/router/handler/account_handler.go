package handler

import (
	"net/http"

	"paygate/internal/delivery/api/response"
	"paygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// AccountHandler serves maintenance of the authenticated user's account.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// UpdateEmail handles PATCH /account/email.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdateEmail(c.Request().Context(), userID, req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Email updated successfully"})
}

// UpdatePassword handles PATCH /account/password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), userID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Password updated successfully"})
}

// Delete handles DELETE /account.
func (h *AccountHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Account deleted successfully"})
}
