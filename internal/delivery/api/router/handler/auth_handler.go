// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"

	"paygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginRequest accepts a username or an email in the username field.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.CreateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{
		Message: "User registered successfully",
		Token:   result.AccessToken,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Message: "Login successful",
		Token:   result.AccessToken,
	})
}
