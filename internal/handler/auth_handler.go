package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/errors"
	"shopmart/internal/service"
)

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the success body for signup and login.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.FailureResponse
// @Failure 500 {object} errors.FailureResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if err == errors.ErrDuplicateEmail {
			return c.JSON(http.StatusBadRequest, errors.NewFailure(err))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to sign up")
	}

	return c.JSON(http.StatusOK, TokenResponse{Success: true, Token: token})
}

// Login godoc
// @Summary Log a user in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.FailureResponse
// @Failure 500 {object} errors.FailureResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Login failures ride a 200 with success:false; clients of the
		// original API switch on the body, not the status.
		if err == errors.ErrInvalidEmail || err == errors.ErrWrongPassword {
			return c.JSON(http.StatusOK, errors.NewFailure(err))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to log in")
	}

	return c.JSON(http.StatusOK, TokenResponse{Success: true, Token: token})
}
