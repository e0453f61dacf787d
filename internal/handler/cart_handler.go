package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/auth"
	"shopmart/internal/errors"
	"shopmart/internal/service"
)

// CartHandler handles the token-guarded cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CartItemRequest names a cart slot.
type CartItemRequest struct {
	ItemID int `json:"itemId"`
}

// AddToCart godoc
// @Summary Increment a cart slot
// @Tags cart
// @Accept json
// @Produce plain
// @Param auth-token header string true "User token"
// @Param request body CartItemRequest true "Item slot"
// @Success 200 {string} string "Added to Cart"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.AuthRequired
// @Failure 500 {object} map[string]string
// @Router /addtocart [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.cartService.AddItem(c.Request().Context(), userID, req.ItemID); err != nil {
		return mapCartError(err)
	}
	return c.String(http.StatusOK, "Added to Cart")
}

// RemoveFromCart godoc
// @Summary Decrement a cart slot, flooring at zero
// @Tags cart
// @Accept json
// @Produce plain
// @Param auth-token header string true "User token"
// @Param request body CartItemRequest true "Item slot"
// @Success 200 {string} string "Removed from Cart"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.AuthRequired
// @Failure 500 {object} map[string]string
// @Router /removefromcart [post]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), userID, req.ItemID); err != nil {
		return mapCartError(err)
	}
	return c.String(http.StatusOK, "Removed from Cart")
}

// GetCart godoc
// @Summary Fetch the stored cart mapping
// @Tags cart
// @Produce json
// @Param auth-token header string true "User token"
// @Success 200 {object} model.CartData
// @Failure 401 {object} errors.AuthRequired
// @Failure 500 {object} map[string]string
// @Router /getcart [post]
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	cart, err := h.cartService.GetCart(c.Request().Context(), userID)
	if err != nil {
		return mapCartError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

func mapCartError(err error) *echo.HTTPError {
	switch err {
	case errors.ErrInvalidSlot:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.ErrUserNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "cart operation failed")
	}
}
