package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"shopmart/internal/service"
)

// CatalogHandler handles product endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// AddProductRequest represents an add-product request.
type AddProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Image    string          `json:"image" validate:"required"`
	Category string          `json:"category" validate:"required"`
	NewPrice decimal.Decimal `json:"new_price" validate:"required"`
	OldPrice decimal.Decimal `json:"old_price" validate:"required"`
}

// RemoveProductRequest represents a remove-product request. The name is
// echoed back untouched.
type RemoveProductRequest struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductNameResponse acknowledges a catalog mutation.
type ProductNameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// AddProduct godoc
// @Summary Add a product to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body AddProductRequest true "Product fields"
// @Success 200 {object} ProductNameResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /addproduct [post]
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalogService.AddProduct(c.Request().Context(), service.NewProduct{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add product")
	}

	return c.JSON(http.StatusOK, ProductNameResponse{Success: true, Name: product.Name})
}

// RemoveProduct godoc
// @Summary Remove a product by id
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body RemoveProductRequest true "Product id"
// @Success 200 {object} ProductNameResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /removeproduct [post]
func (h *CatalogHandler) RemoveProduct(c echo.Context) error {
	var req RemoveProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Success is reported whether or not the id matched anything.
	if err := h.catalogService.RemoveProduct(c.Request().Context(), req.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to remove product")
	}

	return c.JSON(http.StatusOK, ProductNameResponse{Success: true, Name: req.Name})
}

// AllProducts godoc
// @Summary List the full catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} map[string]string
// @Router /allproducts [get]
func (h *CatalogHandler) AllProducts(c echo.Context) error {
	products, err := h.catalogService.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// NewCollection godoc
// @Summary List the most recently added products
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} map[string]string
// @Router /newcollection [get]
func (h *CatalogHandler) NewCollection(c echo.Context) error {
	products, err := h.catalogService.NewCollection(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// PopularInWomen godoc
// @Summary List featured products in the women category
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} map[string]string
// @Router /popularinwomen [get]
func (h *CatalogHandler) PopularInWomen(c echo.Context) error {
	products, err := h.catalogService.PopularInWomen(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}
