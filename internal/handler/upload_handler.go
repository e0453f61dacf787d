package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// UploadHandler stores product images on disk and hands back their public URL.
type UploadHandler struct {
	dir     string
	baseURL string
}

// NewUploadHandler creates an upload handler writing into dir.
func NewUploadHandler(dir, baseURL string) *UploadHandler {
	return &UploadHandler{dir: dir, baseURL: baseURL}
}

// UploadResponse reports a stored image. Success is the literal number 1,
// which is what the storefront checks for.
type UploadResponse struct {
	Success  int    `json:"success"`
	ImageURL string `json:"image_url"`
}

// Upload godoc
// @Summary Store a product image
// @Tags catalog
// @Accept mpfd
// @Produce json
// @Param product formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("product")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing product file")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	name := fmt.Sprintf("product_%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store image")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store image")
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Success:  1,
		ImageURL: h.baseURL + "/images/" + name,
	})
}
