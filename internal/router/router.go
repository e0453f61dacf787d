package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopmart/internal/auth"
	"shopmart/internal/config"
	"shopmart/internal/handler"
)

// Register wires routes and middleware. The route paths are flat and
// unversioned; the storefront consuming them predates this service.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Shop backend is running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Images are served straight from the upload directory.
	e.Static("/images", cfg.UploadDir)
	e.POST("/upload", uploadHandler.Upload)

	// Catalog routes
	e.POST("/addproduct", catalogHandler.AddProduct)
	e.POST("/removeproduct", catalogHandler.RemoveProduct)
	e.GET("/allproducts", catalogHandler.AllProducts)
	e.GET("/newcollection", catalogHandler.NewCollection)
	e.GET("/popularinwomen", catalogHandler.PopularInWomen)

	// Auth routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Cart routes (require the auth-token header)
	cart := e.Group("", auth.Middleware(cfg.JWTSecret))
	cart.POST("/addtocart", cartHandler.AddToCart)
	cart.POST("/removefromcart", cartHandler.RemoveFromCart)
	cart.POST("/getcart", cartHandler.GetCart)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
