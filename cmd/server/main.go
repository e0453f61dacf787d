package main

import (
	"log"
	"net/http"
	"os"

	_ "shopmart/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"shopmart/internal/auth"
	"shopmart/internal/cache"
	"shopmart/internal/config"
	"shopmart/internal/db"
	"shopmart/internal/handler"
	"shopmart/internal/model"
	"shopmart/internal/repository"
	"shopmart/internal/router"
	"shopmart/internal/service"
)

// @title Shopmart API
// @version 1.0
// @description E-commerce backend with catalog, signup/login, and per-user carts.
// @host localhost:4000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name auth-token
func main() {
	cfg := config.Load()

	// Prices serialize as JSON numbers, matching the storefront contract.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewBcryptHasher()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, hasher)
	cartService := service.NewCartService(userRepo)
	catalogService := service.NewCatalogService(productRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, cfg.PublicBaseURL)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		catalogHandler,
		cartHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
