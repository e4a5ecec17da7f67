package routes

import (
	"nexum-supply/internal/adapters/http/handlers"
	"nexum-supply/internal/adapters/http/middleware"
	"nexum-supply/internal/adapters/persistence/repositories"
	"nexum-supply/internal/config"
	"nexum-supply/internal/core/services"
	"nexum-supply/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers, and registers routes.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CronService {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)

	// Token issuer: signing key injected once, no ambient global
	tokens := jwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	reportService := services.NewReportService(productRepo)
	cronService := services.NewCronService(reportService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, userService)
	productHandler := handlers.NewProductHandler(productService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	authRequired := middleware.AuthRequired(tokens)

	// Auth
	auth := apiV1.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Users
	users := apiV1.Group("/users")
	users.Post("/", middleware.AuthRateLimiter(), userHandler.Create)
	users.Get("/", authRequired, userHandler.List)
	users.Get("/:id", authRequired, userHandler.Get)
	users.Put("/:id", authRequired, userHandler.Update)
	users.Delete("/:id", authRequired, middleware.AdminOnly(), userHandler.Delete)

	// Products: report routes must come before the :id routes
	products := apiV1.Group("/products", authRequired)
	products.Get("/critical", reportHandler.Critical)
	products.Get("/dashboard", middleware.ElevatedOnly(), reportHandler.Dashboard)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Post("/", middleware.ElevatedOnly(), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", middleware.ElevatedOnly(), productHandler.Update)
	products.Delete("/:id", middleware.AdminOnly(), productHandler.Delete)

	return cronService
}
