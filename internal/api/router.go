package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minauth/auth-service/internal/api/handler"
	"github.com/minauth/auth-service/internal/api/middleware"
	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(auth ports.AuthService, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(auth)
	requireAuth := middleware.Auth(auth)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.POST("/logout", authHandler.Logout)
	g.GET("/verify", authHandler.Verify, requireAuth)
	g.GET("/users", authHandler.ListUsers, requireAuth, requireAdmin)
	g.POST("/users/update-role", authHandler.UpdateRole, requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
