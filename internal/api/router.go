package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/autovest/investment-system/internal/api/handler"
	"github.com/autovest/investment-system/internal/api/middleware"
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
	healthhandlers "github.com/autovest/investment-system/internal/infrastructure/http/handlers"
)

// Deps carries the constructed services the router wires into handlers.
// Redis is nil when the in-memory idempotency fallback is active.
type Deps struct {
	Auth       ports.AuthService
	Packages   ports.PackageService
	Accounting ports.AccountingService
	Payments   ports.PaymentService
	Redis      *redis.Client
	JWTSecret  string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	packageHandler := handler.NewPackageHandler(deps.Packages)
	investmentHandler := handler.NewInvestmentHandler(deps.Accounting)
	transactionHandler := handler.NewTransactionHandler(deps.Accounting)
	userHandler := handler.NewUserHandler(deps.Accounting)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/packages", packageHandler.List)
	e.GET("/v1/packages/:id", packageHandler.Get)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/me", userHandler.Me)
	v1.GET("/investments", investmentHandler.List)
	v1.POST("/investments", investmentHandler.Create)
	v1.GET("/transactions", transactionHandler.List)
	v1.POST("/transactions", transactionHandler.Create)
	v1.POST("/payments/intent", paymentHandler.CreateIntent)

	// --- Admin routes ---
	v1.POST("/packages", packageHandler.Create, adminOnly)
	v1.PUT("/packages/:id", packageHandler.Update, adminOnly)
	admin := v1.Group("/admin", adminOnly)
	admin.GET("/investments", investmentHandler.ListAll)
	admin.GET("/transactions", transactionHandler.ListAll)
	admin.GET("/users", userHandler.ListAll)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
