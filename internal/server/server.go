package server

import (
	"context"
	"log/slog"
	"net/http"

	"mmex-search/internal/config"
	"mmex-search/internal/handlers"
	"mmex-search/internal/middleware"
	"mmex-search/internal/repositories"
	"mmex-search/internal/services"
	"mmex-search/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

// Dependencies are the collaborators the HTTP server is built from
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Health   handlers.HealthChecker
	Logger   *slog.Logger
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// Server is the configured echo instance plus the background work it owns
type Server struct {
	Echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
}

// New wires repositories, services and handlers into an echo instance
func New(deps Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	registerBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	transactionRepo := services.GuardTransactionRepository(
		repositories.NewTransactionRepository(deps.DB),
		registerBreaker,
	)
	savedSearchRepo := repositories.NewSavedSearchRepository(deps.DB)
	accountRepo := repositories.NewAccountRepository(deps.DB)

	searchLogger := services.NewSearchLogger(deps.Logger)
	metrics := services.NewPrometheusMetrics(deps.Registry)

	searchService := services.NewSearchService(transactionRepo, searchLogger, metrics, deps.Config.Search)
	savedSearchService := services.NewSavedSearchService(savedSearchRepo, searchService, searchLogger, metrics)
	accountService := services.NewAccountService(accountRepo)
	pickerService := services.NewPickerService(repositories.NewReferenceRepository(deps.DB))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.GetValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Logger)

	ipExtractor, err := middleware.NewIPExtractor(deps.Config.Server.TrustedProxies)
	if err != nil {
		deps.Logger.Warn("ignoring trusted proxies, using peer addresses", "error", err)
		ipExtractor = echo.ExtractIPDirect()
	}
	e.IPExtractor = ipExtractor

	rateLimiter := middleware.NewRateLimiter(deps.Config.RateLimit)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders("/api/"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.Config.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))

	e.GET("/health", handlers.NewHealthCheckHandler(deps.Health, registerBreaker).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group(apiPrefix, rateLimiter.Middleware())

	searchHandler := handlers.NewSearchHandler(searchService)
	api.POST("/transactions/search", searchHandler.Search)
	api.POST("/transactions/search/where", searchHandler.Where)

	savedHandler := handlers.NewSavedSearchHandler(savedSearchService)
	api.POST("/searches", savedHandler.Create)
	api.GET("/searches", savedHandler.List)
	api.GET("/searches/:id", savedHandler.Get)
	api.DELETE("/searches/:id", savedHandler.Delete)
	api.GET("/searches/:id/results", savedHandler.Results)

	accountHandler := handlers.NewAccountHandler(accountService)
	api.GET("/accounts", accountHandler.ListAccounts)

	pickerHandler := handlers.NewPickerHandler(pickerService)
	api.GET("/payees", pickerHandler.ListPayees)
	api.GET("/payees/:id", pickerHandler.GetPayee)
	api.GET("/categories", pickerHandler.ListCategories)
	api.GET("/categories/:id/selection", pickerHandler.SelectCategory)

	return &Server{Echo: e, rateLimiter: rateLimiter}
}

// RunBackground starts the rate limiter sweeper; it stops with ctx
func (s *Server) RunBackground(ctx context.Context) {
	go s.rateLimiter.Run(ctx)
}
