package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/getmentor/formsdemo/config"
	"github.com/getmentor/formsdemo/internal/cache"
	"github.com/getmentor/formsdemo/internal/handlers"
	"github.com/getmentor/formsdemo/internal/middleware"
	"github.com/getmentor/formsdemo/internal/services"
	"github.com/getmentor/formsdemo/internal/store"
	"github.com/getmentor/formsdemo/internal/web"
	"github.com/getmentor/formsdemo/pkg/logger"
	"github.com/getmentor/formsdemo/pkg/metrics"
	"github.com/getmentor/formsdemo/pkg/profiling"
	"github.com/getmentor/formsdemo/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	formBodyLimit     = 64 * 1024
	multipartOverhead = 64 * 1024
	apiRequestsPerSec = 50
	apiBurst          = 100
	previewsPerSec    = 5
	previewBurst      = 10
	shutdownTimeout   = 5 * time.Second
)

// registerPageRoutes registers the landing page and both form routes
func registerPageRoutes(
	router *gin.Engine,
	submitRateLimiter *middleware.RateLimiter,
	pageHandler *handlers.PageHandler,
) {
	formLimit := middleware.BodySizeLimitMiddleware(formBodyLimit)

	router.GET("/", pageHandler.Landing)
	router.GET("/uncontrolled", pageHandler.UncontrolledForm)
	router.POST("/uncontrolled", submitRateLimiter.Middleware(), formLimit, pageHandler.SubmitUncontrolled)
	router.GET("/react-hook-form", pageHandler.HookForm)
	router.POST("/react-hook-form", submitRateLimiter.Middleware(), formLimit, pageHandler.SubmitHookForm)
}

// registerAPIRoutes registers the JSON endpoints used by the form pages
func registerAPIRoutes(
	group *gin.RouterGroup,
	cfg *config.Config,
	generalRateLimiter, previewRateLimiter *middleware.RateLimiter,
	formAPIHandler *handlers.FormAPIHandler,
	pictureHandler *handlers.PictureHandler,
	countriesHandler *handlers.CountriesHandler,
) {
	group.GET("/countries", generalRateLimiter.Middleware(), countriesHandler.Search)
	group.POST("/forms/react-hook-form/validate", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(formBodyLimit), formAPIHandler.ValidateHookForm)
	group.POST("/pictures/preview", previewRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(cfg.Pictures.MaxBytes+multipartOverhead), pictureHandler.Preview)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxBackups:  cfg.Logging.MaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting forms demo",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Options{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		Endpoint:          cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (off unless O11Y_PROFILING_ENABLED)
	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, profiling.Labels{
		ServiceName: cfg.Observability.ServiceName,
		Namespace:   cfg.Observability.ServiceNamespace,
		Version:     cfg.Observability.ServiceVersion,
		InstanceID:  cfg.Observability.ServiceInstanceID,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Start infrastructure metrics collection
	stopMetrics := make(chan struct{})
	defer close(stopMetrics)
	metrics.RecordInfrastructureMetrics(stopMetrics)

	// In-memory state: one slot per form and the picture previews of open drafts
	submissions := store.New()
	previews := cache.NewPreviewCache(cfg.Pictures.PreviewTTL())

	// Initialize services
	formService := services.NewFormService(submissions, previews)
	pictureService := services.NewPictureService(previews, cfg.Pictures.MaxBytes)

	// Initialize handlers
	var ready atomic.Bool
	pageHandler := handlers.NewPageHandler(formService)
	formAPIHandler := handlers.NewFormAPIHandler(formService)
	pictureHandler := handlers.NewPictureHandler(pictureService)
	countriesHandler := handlers.NewCountriesHandler()
	healthHandler := handlers.NewHealthHandler(ready.Load)

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("Failed to load page templates", zap.Error(err))
	}

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins(),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.StaticFS(web.AssetsPath, web.AssetsFS())

	// Rate limiters; each is stopped on shutdown
	generalRateLimiter := middleware.NewRateLimiter(apiRequestsPerSec, apiBurst)
	defer generalRateLimiter.Stop()
	submitRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.SubmitPerSecond), cfg.RateLimit.SubmitBurst)
	defer submitRateLimiter.Stop()
	previewRateLimiter := middleware.NewRateLimiter(previewsPerSec, previewBurst)
	defer previewRateLimiter.Stop()

	registerPageRoutes(router, submitRateLimiter, pageHandler)

	// API routes
	api := router.Group("/api")
	// Utility endpoints (not versioned - operational endpoints)
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := api.Group("/v1")
	registerAPIRoutes(v1, cfg, generalRateLimiter, previewRateLimiter, formAPIHandler, pictureHandler, countriesHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port), zap.String("base_url", cfg.Server.BaseURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	ready.Store(true)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ready.Store(false)
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited",
		zap.Int("previews_cached", previews.Count()),
		zap.Int("slots_filled", len(submissions.Snapshot())))
}
