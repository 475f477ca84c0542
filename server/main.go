package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkpass/api/routes"
	"parkpass/internal/booking"
	"parkpass/internal/offer"
	"parkpass/internal/sessions"
	"parkpass/internal/shared/config"
	"parkpass/internal/shared/database"
	"parkpass/internal/shared/middleware"
	"parkpass/pkg/logger"
	"parkpass/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title        ParkPass Booking API
// @version      1.0
// @description  Ticket booking sessions for the amusement park chain.
// @BasePath     /api/v1
func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Rebuild the logger now that mode and level are final
	appLogger = logger.New()
	logger.SetDefault(appLogger)
	appLogger.Info("Starting booking service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("commit", GitCommit),
	)

	// Redis is optional; without it requests are not rate limited
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Warn("Redis unavailable, continuing without rate limiting", slog.Any("error", err))
	}
	defer db.Close()

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.GetRedis() != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
			Enabled:                 cfg.RateLimit.Enabled,
			WindowDuration:          cfg.RateLimit.WindowDuration,
			DefaultRequests:         cfg.RateLimit.DefaultRequests,
			BookingRequests:         cfg.RateLimit.BookingRequests,
			BookingCriticalRequests: cfg.RateLimit.BookingCriticalRequests,
			HealthRequests:          cfg.RateLimit.HealthRequests,
			WhitelistedIPs:          cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("booking_critical_requests", cfg.RateLimit.BookingCriticalRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	offerClient := offer.NewClient(offer.Config{
		BaseURL: cfg.Offer.BaseURL,
		Path:    cfg.Offer.Path,
		Timeout: cfg.Offer.Timeout,
	}, appLogger)

	sessionService := sessions.NewService(offerClient, sessions.Config{
		Workflow: booking.Options{
			Prices:     booking.DefaultPrices,
			Location:   cfg.Booking.Location(),
			CutoffHour: cfg.Booking.CutoffHour,
		},
		SessionTTL: cfg.Booking.SessionTTL,
		Promotion: sessions.Promotion{
			Title:      cfg.Booking.Promotion.Title,
			ValidFrom:  cfg.Booking.Promotion.ValidFrom,
			ValidUntil: cfg.Booking.Promotion.ValidUntil,
		},
	}, appLogger)

	jobCtx, jobCancel := context.WithCancel(context.Background())
	defer jobCancel()
	jobs := sessions.NewJobProcessor(sessionService, &sessions.JobConfig{
		SweepInterval: cfg.Booking.SweepInterval,
	}, appLogger)
	jobs.Start(jobCtx)
	defer jobs.Stop()

	router := setupRouter(cfg, db, sessionService, rateLimiter, appLogger)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.String("offer_service", offerClient.Endpoint()),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, sessionService sessions.Service, rateLimiter *ratelimit.RateLimiter, appLogger *logger.Logger) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())
	engine.Use(cors.New(corsConfig(cfg)))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter, appLogger))
	}

	routes.NewRouter(cfg, db, sessionService, appLogger).SetupRoutes(engine)

	return engine
}

// corsConfig allows the configured origins, or any origin when none are set
func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		cc.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		cc.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return cc
}
