// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"parkpass/docs"
	"parkpass/internal/sessions"
	"parkpass/internal/shared/config"
	"parkpass/internal/shared/database"
	"parkpass/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "parkpass-booking"

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	sessions sessions.Service
	logger   *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, sessionService sessions.Service, log *logger.Logger) *Router {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Router{
		config:   cfg,
		db:       db,
		sessions: sessionService,
		logger:   log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)
	r.setupSwaggerRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupSessionRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Redis only backs rate limiting, so losing it degrades rather than fails the service
		redisStatus := "up"
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			redisStatus = err.Error()
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"redis":     redisStatus,
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"offer_service": r.config.Offer.BaseURL + r.config.Offer.Path,
			"timestamp":     time.Now(),
		})
	})
}

// setupSwaggerRoutes serves the API documentation
func (r *Router) setupSwaggerRoutes(engine *gin.Engine) {
	docs.SwaggerInfo.BasePath = r.config.GetAPIBasePath()
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupSessionRoutes configures the catalog and booking session routes
func (r *Router) setupSessionRoutes(rg *gin.RouterGroup) {
	sessionController := sessions.NewController(r.sessions, r.logger)
	sessions.SetupSessionRoutes(rg, sessionController)
}
