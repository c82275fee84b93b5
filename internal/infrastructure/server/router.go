package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/adapter/handler"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geoloc/internal/pkg/apperror"
	"github.com/marcos-nsantos/geoloc/internal/pkg/httputil"
)

type Router struct {
	engine      *gin.Engine
	geoHandler  *handler.GeoHandler
	rateLimiter *middleware.RateLimiter
	metrics     *observability.Metrics
	logger      *zap.Logger
}

type RouterConfig struct {
	GeoHandler *handler.GeoHandler
	// RateLimiter is optional; a nil limiter leaves the API unthrottled.
	RateLimiter *middleware.RateLimiter
	// Metrics is optional; when set, requests are counted and /metrics is served.
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:      engine,
		geoHandler:  cfg.GeoHandler,
		rateLimiter: cfg.RateLimiter,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": config.Version})
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		api.GET("/loc", r.geoHandler.Locate)
		api.GET("/rev", r.geoHandler.Reverse)
		api.GET("/dis", r.geoHandler.Distance)
		api.GET("/rnd", r.geoHandler.RandomPoint)
		api.GET("/bbox", r.geoHandler.BoundingBox)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.ErrorWithCode(c, http.StatusNotFound, apperror.CodeNotFound, "route not found")
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
