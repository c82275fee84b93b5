package app

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geoloc/internal/adapter/geocoding"
	"github.com/marcos-nsantos/geoloc/internal/adapter/handler"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/cache"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/server"
	"github.com/marcos-nsantos/geoloc/internal/usecase/geo"
)

// NewHandler builds the HTTP API around svc. limiter and metrics may be nil.
func NewHandler(cfg *config.Config, svc handler.GeoService, limiter *middleware.RateLimiter, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	router := server.NewRouter(server.RouterConfig{
		GeoHandler:  handler.NewGeoHandler(svc),
		RateLimiter: limiter,
		Metrics:     metrics,
		Logger:      logger,
		Environment: cfg.Server.Environment,
	})
	return router.Engine()
}

func (a *App) serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter *middleware.RateLimiter
	if a.cfg.RateLimit.Enabled {
		client, err := cache.NewRedisClient(ctx, a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("enabling rate limit: %w", err)
		}
		defer client.Close()

		limiter = middleware.NewRateLimiter(client, a.cfg.RateLimit, a.logger)
	}

	svc := a.service
	var metrics *observability.Metrics
	if a.cfg.Server.MetricsEnabled {
		metrics = observability.NewMetrics(config.Version)
		svc = geo.NewService(geocoding.Instrument(a.upstream, metrics, a.logger), a.rng)
	}

	srv := server.NewServer(server.ServerConfig{
		Port:            c.Int(flagPort),
		ReadTimeout:     a.cfg.Server.ReadTimeout,
		WriteTimeout:    a.cfg.Server.WriteTimeout,
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
		Handler:         NewHandler(a.cfg, svc, limiter, metrics, a.logger),
		Logger:          a.logger,
	})

	if err := srv.Run(ctx); err != nil {
		return err
	}

	a.logger.Info("server stopped")
	return nil
}
