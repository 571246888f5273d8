package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roynafshi-stack/asus-model-api/internal/config"
	"github.com/roynafshi-stack/asus-model-api/internal/domain"
	"github.com/roynafshi-stack/asus-model-api/internal/fetch"
	handlerhttp "github.com/roynafshi-stack/asus-model-api/internal/handler/http"
	"github.com/roynafshi-stack/asus-model-api/internal/service"
	"github.com/roynafshi-stack/asus-model-api/pkg/health"
	"github.com/roynafshi-stack/asus-model-api/pkg/tracing"
)

// App wires together all dependencies and runs the model info service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	httpServer     *http.Server
	redisClient    *redis.Client
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance. The only hard dependencies are
// the static model registry and the vendor page fetcher; Redis is optional
// and serves only as a page cache.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "asus-model-api",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	healthHandler := health.NewHandler()

	// Optional Redis page cache. A cache miss or a down Redis only means
	// every request hits the vendor pages, so readiness reports it but the
	// app still starts without it.
	var pageCache fetch.PageCache = fetch.NopCache{}
	var redisClient *redis.Client
	if cfg.CacheEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		pageCache = fetch.NewRedisPageCache(redisClient, cfg.CacheTTL, logger)
		healthHandler.Register("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	fetchCfg := fetch.DefaultConfig()
	fetchCfg.Timeout = cfg.FetchTimeout
	fetcher := fetch.New(fetchCfg, pageCache, logger)

	productService := service.NewProductService(domain.DefaultRegistry(), fetcher, logger)
	productHandler := handlerhttp.NewProductHandler(productService, logger)

	router := handlerhttp.NewRouter(productHandler, healthHandler, logger, cfg.RateLimitRPM, cfg.RateLimitBurst)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		httpServer:     httpServer,
		redisClient:    redisClient,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application:
// 1. HTTP server (drain in-flight requests)
// 2. Redis client (after the drain so in-flight cache lookups finish)
// 3. Tracer (flush pending spans from drained requests)
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
