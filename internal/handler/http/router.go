package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roynafshi-stack/asus-model-api/pkg/health"
	"github.com/roynafshi-stack/asus-model-api/pkg/middleware"
)

const serviceName = "asus-model-api"

// NewRouter creates a chi router with all model info routes registered.
func NewRouter(
	productHandler *ProductHandler,
	healthHandler *health.Handler,
	logger *slog.Logger,
	rateLimitRPM, rateLimitBurst int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))

	// Operational endpoints, outside the rate limit.
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// Model info API
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(rateLimitRPM, rateLimitBurst, logger))

		r.Get("/health", productHandler.Health)
		r.Get("/spec", productHandler.Spec)
		r.Get("/images", productHandler.Images)
		r.Get("/marketing", productHandler.Marketing)
	})

	return r
}
