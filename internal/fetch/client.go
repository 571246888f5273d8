package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"

	apperrors "github.com/roynafshi-stack/asus-model-api/pkg/errors"
)

var breakerState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "vendor_fetch_breaker_state",
		Help: "Current state of the vendor fetch circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

// stateToFloat maps gobreaker states to prometheus gauge values.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Config holds vendor page fetcher configuration.
type Config struct {
	// Timeout bounds a single page GET. No retries are attempted.
	Timeout time.Duration

	// UserAgent and AcceptLanguage are sent on every request so the vendor
	// serves the same markup a browser would get.
	UserAgent      string
	AcceptLanguage string
}

// DefaultConfig returns the fetcher defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        15 * time.Second,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
		AcceptLanguage: "he-IL,he;q=0.9,en-US;q=0.8,en;q=0.7",
	}
}

// Client fetches vendor pages. A circuit breaker guards the vendor: once it
// trips, fetches fail fast and callers degrade to fallback data until the
// vendor recovers. Fetched markup is optionally cached by URL.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker[string]
	cache   PageCache
	logger  *slog.Logger
}

// New creates a vendor page fetch client. Pass NopCache{} to disable caching.
func New(cfg Config, cache PageCache, logger *slog.Logger) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(cfg.Timeout)
	httpClient.SetHeader("User-Agent", cfg.UserAgent)
	httpClient.SetHeader("Accept-Language", cfg.AcceptLanguage)

	settings := gobreaker.Settings{
		Name:     "vendor-pages",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}
	breakerState.WithLabelValues(settings.Name).Set(0)

	return &Client{
		http:    httpClient,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		cache:   cache,
		logger:  logger,
	}
}

// Page performs a single bounded GET of the given URL and returns the raw
// markup. It fails on timeout, non-2xx status, network error, or an open
// breaker; there is no retry, and every failure wraps errors.ErrUpstream.
// Callers treat any error as "no parsed data available" and fall back to
// static data.
func (c *Client) Page(ctx context.Context, url string) (string, error) {
	if body, ok := c.cache.Get(ctx, url); ok {
		c.logger.DebugContext(ctx, "page cache hit", slog.String("url", url))
		return body, nil
	}

	body, err := c.breaker.Execute(func() (string, error) {
		res, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			return "", fmt.Errorf("get %s: %w", url, err)
		}
		if res.IsError() {
			return "", fmt.Errorf("get %s: unexpected status %d", url, res.StatusCode())
		}
		return res.String(), nil
	})
	if err != nil {
		// Tag every failure mode (network, status, timeout, open breaker)
		// with the sentinel so callers can classify without string checks.
		return "", fmt.Errorf("%w: %w", apperrors.ErrUpstream, err)
	}

	c.cache.Set(ctx, url, body)
	return body, nil
}
