// Package httptransport is the thin HTTP layer. Handlers delegate to
// domain services and never embed business logic.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attestry/internal/platform/health"
	adminmw "attestry/pkg/platform/middleware/admin"
	"attestry/pkg/platform/middleware/auth"
	"attestry/pkg/platform/middleware/device"
	"attestry/pkg/platform/middleware/metadata"
	"attestry/pkg/platform/middleware/ratelimit"
	request "attestry/pkg/platform/middleware/request"
)

// RouterConfig carries everything the router needs beyond the handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	AdminToken     string
	TokenValidator auth.TokenValidator
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	LatencyMetrics *request.Metrics
	Health         *health.Handler

	// RateLimit caps requests per client IP within RateLimitWindow.
	// Zero disables the limiter.
	RateLimit       int
	RateLimitWindow time.Duration
}

// NewRouter wires the public, attester, and admin surfaces with the full
// middleware chain.
func NewRouter(cfg RouterConfig, attest *AttestHandler, query *QueryHandler, admin *AdminHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(metadata.New(nil).Handler)
	r.Use(device.Annotate)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Timeout(cfg.RequestTimeout))
	r.Use(request.BodyLimit(cfg.MaxBodyBytes))
	r.Use(request.ContentTypeJSON)
	r.Use(request.LatencyMiddleware(cfg.LatencyMetrics))
	if cfg.RateLimit > 0 {
		r.Use(ratelimit.Limit(ratelimit.NewStore(), cfg.RateLimit, cfg.RateLimitWindow, cfg.Logger))
	}

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	query.Register(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireToken(cfg.TokenValidator, cfg.Logger))
		attest.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(cfg.AdminToken, cfg.Logger))
		admin.Register(r)
	})

	return r
}
