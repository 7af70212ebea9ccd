package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/metrics"
	"github.com/MKhiriev/invest-portal/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	metrics        metrics.Recorder
	metricsHandler http.Handler

	limiter *RateLimiter

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMetrics records request metrics with recorder and serves scrapeHandler
// on /metrics.
func WithMetrics(recorder metrics.Recorder, scrapeHandler http.Handler) Option {
	return func(h *Handler) {
		h.metrics = recorder
		h.metricsHandler = scrapeHandler
	}
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		cfg:      cfg,
		metrics:  metrics.Nop(),
		logger:   logger,
	}

	for _, opt := range opts {
		opt(h)
	}

	if cfg.AuthRateLimit > 0 {
		h.limiter = NewRateLimiter(PerMinute(cfg.AuthRateLimit))
	}

	logger.Info().Msg("http handler created")
	return h
}

// Close stops the background work of the handler.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}
