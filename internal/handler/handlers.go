// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/handler/grpc"
	"github.com/MKhiriev/invest-portal/internal/handler/http"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, httpOpts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger, httpOpts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing forwards the database health to the gRPC health service, if one
// is enabled.
func (h *Handlers) SetServing(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(serving)
	}
}

// Close releases handler resources such as the HTTP rate limiter.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
	if h.GRPC != nil {
		h.GRPC.Shutdown()
	}
}
