package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client services and ui are required")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. The session token is dropped on the way
// out.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer a.services.AuthService.Logout()

	a.logger.Info().Msg("admin client started")

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("admin client stopped")
	return nil
}
