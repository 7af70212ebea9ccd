package main

import (
	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/client"
	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/internal/tui"
	"github.com/MKhiriev/invest-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("invest-portal-client", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("invest-portal-client", cfg.LogLevel)
	log.Info().Str("build", buildInfo.String()).Msg("starting admin client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var app client.Client
	app, err = client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
