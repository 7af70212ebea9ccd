package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/handler"
	httphandler "github.com/MKhiriev/invest-portal/internal/handler/http"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/metrics"
	"github.com/MKhiriev/invest-portal/internal/server"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/workers"
)

const connectTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("invest-portal-server", "info")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("invest-portal-server", cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnection(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	handlers, err := handler.NewHandlers(services, cfg.Server, log,
		httphandler.WithMetrics(collector, metrics.Handler(reg)))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	defer handlers.Close()

	var background []workers.Worker
	if cfg.Workers.HealthCheckInterval > 0 {
		background = append(background,
			workers.NewHealthProbe(storages.Health(), handlers, cfg.Workers.HealthCheckInterval, log))
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(background...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
