// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/store"
)

// maxProbeTimeout bounds a single database ping.
const maxProbeTimeout = 5 * time.Second

// HealthProbe pings the database on a fixed interval and reports the result.
// Only status changes are logged.
type HealthProbe struct {
	checker  store.HealthChecker
	reporter StatusReporter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthProbe(checker store.HealthChecker, reporter StatusReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	serving := p.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("health probe stopped")
			return
		case <-ticker.C:
			serving = p.probe(ctx, &serving)
		}
	}
}

// probe pings the database and reports the outcome. previous is nil before
// the first probe.
func (p *HealthProbe) probe(ctx context.Context, previous *bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, min(p.interval, maxProbeTimeout))
	defer cancel()

	err := p.checker.PingContext(pingCtx)
	serving := err == nil

	if ctx.Err() != nil {
		return serving
	}

	p.reporter.SetServing(serving)

	if previous == nil || *previous != serving {
		if serving {
			p.logger.Info().Msg("database is reachable")
		} else {
			p.logger.Error().Err(err).Msg("database is unreachable")
		}
	}

	return serving
}
