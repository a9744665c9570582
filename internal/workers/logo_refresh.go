// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
)

// LogoRefreshWorker periodically recomputes the processed logo so that a
// changed asset or a recovered background-removal utility is picked up
// without a restart.
type LogoRefreshWorker struct {
	logoService service.LogoService
	interval    time.Duration

	logger *logger.Logger
}

func NewLogoRefreshWorker(logoService service.LogoService, interval time.Duration, logger *logger.Logger) *LogoRefreshWorker {
	return &LogoRefreshWorker{
		logoService: logoService,
		interval:    interval,
		logger:      logger,
	}
}

// Run refreshes once right away and then on every tick until ctx is done.
// Refresh failures are logged and the previous rendition keeps being served.
func (w *LogoRefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log := w.logger.WithComponent("logo-refresh")
	ctx = log.WithContext(ctx)

	for {
		if err := w.logoService.Refresh(ctx); err != nil {
			if errors.Is(err, service.ErrLogoNotConfigured) {
				log.Info().Msg("logo is not configured, stopping logo refresh worker")
				return
			}
			log.Warn().Err(err).Msg("logo refresh failed")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("logo refresh worker stopped")
			return
		case <-ticker.C:
		}
	}
}
