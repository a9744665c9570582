// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type demoUserService struct {
	backend adapter.Backend

	email    string
	password string

	logger *logger.Logger
}

func NewDemoUserService(backend adapter.Backend, cfg config.App, logger *logger.Logger) DemoUserService {
	return &demoUserService{
		backend:  backend,
		email:    cfg.DemoEmail,
		password: cfg.DemoPassword,
		logger:   logger,
	}
}

// EnsureDemoUser signs in with the demo credentials, signs up when that
// fails and finally signs the obtained session out. Calling it repeatedly
// is safe: an existing account is only signed in and out again.
func (d *demoUserService) EnsureDemoUser(ctx context.Context) models.DemoUserResult {
	log := logger.FromContext(ctx).With().Str("email", d.email).Logger()

	var created bool

	session, err := d.backend.SignIn(ctx, d.email, d.password)
	if err != nil {
		log.Debug().Err(err).Msg("demo sign in failed, signing up")

		session, err = d.backend.SignUp(ctx, d.email, d.password)
		if err != nil {
			log.Err(err).Msg("demo sign up failed")
			return models.DemoUserResult{Success: false, Error: err.Error()}
		}
		created = true
	}

	// sign-up may hold the session back until the email is confirmed
	if session.AccessToken != "" {
		if err = d.backend.SignOut(ctx, session.AccessToken); err != nil {
			log.Err(err).Msg("demo sign out failed")
			return models.DemoUserResult{Success: false, Error: err.Error(), Created: created}
		}
	}

	log.Info().Bool("created", created).Msg("demo user is ready")

	return models.DemoUserResult{Success: true, Created: created}
}
