// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer of the avatar dashboard.
//
// Services sit between the HTTP handlers and the outbound collaborators:
// the backend-as-a-service (authentication and records), the
// credential-management endpoint and the background-removal utility. Every
// collaborator is injected as an interface so the services can be tested
// with generated mocks.
package service

import (
	"context"

	"github.com/MKhiriev/avatar-dashboard/models"
)

// AuthService signs users in and out of the backend and issues the
// dashboard JWT that carries the backend session.
type AuthService interface {
	Login(ctx context.Context, req models.AuthRequest) (models.Token, error)
	Register(ctx context.Context, req models.AuthRequest) (models.Token, error)

	// Logout revokes the backend session of the user stored in ctx.
	Logout(ctx context.Context) error

	CreateToken(ctx context.Context, session models.Session) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DemoUserService makes sure the fixed demo account exists and is signed out.
type DemoUserService interface {
	// EnsureDemoUser never returns a Go error: failures are reported in the
	// result.
	EnsureDemoUser(ctx context.Context) models.DemoUserResult
}

// DashboardService loads client and avatar records and shapes them into
// dashboard views.
type DashboardService interface {
	ClientViews(ctx context.Context) ([]models.ClientView, error)
	Summary(ctx context.Context) (models.DashboardSummary, error)

	// MyClient returns the view of the client owned by userID.
	MyClient(ctx context.Context, userID string) (models.ClientView, error)
}

// CredentialsService forwards credential-management requests.
type CredentialsService interface {
	Manage(ctx context.Context, input models.CredentialsInput) (models.CredentialsResult, error)
}

// AvatarService creates avatar records.
type AvatarService interface {
	CreateAvatar(ctx context.Context, userID string, req models.CreateAvatarRequest) (models.Avatar, error)
	SanitizeName(ctx context.Context, name string) string
}

// LogoService serves the dashboard logo, preferring the background-stripped
// rendition and falling back to the original asset.
type LogoService interface {
	Logo(ctx context.Context) (models.Logo, error)

	// Refresh recomputes the processed rendition.
	Refresh(ctx context.Context) error
}

// AppInfoService reports the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
