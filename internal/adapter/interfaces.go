// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the avatar dashboard.
//
// [Backend] talks to the hosted backend-as-a-service (authentication and
// row access), [CredentialsGateway] to the credential-management endpoint and
// [BackgroundRemover] to the image background-removal utility. Every
// implementation is a thin resty client; collaborators are always injected
// as interfaces so the service layer never holds a process-wide client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/avatar-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Backend is the narrow contract consumed from the backend-as-a-service.
//
// Requests made with a context carrying a backend access token (see
// utils.WithUser) are sent on behalf of that user; otherwise the project
// API key authorizes them.
type Backend interface {
	// SignIn authenticates email/password and returns the new session.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignUp creates an account. Depending on the project settings the
	// returned session may carry no access token until the email is confirmed.
	SignUp(ctx context.Context, email, password string) (models.Session, error)

	// SignOut revokes the session identified by accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// Query selects rows of table matching all filters and decodes them into dest.
	Query(ctx context.Context, table string, dest any, filters ...Filter) error

	// Insert stores row into table and decodes the stored representation
	// into dest when dest is non-nil.
	Insert(ctx context.Context, table string, row any, dest any) error
}

// CredentialsGateway sends credential-management payloads.
type CredentialsGateway interface {
	Send(ctx context.Context, payload models.CredentialsPayload) (models.CredentialsResult, error)
}

// BackgroundRemover strips the background of an image.
type BackgroundRemover interface {
	Remove(ctx context.Context, image []byte, contentType string) ([]byte, error)
}
