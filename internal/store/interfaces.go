// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the record repositories of the dashboard.
//
// Client and avatar rows normally live in the backend-as-a-service; when a
// database DSN is configured the same rows are read directly over SQL
// (PostgreSQL through pgx, or SQLite for local development) with queries
// built by squirrel.
package store

import (
	"context"

	"github.com/MKhiriev/avatar-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientRepository reads client records.
type ClientRepository interface {
	// ListClients returns every visible client in a stable order.
	ListClients(ctx context.Context) ([]models.Client, error)
	// FindClientByUserID returns the client linked to userID or
	// [ErrClientNotFound].
	FindClientByUserID(ctx context.Context, userID string) (models.Client, error)
}

// AvatarRepository reads and creates avatar records.
type AvatarRepository interface {
	ListAvatars(ctx context.Context) ([]models.Avatar, error)
	// ListAvatarsByUser returns avatars owned by userID; a null or unset
	// userID selects avatars without an owner.
	ListAvatarsByUser(ctx context.Context, userID models.Optional[string]) ([]models.Avatar, error)
	CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
