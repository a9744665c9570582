// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
	"unicode"
)

// Client is a tenant record of the avatar platform. It holds the API key the
// tenant uses with the external avatar-generation provider.
type Client struct {
	// ID is the backend-assigned identifier of the client row.
	ID string `json:"id"`

	// UserID links the client to the account that owns its avatars.
	// It may be null for clients that were created before sign-up.
	UserID Optional[string] `json:"user_id"`

	// Name is the display name shown on the dashboard.
	Name string `json:"name,omitempty"`

	// Email is the contact address of the client.
	Email string `json:"email,omitempty"`

	// HeygenAPIKey is the opaque provider key. Never validated here.
	HeygenAPIKey Optional[string] `json:"heygen_api_key"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the table that stores clients.
func (c Client) TableName() string {
	return "clients"
}

// IsConfigured reports whether client has a usable provider key: the key must
// be present and non-empty after trimming surrounding whitespace. A nil
// client, an unset key and a null key all report false.
func IsConfigured(client *Client) bool {
	if client == nil {
		return false
	}

	key, ok := client.HeygenAPIKey.Get()
	if !ok {
		return false
	}

	return strings.TrimFunc(key, isBlank) != ""
}

// isBlank matches Unicode white space and the byte order mark, which browsers
// also trim.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ClientView is a client enriched with values derived for the dashboard.
// Both derived fields are recomputed on every aggregation and never stored.
type ClientView struct {
	Client

	// AvatarCount is the number of avatars owned by the client's user.
	AvatarCount int `json:"avatar_count"`

	// HasCredentials mirrors [IsConfigured] for the embedded client.
	HasCredentials bool `json:"has_credentials"`
}

// DashboardSummary holds the figures rendered on the dashboard metric cards.
type DashboardSummary struct {
	TotalClients        int `json:"total_clients"`
	ConfiguredClients   int `json:"configured_clients"`
	UnconfiguredClients int `json:"unconfigured_clients"`
	TotalAvatars        int `json:"total_avatars"`
}
