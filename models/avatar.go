// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Avatar is a generated-avatar record owned by a user. Several avatars may
// reference the same user; there is no uniqueness constraint.
type Avatar struct {
	ID string `json:"id"`

	// UserID is the owner of the avatar. It may be null.
	UserID Optional[string] `json:"user_id"`

	// Name is the label typed by the user.
	Name string `json:"name,omitempty"`

	// Slug is Name passed through the name sanitizer.
	Slug string `json:"slug,omitempty"`

	// HeygenAvatarID is the identifier of the avatar at the provider side.
	HeygenAvatarID Optional[string] `json:"heygen_avatar_id,omitzero"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the table that stores avatars.
func (a Avatar) TableName() string {
	return "avatars"
}

// CreateAvatarRequest is the body of an avatar creation request.
type CreateAvatarRequest struct {
	Name           string           `json:"name" validate:"required,max=128"`
	HeygenAvatarID Optional[string] `json:"heygen_avatar_id"`
}

// SanitizeRequest is the body of a name sanitization request.
type SanitizeRequest struct {
	Name string `json:"name"`
}

// SanitizeResponse carries the sanitized token.
type SanitizeResponse struct {
	Name string `json:"name"`
}
