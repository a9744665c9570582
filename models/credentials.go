// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CredentialsAction tags what the credential-management endpoint should do.
type CredentialsAction string

const (
	// CredentialsActionFetch retrieves the credential status of an avatar/client pair.
	CredentialsActionFetch CredentialsAction = "fetch"
	// CredentialsActionSave persists a new API key and related identifiers.
	CredentialsActionSave CredentialsAction = "save"
	// CredentialsActionUnlock clears a lock state.
	CredentialsActionUnlock CredentialsAction = "unlock"
)

// Valid reports whether a is one of the three known actions.
func (a CredentialsAction) Valid() bool {
	switch a {
	case CredentialsActionFetch, CredentialsActionSave, CredentialsActionUnlock:
		return true
	default:
		return false
	}
}

// Credentials is the nested credentials object of a payload.
type Credentials struct {
	AccountID      Optional[string] `json:"accountId,omitzero"`
	APIKey         Optional[string] `json:"apiKey,omitzero"`
	HeygenAvatarID Optional[string] `json:"heygenAvatarId,omitzero"`
}

// CredentialsInput is what a caller hands to [BuildCredentialsPayload].
// Every optional field distinguishes "not supplied" from "supplied as null".
type CredentialsInput struct {
	Action      CredentialsAction     `json:"action" validate:"required"`
	AvatarID    Optional[string]      `json:"avatarId"`
	ClientID    Optional[string]      `json:"clientId"`
	UserID      Optional[string]      `json:"userId"`
	Credentials Optional[Credentials] `json:"credentials"`
}

// CredentialsPayload is the envelope sent to the credential-management
// endpoint. AvatarID is always written (null when absent); the other optional
// fields are written only when the caller supplied them.
type CredentialsPayload struct {
	Action      CredentialsAction     `json:"action"`
	AvatarID    Optional[string]      `json:"avatarId"`
	ClientID    Optional[string]      `json:"clientId,omitzero"`
	UserID      Optional[string]      `json:"userId,omitzero"`
	Credentials Optional[Credentials] `json:"credentials,omitzero"`
}

// BuildCredentialsPayload shapes input into a request payload.
//
// The action is copied verbatim. An unset avatar id becomes an explicit null;
// null and string avatar ids pass through. ClientID, UserID and Credentials
// are copied as they are, so an unset field stays unset and is omitted when
// the payload is encoded, while an explicit null is kept.
func BuildCredentialsPayload(input CredentialsInput) CredentialsPayload {
	payload := CredentialsPayload{
		Action:   input.Action,
		AvatarID: input.AvatarID.OrNull(),
	}

	if input.ClientID.IsSet() {
		payload.ClientID = input.ClientID
	}
	if input.UserID.IsSet() {
		payload.UserID = input.UserID
	}
	if input.Credentials.IsSet() {
		payload.Credentials = input.Credentials
	}

	return payload
}

// CredentialsResult is the decoded response of the credential-management
// endpoint. Data carries the action-specific body untouched.
type CredentialsResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
