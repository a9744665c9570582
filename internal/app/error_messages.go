// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages the dashboard API writes into
// the "error" field of a failed result.
//
// Errors that are safe to show are reported with their own text. The
// messages below replace that text where it would leak internals or where a
// fixed wording is expected by the dashboard frontend.
package app

const (
	// MsgInternalServerError replaces the text of every unexpected failure.
	MsgInternalServerError = "internal server error"

	// MsgInvalidLoginPassword is returned when the identity backend rejects
	// the email/password pair.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpired is returned when a dashboard token is well formed
	// but past its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a dashboard token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route finds no
	// user id in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	MsgBackendUnavailable = "identity backend is not configured"
)
