// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserID is reported by authenticated routes reached without a user
	// id in the request context.
	ErrNoUserID = errors.New("no user id in request context")

	// ErrValidation wraps validator failures of a decoded request body.
	ErrValidation = errors.New("request validation failed")
)
