// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an account of the backend-as-a-service.
type User struct {
	// ID is the backend user identifier (a UUID string).
	ID string `json:"id"`

	// Email is the login of the account.
	Email string `json:"email"`
}

// AuthRequest carries email/password credentials for sign-in and sign-up.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Session is the result of a successful backend sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         User   `json:"user"`
}

// DemoUserResult reports the outcome of the demo account bootstrap.
// Failures are carried in Error instead of being returned as Go errors.
type DemoUserResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Created is true when the demo account had to be signed up.
	Created bool `json:"created,omitempty"`
}

// APIResult is the envelope of JSON responses that report success or failure.
type APIResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}
