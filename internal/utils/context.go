// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, name sanitization,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated backend user
	// identifier in the context.
	UserIDCtxKey = contextKey("userID")

	// BackendTokenCtxKey is the key used to store the backend-as-a-service
	// access token of the authenticated user.
	BackendTokenCtxKey = contextKey("backendToken")
)

// WithUser returns a copy of ctx carrying the user id and the backend access
// token of an authenticated request.
func WithUser(ctx context.Context, userID, backendToken string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, BackendTokenCtxKey, backendToken)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found, is a string and is not empty
//   - ok == false — value is missing, empty or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetBackendTokenFromContext retrieves the backend access token stored by
// [WithUser]. An empty token is reported as missing.
func GetBackendTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BackendTokenCtxKey).(string)
	return token, ok && token != ""
}
