// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of a dashboard session token.
//
// Subject holds the backend user id. BackendToken is the access token issued
// by the backend-as-a-service at sign-in; it is forwarded on calls made on the
// user's behalf and used to sign the user out.
type Claims struct {
	jwt.RegisteredClaims

	BackendToken string `json:"bt,omitempty"`
}

// Token wraps a signed dashboard JWT together with values extracted from it.
type Token struct {
	// Token is the underlying JWT. Not serialized.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID string `json:"-"`

	// BackendToken is the parsed "bt" claim.
	BackendToken string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
