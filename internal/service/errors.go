package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidAction         = errors.New("invalid credentials action")
	ErrNotAuthenticated      = errors.New("request is not authenticated")

	// ErrInvalidCredentials is returned by Login when the backend rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrConfirmationPending is returned by Register when the backend created
	// the account but issued no session until the email is confirmed.
	ErrConfirmationPending = errors.New("account created, email confirmation pending")

	ErrLogoNotConfigured = errors.New("logo path is not configured")
)
