package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyResponse is returned when a 2xx response carries no usable body.
	ErrEmptyResponse = errors.New("empty response")
	// ErrNotConfigured is returned by adapters built without an endpoint.
	ErrNotConfigured = errors.New("endpoint is not configured")
)
