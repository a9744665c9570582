package handler

import "errors"

// ErrNoTransport is returned by NewHandlers when the server configuration
// enables neither the HTTP API nor the gRPC health endpoint.
var ErrNoTransport = errors.New("no transport enabled: set an HTTP or gRPC address")
