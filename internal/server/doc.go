// Package server runs the transport servers of the avatar dashboard.
//
// It starts the HTTP and gRPC servers that the configuration enables and
// shuts them down gracefully once the run context is cancelled, typically by
// a termination signal.
package server
