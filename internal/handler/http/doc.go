// Package http implements the REST transport of the avatar dashboard.
//
// It wires chi routes to the service layer. Request tracing, access logging,
// panic recovery and bearer-token authentication are handled here before a
// request reaches a service. Every JSON response uses the {success, error,
// data} envelope of models.APIResult.
package http
