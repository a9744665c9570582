// Package config loads the avatar-dashboard settings.
//
// Three sources are layered: environment variables (with envDefault
// fallbacks), command-line flags and an optional JSON file named by CONFIG
// or -c. Non-zero values of a later source win. After merging, derived
// defaults are filled in (the credential endpoint falls back to the backend
// project's function URL) and every group is checked with validator tags.
//
// Use [GetStructuredConfig].
package config
