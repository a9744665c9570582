// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// credentialsFunctionPath is appended to the backend URL when no explicit
// credential-management endpoint is configured.
const credentialsFunctionPath = "/functions/v1/manage-heygen-credentials"

// StructuredConfig is the top-level configuration container for the
// avatar-dashboard service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix   — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env         — direct environment variable name for scalar fields.
//   - envDefault  — value used when the variable is not set.
//   - validate    — go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, the demo
	// account, the logo asset and the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds the optional direct database connection.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the addresses of the external collaborators: the
	// backend-as-a-service, the credential-management endpoint and the
	// background-removal utility.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify dashboard JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"avatar-dashboard" validate:"required"`

	// TokenDuration specifies how long a JWT remains valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h" validate:"gt=0"`

	// Version is reported by the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev" validate:"required"`

	// LogLevel is the global zerolog level.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// DemoEmail and DemoPassword identify the fixed demo account that
	// POST /api/auth/demo makes sure exists.
	// Env: APP_DEMO_EMAIL, APP_DEMO_PASSWORD
	DemoEmail    string `env:"DEMO_EMAIL" envDefault:"demo@avatar-dashboard.app" validate:"required,email"`
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"demo-password" validate:"required,min=6"`

	// LogoPath points at the original logo image. When empty the logo
	// endpoint responds with 404.
	// Env: APP_LOGO_PATH
	LogoPath string `env:"LOGO_PATH"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the direct SQL record store.
//
// When DSN is empty, client and avatar rows are read through the
// backend-as-a-service REST interface instead.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// name ("file:dashboard.db", "dashboard.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10" validate:"gte=0"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// GRPCAddress is the "host:port" the gRPC health server listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s" validate:"gte=0"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	// BackendURL is the base URL of the backend-as-a-service project.
	// Env: ADAPTER_BACKEND_URL
	BackendURL string `env:"BACKEND_URL" validate:"required,url"`

	// BackendAPIKey is sent in the "apikey" header of every backend call.
	// Env: ADAPTER_BACKEND_API_KEY
	BackendAPIKey string `env:"BACKEND_API_KEY" validate:"required"`

	// CredentialsURL is the credential-management endpoint. Defaults to the
	// manage-heygen-credentials function of the backend project.
	// Env: ADAPTER_CREDENTIALS_URL
	CredentialsURL string `env:"CREDENTIALS_URL" validate:"omitempty,url"`

	// BackgroundRemovalURL is the background-removal utility. When empty the
	// original logo is always served.
	// Env: ADAPTER_BACKGROUND_REMOVAL_URL
	BackgroundRemovalURL string `env:"BACKGROUND_REMOVAL_URL" validate:"omitempty,url"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// LogoRefreshInterval is the period of the processed-logo refresh. Zero
	// disables the worker.
	// Env: WORKERS_LOGO_REFRESH_INTERVAL
	LogoRefreshInterval time.Duration `env:"LOGO_REFRESH_INTERVAL" envDefault:"1h" validate:"gte=0"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder(os.Args[1:]...).
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

// applyDefaults fills values derived from other fields.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.CredentialsURL == "" && cfg.Adapter.BackendURL != "" {
		cfg.Adapter.CredentialsURL = strings.TrimRight(cfg.Adapter.BackendURL, "/") + credentialsFunctionPath
	}
}
