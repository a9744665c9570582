package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigBuilder_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestConfigBuilder_LaterLayersWin(t *testing.T) {
	b := newConfigBuilder()
	b.add("first", &StructuredConfig{
		App:     App{Version: "1.0.0", TokenIssuer: "first"},
		Adapter: Adapter{BackendURL: "https://a.example.co"},
	}, nil)
	b.add("second", &StructuredConfig{App: App{TokenIssuer: "second"}}, nil)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, "https://a.example.co", cfg.Adapter.BackendURL)
}

func TestConfigBuilder_ErrorsNameTheirSource(t *testing.T) {
	b := newConfigBuilder("-a", "not-an-address")
	b.withFlags()

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flags:")
	assert.Empty(t, b.layers)
}

func TestConfigBuilder_JSONPathFromLastLayer(t *testing.T) {
	first := writeConfigFile(t, `{"app":{"version":"from-first"}}`)
	last := writeConfigFile(t, `{"app":{"version":"from-last"}}`)

	b := newConfigBuilder()
	b.add("env", &StructuredConfig{JSONFilePath: first}, nil)
	b.add("flags", &StructuredConfig{}, nil)
	b.add("override", &StructuredConfig{JSONFilePath: last}, nil)

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "from-last", cfg.App.Version)
}

func TestConfigBuilder_WithoutJSONPath(t *testing.T) {
	b := newConfigBuilder()
	b.add("env", &StructuredConfig{}, nil)

	b.withJSON()

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

func TestConfigBuilder_MissingJSONFile(t *testing.T) {
	b := newConfigBuilder()
	b.add("env", &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")}, nil)

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "json:")
}

func TestConfigBuilder_AllSources(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("ADAPTER_BACKEND_URL", "https://env.example.co")
	t.Setenv("WORKERS_LOGO_REFRESH_INTERVAL", "15m")

	path := writeConfigFile(t, `{
		"adapter": {"backend_url": "https://json.example.co"},
		"server": {"http_address": "localhost:7070"}
	}`)

	cfg, err := newConfigBuilder("-token-issuer", "flag-issuer", "-a", "localhost:8080", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	// flags beat env, json beats flags
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://json.example.co", cfg.Adapter.BackendURL)
	// env defaults survive when nothing overrides them
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, 15*time.Minute, cfg.Workers.LogoRefreshInterval)
}
