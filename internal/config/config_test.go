package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FromJSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"upstream": {"api_key": "secret"}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Upstream.APIKey)
	assert.Equal(t, "https://api.nytimes.com/svc/books/v3", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/apiv3", cfg.Server.RoutePrefix)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: "9000"
  route_prefix: /books/
  read_timeout: 5s
upstream:
  base_url: http://localhost:9999/v3
  api_key: abc
log:
  level: debug
  encoding: console
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/books", cfg.Server.RoutePrefix)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:9999/v3", cfg.Upstream.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"upstream": {"api_key": "from-file"}}`)
	t.Setenv("BOOKGW_UPSTREAM_API_KEY", "from-env")
	t.Setenv("BOOKGW_SERVER_PORT", "7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Upstream.APIKey)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	path := writeFile(t, "config.json", `{}`)

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "Config.Upstream.APIKey")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"upstream": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        time.Second,
			WriteTimeout:       time.Second,
			IdleTimeout:        time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Upstream: UpstreamConfig{BaseURL: "https://example.com/v3", APIKey: "k"},
		Log:      LogConfig{Level: "info", Encoding: "json"},
	}
	require.NoError(t, valid.Validate())

	badLevel := valid
	badLevel.Log.Level = "verbose"
	err := badLevel.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of [debug info warn error]")

	badURL := valid
	badURL.Upstream.BaseURL = "not a url"
	err = badURL.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid URL")
}
