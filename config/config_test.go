package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ENV_DEV, cfg.Env)
	assert.Equal(t, HTTP_SERVER_ADDRESS, cfg.Server.Address)
	assert.Equal(t, OPEN_WEATHER_ENDPOINT_BASE_V25, cfg.OpenWeather.BaseURL)
	assert.Equal(t, OPEN_WEATHER_REQUEST_TIMEOUT, cfg.OpenWeather.Timeout)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: dev
server:
  address: ":9090"
  shutdown_timeout: 2s
open_weather:
  api_key: from-file
  timeout: 3s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "from-file", cfg.OpenWeather.APIKey)
	assert.Equal(t, 3*time.Second, cfg.OpenWeather.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, OPEN_WEATHER_ENDPOINT_BASE_V25, cfg.OpenWeather.BaseURL, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "open_weather:\n  api_key: from-file\n")
	t.Setenv("OWM_API_KEY", "from-env")
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("APP_ENV", ENV_PROD)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OpenWeather.APIKey)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, ENV_PROD, cfg.Env)
}

func TestLoad_ProdRequiresAPIKey(t *testing.T) {
	path := writeConfig(t, "env: prod\n")
	t.Setenv("OWM_API_KEY", "")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not, a, map")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/app")

	assert.Equal(t, "/srv/app/resources/forecast_response.json", GetResourcePath(FORECAST_RESPONSE_RESOURCE))
}
