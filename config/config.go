package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// OpenWeatherMap config
const OPEN_WEATHER_ENDPOINT_BASE_V25 = "https://api.openweathermap.org/data/2.5"
const OPEN_WEATHER_REQUEST_TIMEOUT = 10 * time.Second
const OPEN_WEATHER_FORECAST_INTERVAL = "3h"

// HTTP server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Logging config
const LOG_LEVEL = "info"
const LOG_FORMAT = "text"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CURRENT_WEATHER_RESPONSE_RESOURCE = "current_weather_response.json"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"
const CONFIG_FILE = "config.yaml"

// Config is the runtime configuration, read from config.yaml and overridden by env.
type Config struct {
	Env string `yaml:"env"`

	Server struct {
		Address         string        `yaml:"address"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	OpenWeather struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"open_weather"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	ResourcesDir string `yaml:"resources_dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Env: ENV_DEV}
	cfg.Server.Address = HTTP_SERVER_ADDRESS
	cfg.Server.ShutdownTimeout = HTTP_SERVER_SHUTDOWN_TIMEOUT
	cfg.OpenWeather.BaseURL = OPEN_WEATHER_ENDPOINT_BASE_V25
	cfg.OpenWeather.Timeout = OPEN_WEATHER_REQUEST_TIMEOUT
	cfg.Logging.Level = LOG_LEVEL
	cfg.Logging.Format = LOG_FORMAT
	cfg.ResourcesDir = filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX)
	return cfg
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the container cannot run without.
func (c *Config) Validate() error {
	if c.Env == ENV_PROD && c.OpenWeather.APIKey == "" {
		return errors.New("config: open_weather.api_key (OWM_API_KEY) is required in prod")
	}
	if c.Server.Address == "" {
		return errors.New("config: server.address must not be empty")
	}
	if c.OpenWeather.Timeout <= 0 {
		c.OpenWeather.Timeout = OPEN_WEATHER_REQUEST_TIMEOUT
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = HTTP_SERVER_SHUTDOWN_TIMEOUT
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("OWM_API_KEY"); v != "" {
		cfg.OpenWeather.APIKey = v
	}
	if v := os.Getenv("OWM_BASE_URL"); v != "" {
		cfg.OpenWeather.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("RESOURCES_DIR"); v != "" {
		cfg.ResourcesDir = v
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
