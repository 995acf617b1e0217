package openweather

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"weather-forecaster/config"
	"weather-forecaster/models"
	"weather-forecaster/util"
)

// MOCK_UNKNOWN_LOCATION always fails, so the error path can be tried without the real API.
const MOCK_UNKNOWN_LOCATION = "nowhere"

// OpenWeatherApiClientMock serves recorded responses from the resources directory
type OpenWeatherApiClientMock struct {
	resourcesDir string
}

// NewOpenWeatherApiClientMock creates a new instance of OpenWeatherApiClientMock
func NewOpenWeatherApiClientMock(resourcesDir string) *OpenWeatherApiClientMock {
	return &OpenWeatherApiClientMock{resourcesDir: resourcesDir}
}

func (c *OpenWeatherApiClientMock) SetCredentials(apiKey string) {}

// GetCurrentWeather returns the recorded current weather response
func (c *OpenWeatherApiClientMock) GetCurrentWeather(ctx context.Context, location string) (*models.CurrentWeatherResponse, error) {
	if err := checkMockLocation(location); err != nil {
		return nil, err
	}
	return util.ReadCurrentWeatherResponseFromJSON(filepath.Join(c.resourcesDir, config.CURRENT_WEATHER_RESPONSE_RESOURCE))
}

// GetForecast returns the recorded forecast response
func (c *OpenWeatherApiClientMock) GetForecast(ctx context.Context, location string, interval string) (*models.ForecastResponse, error) {
	if interval != FORECAST_INTERVAL_3H {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInterval, interval)
	}
	if err := checkMockLocation(location); err != nil {
		return nil, err
	}
	return util.ReadForecastResponseFromJSON(filepath.Join(c.resourcesDir, config.FORECAST_RESPONSE_RESOURCE))
}

func checkMockLocation(location string) error {
	if strings.EqualFold(strings.TrimSpace(location), MOCK_UNKNOWN_LOCATION) {
		return fmt.Errorf("%w: %s", ErrLocationNotFound, location)
	}
	return nil
}
