package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"weather-forecaster/api"
	"weather-forecaster/models"
)

const (
	CURRENT_WEATHER_ENDPOINT = "/weather"
	FORECAST_ENDPOINT        = "/forecast"
)

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewOpenWeatherApiClient creates a new instance of OpenWeatherApiClient
func NewOpenWeatherApiClient(httpClient *api.HTTPClient) *OpenWeatherApiClient {
	return &OpenWeatherApiClient{
		HTTPClient: httpClient,
	}
}

func (c *OpenWeatherApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetCurrentWeather retrieves current conditions at a place name such as "London, GB".
func (c *OpenWeatherApiClient) GetCurrentWeather(ctx context.Context, location string) (*models.CurrentWeatherResponse, error) {
	var response models.CurrentWeatherResponse
	if err := c.get(ctx, CURRENT_WEATHER_ENDPOINT, location, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetForecast retrieves the 5 day forecast at a place name in 3 hour steps.
func (c *OpenWeatherApiClient) GetForecast(ctx context.Context, location string, interval string) (*models.ForecastResponse, error) {
	if interval != FORECAST_INTERVAL_3H {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInterval, interval)
	}

	var response models.ForecastResponse
	if err := c.get(ctx, FORECAST_ENDPOINT, location, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OpenWeatherApiClient) get(ctx context.Context, endpoint, location string, response interface{}) error {
	if c.apiKey == "" {
		return ErrMissingCredentials
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)

	err := c.Request(ctx, http.MethodGet, endpoint, query, nil, nil, response)
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrLocationNotFound, location)
	}
	return fmt.Errorf("request %s for %q failed: %w", endpoint, location, err)
}
