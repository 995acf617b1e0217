package openweather

import (
	"context"
	"errors"

	"weather-forecaster/models"
)

// FORECAST_INTERVAL_3H is the only granularity the 2.5 forecast endpoint serves.
const FORECAST_INTERVAL_3H = "3h"

var (
	ErrLocationNotFound    = errors.New("location not found")
	ErrUnsupportedInterval = errors.New("unsupported forecast interval")
	ErrMissingCredentials  = errors.New("missing OpenWeatherMap API key")
)

// WeatherAPI defines the interface for interacting with the OpenWeatherMap API
type WeatherAPI interface {
	GetCurrentWeather(ctx context.Context, location string) (*models.CurrentWeatherResponse, error)
	GetForecast(ctx context.Context, location string, interval string) (*models.ForecastResponse, error)
	SetCredentials(apiKey string)
}
