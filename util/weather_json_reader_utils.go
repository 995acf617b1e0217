package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-forecaster/models"
)

// ReadCurrentWeatherResponseFromJSON loads a CurrentWeatherResponse from JSON on disk.
func ReadCurrentWeatherResponseFromJSON(filePath string) (*models.CurrentWeatherResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.CurrentWeatherResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CurrentWeatherResponse: %w", err)
	}
	return &resp, nil
}

// ReadForecastResponseFromJSON loads a ForecastResponse from JSON on disk.
func ReadForecastResponseFromJSON(filePath string) (*models.ForecastResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ForecastResponse: %w", err)
	}
	return &resp, nil
}
