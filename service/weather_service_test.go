package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-forecaster/aggregator"
	"weather-forecaster/api/openweather"
	"weather-forecaster/config"
	"weather-forecaster/models"
	"weather-forecaster/util"
)

type MockWeatherAPI struct {
	mock.Mock
}

func (m *MockWeatherAPI) GetCurrentWeather(ctx context.Context, location string) (*models.CurrentWeatherResponse, error) {
	args := m.Called(ctx, location)
	resp, _ := args.Get(0).(*models.CurrentWeatherResponse)
	return resp, args.Error(1)
}

func (m *MockWeatherAPI) GetForecast(ctx context.Context, location string, interval string) (*models.ForecastResponse, error) {
	args := m.Called(ctx, location, interval)
	resp, _ := args.Get(0).(*models.ForecastResponse)
	return resp, args.Error(1)
}

func (m *MockWeatherAPI) SetCredentials(apiKey string) {}

type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) RenderTemperature(days []aggregator.DayBucket, unit models.TemperatureUnit, graph util.GraphType) ([]byte, error) {
	args := m.Called(days, unit, graph)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func (m *MockChartRenderer) RenderHumidity(days []aggregator.DayBucket) ([]byte, error) {
	args := m.Called(days)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func unixAt(day, hour int) int64 {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC).Unix()
}

func forecastEntry(dt int64, celsius float64, humidity int, code int) models.ForecastEntry {
	return models.ForecastEntry{
		Dt:      dt,
		Main:    models.MainReadings{Temp: celsius + 273.15, Humidity: humidity},
		Weather: []models.WeatherCondition{{ID: code}},
	}
}

func testForecast() *models.ForecastResponse {
	return &models.ForecastResponse{List: []models.ForecastEntry{
		forecastEntry(unixAt(1, 0), 10, 70, 800),
		forecastEntry(unixAt(1, 3), 15, 90, 500),
		forecastEntry(unixAt(1, 6), 12, 75, 800),
		forecastEntry(unixAt(2, 0), 20, 60, 803),
	}}
}

func testCurrent() *models.CurrentWeatherResponse {
	current := &models.CurrentWeatherResponse{
		Weather:    []models.WeatherCondition{{ID: 500, Description: "light rain", Icon: "10d"}},
		Main:       models.MainReadings{Temp: 285.65, FeelsLike: 284.15, Pressure: 1008, Humidity: 81},
		Visibility: 8000,
		Wind:       models.Wind{Speed: 5.7},
		Clouds:     models.Clouds{All: 90},
	}
	current.Sys.Sunrise = unixAt(1, 8)
	current.Sys.Sunset = unixAt(1, 16)
	return current
}

func newService(api openweather.WeatherAPI, renderer ChartRenderer) *WeatherService {
	logger, _ := logrustest.NewNullLogger()
	return NewWeatherService(api, renderer, logger)
}

func TestShowWeather_Success(t *testing.T) {
	api := &MockWeatherAPI{}
	api.On("GetCurrentWeather", mock.Anything, "London, GB").Return(testCurrent(), nil).Once()
	api.On("GetForecast", mock.Anything, "London, GB", openweather.FORECAST_INTERVAL_3H).Return(testForecast(), nil).Once()

	renderer := &MockChartRenderer{}
	renderer.On("RenderTemperature", mock.Anything, models.Celsius, util.GraphLine).Return([]byte("<temp/>"), nil)
	renderer.On("RenderHumidity", mock.Anything).Return([]byte("<hum/>"), nil)

	result := newService(api, renderer).ShowWeather(context.Background(), WeatherRequest{
		Location: "  London, GB ",
		Unit:     models.Celsius,
		Graph:    util.GraphLine,
	})

	require.Equal(t, StatusOK, result.Status, result.Message)
	report := result.Report
	require.NotNil(t, report)

	day1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	assert.Equal(t, []aggregator.DayBucket{
		{Date: day1, Min: 10, Max: 15},
		{Date: day2, Min: 20, Max: 20},
	}, report.TemperatureDays)
	assert.Equal(t, []aggregator.DayBucket{
		{Date: day1, Min: 70, Max: 90},
		{Date: day2, Min: 60, Max: 60},
	}, report.HumidityDays)

	assert.Equal(t, "London, GB", report.Location)
	assert.Equal(t, "°C", report.UnitLabel)
	assert.Equal(t, "Light Rain", report.Current.Status)
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@4x.png", report.Current.IconURL)
	assert.Equal(t, 13, report.Current.Temperature)
	assert.Equal(t, 11, report.Current.FeelsLike)
	assert.Equal(t, 8.0, report.Current.VisibilityKm)
	assert.Equal(t, day1.Add(8*time.Hour), report.Sunrise)
	assert.Equal(t, []string{"clouds", "rain"}, kinds(report.Alerts))
	assert.Equal(t, []byte("<temp/>"), report.TemperatureChart)
	assert.Equal(t, []byte("<hum/>"), report.HumidityChart)

	api.AssertExpectations(t)
	renderer.AssertExpectations(t)
}

func TestShowWeather_Fahrenheit(t *testing.T) {
	api := &MockWeatherAPI{}
	api.On("GetCurrentWeather", mock.Anything, "Boston").Return(testCurrent(), nil)
	api.On("GetForecast", mock.Anything, "Boston", openweather.FORECAST_INTERVAL_3H).Return(testForecast(), nil)

	result := newService(api, util.NewPlotter()).ShowWeather(context.Background(), WeatherRequest{
		Location: "Boston",
		Unit:     models.Fahrenheit,
	})

	require.Equal(t, StatusOK, result.Status, result.Message)
	assert.Equal(t, util.GraphBar, result.Report.Graph)
	assert.InDelta(t, 50.0, result.Report.TemperatureDays[0].Min, 1e-9)
	assert.InDelta(t, 59.0, result.Report.TemperatureDays[0].Max, 1e-9)
	assert.Contains(t, string(result.Report.TemperatureChart), "Temperature (°F)")
}

func TestShowWeather_EmptyLocation(t *testing.T) {
	api := &MockWeatherAPI{}
	renderer := &MockChartRenderer{}

	for _, location := range []string{"", "   "} {
		result := newService(api, renderer).ShowWeather(context.Background(), WeatherRequest{Location: location})

		assert.Equal(t, StatusWarning, result.Status)
		assert.Equal(t, EMPTY_LOCATION_WARNING, result.Message)
		assert.Nil(t, result.Report)
	}

	api.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything, mock.Anything)
	renderer.AssertNotCalled(t, "RenderTemperature", mock.Anything, mock.Anything, mock.Anything)
	renderer.AssertNotCalled(t, "RenderHumidity", mock.Anything)
}

func TestShowWeather_UnsupportedChoices(t *testing.T) {
	api := &MockWeatherAPI{}

	result := newService(api, &MockChartRenderer{}).ShowWeather(context.Background(), WeatherRequest{Location: "Paris", Unit: "rankine"})
	assert.Equal(t, StatusWarning, result.Status)

	result = newService(api, &MockChartRenderer{}).ShowWeather(context.Background(), WeatherRequest{Location: "Paris", Graph: "pie"})
	assert.Equal(t, StatusWarning, result.Status)

	api.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
}

func TestShowWeather_LocationNotFound(t *testing.T) {
	notFound := fmt.Errorf("%w: Atlantis", openweather.ErrLocationNotFound)
	api := &MockWeatherAPI{}
	api.On("GetCurrentWeather", mock.Anything, "Atlantis").Return(nil, notFound).Once()
	api.On("GetCurrentWeather", mock.Anything, "London, GB").Return(testCurrent(), nil).Once()
	api.On("GetForecast", mock.Anything, "London, GB", openweather.FORECAST_INTERVAL_3H).Return(testForecast(), nil).Once()

	renderer := &MockChartRenderer{}
	renderer.On("RenderTemperature", mock.Anything, mock.Anything, mock.Anything).Return([]byte("t"), nil).Once()
	renderer.On("RenderHumidity", mock.Anything).Return([]byte("h"), nil).Once()

	svc := newService(api, renderer)

	result := svc.ShowWeather(context.Background(), WeatherRequest{Location: "Atlantis"})

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.Report)
	assert.Contains(t, result.Message, "location not found")
	assert.Contains(t, result.Message, LOCATION_FORMAT_HINT)
	api.AssertNotCalled(t, "GetForecast", mock.Anything, "Atlantis", mock.Anything)

	// the same service keeps working for the next attempt
	result = svc.ShowWeather(context.Background(), WeatherRequest{Location: "London, GB"})
	assert.Equal(t, StatusOK, result.Status)

	api.AssertExpectations(t)
	renderer.AssertExpectations(t)
}

func TestShowWeather_ForecastFailure(t *testing.T) {
	api := &MockWeatherAPI{}
	api.On("GetCurrentWeather", mock.Anything, "Oslo").Return(testCurrent(), nil)
	api.On("GetForecast", mock.Anything, "Oslo", openweather.FORECAST_INTERVAL_3H).Return(nil, errors.New("connection refused"))
	renderer := &MockChartRenderer{}

	result := newService(api, renderer).ShowWeather(context.Background(), WeatherRequest{Location: "Oslo"})

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "Error: connection refused\n"+LOCATION_FORMAT_HINT, result.Message)
	renderer.AssertNotCalled(t, "RenderTemperature", mock.Anything, mock.Anything, mock.Anything)
}

func TestShowWeather_RenderFailureFailsAction(t *testing.T) {
	api := &MockWeatherAPI{}
	api.On("GetCurrentWeather", mock.Anything, "Rome").Return(testCurrent(), nil)
	api.On("GetForecast", mock.Anything, "Rome", openweather.FORECAST_INTERVAL_3H).Return(testForecast(), nil)

	renderer := &MockChartRenderer{}
	renderer.On("RenderTemperature", mock.Anything, mock.Anything, mock.Anything).Return([]byte("t"), nil)
	renderer.On("RenderHumidity", mock.Anything).Return(nil, errors.New("render failed"))

	result := newService(api, renderer).ShowWeather(context.Background(), WeatherRequest{Location: "Rome"})

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.Report)
	assert.Contains(t, result.Message, "render failed")
}

func TestShowWeather_PanicIsContained(t *testing.T) {
	api := &MockWeatherAPI{}
	// a nil forecast without an error would dereference nil
	api.On("GetCurrentWeather", mock.Anything, "Lima").Return(testCurrent(), nil)
	api.On("GetForecast", mock.Anything, "Lima", openweather.FORECAST_INTERVAL_3H).Return(nil, nil)

	logger, hook := logrustest.NewNullLogger()
	svc := NewWeatherService(api, &MockChartRenderer{}, logger)

	var result WeatherResult
	assert.NotPanics(t, func() {
		result = svc.ShowWeather(context.Background(), WeatherRequest{Location: "Lima"})
	})
	assert.Equal(t, StatusError, result.Status)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestShowWeather_WithRecordedResponses(t *testing.T) {
	resources := filepath.Join("..", config.RESOURCES_PATH_PREFIX)
	svc := newService(openweather.NewOpenWeatherApiClientMock(resources), util.NewPlotter())

	result := svc.ShowWeather(context.Background(), WeatherRequest{Location: "London, GB"})

	require.Equal(t, StatusOK, result.Status, result.Message)
	days := result.Report.TemperatureDays
	require.Len(t, days, 3)
	for i, d := range days {
		assert.LessOrEqual(t, d.Min, d.Max)
		if i > 0 {
			assert.True(t, d.Date.After(days[i-1].Date))
		}
	}
	assert.InDelta(t, 14.45, days[0].Min, 1e-9)
	assert.InDelta(t, 19.95, days[0].Max, 1e-9)
	assert.Equal(t, 74.0, result.Report.HumidityDays[0].Max)
	assert.Equal(t, "Broken Clouds", result.Report.Current.Status)

	result = svc.ShowWeather(context.Background(), WeatherRequest{Location: openweather.MOCK_UNKNOWN_LOCATION})
	assert.Equal(t, StatusError, result.Status)
}

func TestTemperatureByDay_Empty(t *testing.T) {
	assert.Empty(t, TemperatureByDay(nil, models.Celsius))
	assert.Empty(t, HumidityByDay([]models.ForecastEntry{}))
}
