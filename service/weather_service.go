package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-forecaster/aggregator"
	"weather-forecaster/api/openweather"
	"weather-forecaster/logging"
	"weather-forecaster/metrics"
	"weather-forecaster/models"
	"weather-forecaster/util"
)

const (
	EMPTY_LOCATION_WARNING = "Please enter a city name!"
	LOCATION_FORMAT_HINT   = "Try entering city as 'city, country_code' (e.g., London, GB)"
)

// Status is the outcome of one Show Weather action.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// ChartRenderer turns aggregated days into displayable chart documents.
type ChartRenderer interface {
	RenderTemperature(days []aggregator.DayBucket, unit models.TemperatureUnit, graph util.GraphType) ([]byte, error)
	RenderHumidity(days []aggregator.DayBucket) ([]byte, error)
}

// WeatherRequest carries the form values. Empty unit and graph mean celsius and bar.
type WeatherRequest struct {
	Location string
	Unit     models.TemperatureUnit
	Graph    util.GraphType
}

// CurrentConditions is the display form of the current weather.
type CurrentConditions struct {
	IconURL      string  `json:"icon_url"`
	Status       string  `json:"status"`
	Temperature  int     `json:"temperature"`
	FeelsLike    int     `json:"feels_like"`
	Clouds       int     `json:"clouds"`
	WindSpeed    float64 `json:"wind_speed"`
	Humidity     int     `json:"humidity"`
	Pressure     float64 `json:"pressure"`
	VisibilityKm float64 `json:"visibility_km"`
}

// WeatherReport is everything shown after a successful action.
type WeatherReport struct {
	Location        string                 `json:"location"`
	Unit            models.TemperatureUnit `json:"unit"`
	UnitLabel       string                 `json:"unit_label"`
	Graph           util.GraphType         `json:"graph"`
	Current         CurrentConditions      `json:"current"`
	TemperatureDays []aggregator.DayBucket `json:"temperature_days"`
	HumidityDays    []aggregator.DayBucket `json:"humidity_days"`
	Alerts          []Alert                `json:"alerts"`
	Sunrise         time.Time              `json:"sunrise"`
	Sunset          time.Time              `json:"sunset"`

	TemperatureChart []byte `json:"-"`
	HumidityChart    []byte `json:"-"`
}

// WeatherResult is either a report or a message to display instead.
type WeatherResult struct {
	Status  Status         `json:"status"`
	Message string         `json:"message,omitempty"`
	Report  *WeatherReport `json:"report,omitempty"`
}

func warning(msg string) WeatherResult {
	return WeatherResult{Status: StatusWarning, Message: msg}
}

func failure(err error) WeatherResult {
	return WeatherResult{Status: StatusError, Message: fmt.Sprintf("Error: %v\n%s", err, LOCATION_FORMAT_HINT)}
}

// WeatherService runs the Show Weather action against the data source.
type WeatherService struct {
	weatherAPI openweather.WeatherAPI
	renderer   ChartRenderer
	logger     logrus.FieldLogger
}

// NewWeatherService constructs a WeatherService with its data source and renderer.
func NewWeatherService(
	weatherAPI openweather.WeatherAPI,
	renderer ChartRenderer,
	logger logrus.FieldLogger) *WeatherService {

	return &WeatherService{
		weatherAPI: weatherAPI,
		renderer:   renderer,
		logger:     logging.Component(logger, "WeatherService"),
	}
}

// ShowWeather fetches, aggregates and renders the weather for one request.
// Every fault ends up in the returned result.
func (ws *WeatherService) ShowWeather(ctx context.Context, req WeatherRequest) (result WeatherResult) {
	log := ws.logger.WithField("location", req.Location)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Show weather panicked: %v", r)
			result = failure(fmt.Errorf("internal error: %v", r))
		}
		metrics.ObserveAction(string(result.Status))
	}()

	location := strings.TrimSpace(req.Location)
	if location == "" {
		log.Info("Empty location submitted")
		return warning(EMPTY_LOCATION_WARNING)
	}

	unit, graph, err := parseChoices(req)
	if err != nil {
		log.Infof("Rejected request: %v", err)
		return warning(err.Error())
	}

	report, err := ws.buildReport(ctx, location, unit, graph)
	if err != nil {
		log.Warnf("Show weather failed: %v", err)
		return failure(err)
	}

	log.Infof("Show weather completed: %d forecast days, %d alerts", len(report.TemperatureDays), len(report.Alerts))
	return WeatherResult{Status: StatusOK, Report: report}
}

func parseChoices(req WeatherRequest) (models.TemperatureUnit, util.GraphType, error) {
	unit := models.Celsius
	if req.Unit != "" {
		u, err := models.ParseTemperatureUnit(string(req.Unit))
		if err != nil {
			return "", "", err
		}
		unit = u
	}

	graph := util.GraphBar
	if req.Graph != "" {
		g, err := util.ParseGraphType(string(req.Graph))
		if err != nil {
			return "", "", err
		}
		graph = g
	}

	return unit, graph, nil
}

func (ws *WeatherService) buildReport(ctx context.Context, location string, unit models.TemperatureUnit, graph util.GraphType) (*WeatherReport, error) {
	current, err := ws.weatherAPI.GetCurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}

	forecast, err := ws.weatherAPI.GetForecast(ctx, location, openweather.FORECAST_INTERVAL_3H)
	if err != nil {
		return nil, err
	}

	temperatureDays := TemperatureByDay(forecast.List, unit)
	humidityDays := HumidityByDay(forecast.List)

	temperatureChart, err := ws.renderer.RenderTemperature(temperatureDays, unit, graph)
	if err != nil {
		return nil, err
	}
	humidityChart, err := ws.renderer.RenderHumidity(humidityDays)
	if err != nil {
		return nil, err
	}

	return &WeatherReport{
		Location:         location,
		Unit:             unit,
		UnitLabel:        unit.Label(),
		Graph:            graph,
		Current:          ws.currentConditions(current, unit),
		TemperatureDays:  temperatureDays,
		HumidityDays:     humidityDays,
		Alerts:           DetectAlerts(forecast.List),
		Sunrise:          current.SunriseTime(),
		Sunset:           current.SunsetTime(),
		TemperatureChart: temperatureChart,
		HumidityChart:    humidityChart,
	}, nil
}

func (ws *WeatherService) currentConditions(current *models.CurrentWeatherResponse, unit models.TemperatureUnit) CurrentConditions {
	condition := current.Condition()
	return CurrentConditions{
		IconURL:      condition.IconURL(),
		Status:       cases.Title(language.English).String(condition.Description),
		Temperature:  int(math.Round(unit.FromKelvin(current.Main.Temp))),
		FeelsLike:    int(math.Round(unit.FromKelvin(current.Main.FeelsLike))),
		Clouds:       current.Clouds.All,
		WindSpeed:    current.Wind.Speed,
		Humidity:     current.Main.Humidity,
		Pressure:     current.Main.Pressure,
		VisibilityKm: current.VisibilityKm(),
	}
}

// TemperatureByDay is the per-day min/max temperature in unit.
func TemperatureByDay(entries []models.ForecastEntry, unit models.TemperatureUnit) []aggregator.DayBucket {
	return aggregator.Aggregate(entries,
		models.ForecastEntry.ReferenceTime,
		func(e models.ForecastEntry) float64 { return e.Temperature(unit) },
	)
}

// HumidityByDay is the per-day min/max humidity percentage.
func HumidityByDay(entries []models.ForecastEntry) []aggregator.DayBucket {
	return aggregator.Aggregate(entries,
		models.ForecastEntry.ReferenceTime,
		func(e models.ForecastEntry) float64 { return float64(e.Main.Humidity) },
	)
}
