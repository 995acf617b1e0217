package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"weather-forecaster/logging"
	"weather-forecaster/models"
	services "weather-forecaster/service"
	"weather-forecaster/util"
)

const (
	CITY_QUERY_ARG  = "city"
	UNITS_QUERY_ARG = "units"
	GRAPH_QUERY_ARG = "graph"
)

// WeatherShower runs one Show Weather action.
type WeatherShower interface {
	ShowWeather(ctx context.Context, req services.WeatherRequest) services.WeatherResult
}

type WeatherHandler struct {
	weatherService WeatherShower
	logger         logrus.FieldLogger
}

func NewWeatherHandler(weatherService WeatherShower, logger logrus.FieldLogger) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		logger:         logging.Component(logger, "WeatherHandler"),
	}
}

type pageView struct {
	City             string
	Units            []option
	Graphs           []option
	Warning          string
	Error            string
	Report           *services.WeatherReport
	TemperatureChart string
	HumidityChart    string
}

// Index handles GET / with an empty form.
func (h *WeatherHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, newPageView(services.WeatherRequest{}))
}

// ShowWeather handles GET /weather and renders the result page.
// Warnings and errors are shown above the form, so the status stays 200.
func (h *WeatherHandler) ShowWeather(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r.URL.Query())
	result := h.weatherService.ShowWeather(r.Context(), req)
	h.log(r).WithField("status", result.Status).Info("Rendered weather page")

	view := newPageView(req)
	switch result.Status {
	case services.StatusWarning:
		view.Warning = result.Message
	case services.StatusError:
		view.Error = result.Message
	}
	if result.Report != nil {
		view.Report = result.Report
		view.TemperatureChart = string(result.Report.TemperatureChart)
		view.HumidityChart = string(result.Report.HumidityChart)
	}

	h.renderPage(w, r, view)
}

// GetWeather handles GET /v1/weather and returns the result as JSON.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	result := h.weatherService.ShowWeather(r.Context(), parseRequest(r.URL.Query()))

	status := http.StatusOK
	switch result.Status {
	case services.StatusWarning:
		status = http.StatusBadRequest
	case services.StatusError:
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log(r).WithError(err).Error("Error encoding response")
	}
}

// Ping handles GET /ping
func (h *WeatherHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *WeatherHandler) renderPage(w http.ResponseWriter, r *http.Request, view pageView) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.log(r).WithError(err).Error("Error rendering page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *WeatherHandler) log(r *http.Request) logrus.FieldLogger {
	return h.logger.WithField("request_id", RequestIDFromContext(r.Context()))
}

func parseRequest(vals url.Values) services.WeatherRequest {
	return services.WeatherRequest{
		Location: vals.Get(CITY_QUERY_ARG),
		Unit:     models.TemperatureUnit(vals.Get(UNITS_QUERY_ARG)),
		Graph:    util.GraphType(vals.Get(GRAPH_QUERY_ARG)),
	}
}

func newPageView(req services.WeatherRequest) pageView {
	unit := req.Unit
	if unit == "" {
		unit = models.Celsius
	}
	graph := req.Graph
	if graph == "" {
		graph = util.GraphBar
	}

	return pageView{
		City: req.Location,
		Units: []option{
			{Value: string(models.Celsius), Label: "celsius", Selected: unit == models.Celsius},
			{Value: string(models.Fahrenheit), Label: "fahrenheit", Selected: unit == models.Fahrenheit},
		},
		Graphs: []option{
			{Value: string(util.GraphBar), Label: "Bar Graph", Selected: graph == util.GraphBar},
			{Value: string(util.GraphLine), Label: "Line Graph", Selected: graph == util.GraphLine},
		},
	}
}
