package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Weather API metrics
	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_api_requests_total",
		Help: "Total number of requests sent to the weather data source",
	}, []string{"endpoint", "code"})
	APIRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "weather_api_request_duration_seconds",
		Help:    "Duration of weather data source requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// Action metrics
	WeatherActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_actions_total",
		Help: "Total number of Show Weather actions by outcome",
	}, []string{"status"})

	// HTTP metrics
	HttpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "code"})

	registerOnce sync.Once
)

// InitMetrics registers all collectors with the default registry.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			APIRequestsTotal,
			APIRequestDurationSeconds,
			WeatherActionsTotal,
			HttpRequestsTotal,
		)
	})
}

// Handler exposes the registered collectors.
func Handler() http.Handler {
	InitMetrics()
	return promhttp.Handler()
}

// ObserveAPIRequest records one call to the data source. code is 0 when no
// response was received.
func ObserveAPIRequest(endpoint string, code int, elapsed time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	APIRequestsTotal.WithLabelValues(endpoint, label).Inc()
	APIRequestDurationSeconds.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveAction counts one Show Weather action.
func ObserveAction(status string) {
	WeatherActionsTotal.WithLabelValues(status).Inc()
}

// ObserveHTTPRequest counts one served request.
func ObserveHTTPRequest(method string, code int) {
	HttpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
}
