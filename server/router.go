package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// WeatherRoutes is the set of handlers the router mounts.
type WeatherRoutes interface {
	Index(w http.ResponseWriter, r *http.Request)
	ShowWeather(w http.ResponseWriter, r *http.Request)
	GetWeather(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	weatherHandler WeatherRoutes
	metricsHandler http.Handler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	weatherHandler WeatherRoutes,
	metricsHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		weatherHandler: weatherHandler,
		metricsHandler: metricsHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestIDMiddleware, metricsMiddleware)

	r.router.HandleFunc("/", r.weatherHandler.Index).Methods("GET")

	// expects ?city={location}&units={celsius|fahrenheit}&graph={bar|line}
	r.router.HandleFunc("/weather", r.weatherHandler.ShowWeather).Methods("GET")
	r.router.HandleFunc("/v1/weather", r.weatherHandler.GetWeather).Methods("GET")

	r.router.HandleFunc("/ping", r.weatherHandler.Ping).Methods("GET")

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods("GET")
	}
}
