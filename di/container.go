package di

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"weather-forecaster/api"
	"weather-forecaster/api/openweather"
	"weather-forecaster/config"
	"weather-forecaster/metrics"
	"weather-forecaster/server"
	"weather-forecaster/server/handlers"
	services "weather-forecaster/service"
	"weather-forecaster/util"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	Logger            logrus.FieldLogger
	WeatherAPI        openweather.WeatherAPI
	Plotter           *util.Plotter
	WeatherService    *services.WeatherService
	WeatherHandler    *handlers.WeatherHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	WeatherHttpServer *server.WeatherHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, logger logrus.FieldLogger) *Container {
	logger.Infof("initializing container - env: %s", cfg.Env)

	// Initialize OpenWeatherMap client - recorded responses outside prod
	var weatherAPI openweather.WeatherAPI
	if cfg.Env != config.ENV_PROD {
		weatherAPI = openweather.NewOpenWeatherApiClientMock(cfg.ResourcesDir)
		logger.Infof("Using mock open weather api (resources: %s)", cfg.ResourcesDir)
	} else {
		logger.Info("Using prod open weather api")
		httpClient := api.NewHTTPClientWithTimeout(cfg.OpenWeather.BaseURL, cfg.OpenWeather.Timeout)

		weatherAPI = openweather.NewOpenWeatherApiClient(httpClient)
		weatherAPI.SetCredentials(cfg.OpenWeather.APIKey)
	}

	plotter := util.NewPlotter()

	weatherService := services.NewWeatherService(weatherAPI, plotter, logger)

	weatherHandler := handlers.NewWeatherHandler(weatherService, logger)

	metrics.InitMetrics()

	muxRouter := mux.NewRouter()

	router := server.NewRouter(weatherHandler, metrics.Handler(), muxRouter)

	weatherHttpServer := server.NewWeatherHttpServer(router, muxRouter, cfg.Server.Address, cfg.Server.ShutdownTimeout, logger)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		WeatherAPI:        weatherAPI,
		Plotter:           plotter,
		WeatherService:    weatherService,
		WeatherHandler:    weatherHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		WeatherHttpServer: weatherHttpServer,
	}
}
