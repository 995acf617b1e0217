package main

import (
	"flag"
	"os"
	"path/filepath"

	"weather-forecaster/config"
	"weather-forecaster/di"
	"weather-forecaster/logging"
)

func main() {
	configPath := flag.String("config", filepath.Join(config.BaseDir(), config.CONFIG_FILE), "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.NewLogger(config.LOG_LEVEL, config.LOG_FORMAT, os.Stderr).Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	container := di.NewContainer(cfg, logger)

	if err := container.WeatherHttpServer.Start(); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
