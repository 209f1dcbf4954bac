package main

import (
	"fmt"
	"os"

	"fullsco_api/config"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
)

// initConfig loads the configuration; the logger is not ready yet so failures go to stderr
func initConfig() *config.Configuration {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// InitGlobal sets the process wide values
func InitGlobal(cfg *config.Configuration) {
	log := logger.WithModule("init")

	global.ServerConfig = cfg
	log.WithFields(map[string]any{
		"environment": cfg.Environment,
		"driver":      cfg.DatabaseDriver,
	}).Info("Initialized server config")

	global.InitValidator()
	log.Info("Initialized validator")
}
