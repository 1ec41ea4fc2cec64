package main

import (
	"os"

	"github.com/yigit/electa/internal/pkg/logger"
	"github.com/yigit/electa/internal/server"
)

// @title Electa API
// @version 1.0
// @description API for Electa, the personalized elective-course recommender

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// NewServer orchestrates config loading, the one-time catalog
	// build, dependency wiring and route setup.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
