package main

import (
	"drivent/config"
	"drivent/di"
	"drivent/helper"
	"drivent/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Drivent API
// @version 1.0
// @description Event attendee hotel booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
