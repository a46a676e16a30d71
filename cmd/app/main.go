package main

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/helper"
	"hotelops/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title       Hotel Operations API
// @version     1.0
// @description Room status, bookings, ledger, night audit and housekeeping for hotel operations.
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
