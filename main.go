package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/bccpune/crickclub/config"
	_ "github.com/bccpune/crickclub/docs"
	"github.com/bccpune/crickclub/internal/fees"
	"github.com/bccpune/crickclub/internal/live"
	"github.com/bccpune/crickclub/internal/match"
	"github.com/bccpune/crickclub/internal/player"
	"github.com/bccpune/crickclub/routes"
)

// @title Cricket Club API
// @version 1.0
// @description Club management server: player registry, match scheduling, ball-by-ball live scoring and fee tracking.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{},
		&match.Match{},
		&fees.Withdrawal{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}
	log.Info().Msg("auto-migrate successful")

	hub := live.NewHub()
	clock := clockwork.NewRealClock()
	r := routes.SetupRoutes(config.DB, cfg, hub, clock)

	log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("starting server")
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
