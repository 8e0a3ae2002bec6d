// Package main is the entry point for the quote-service application.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/litoflex/quote-service/config"
	"github.com/litoflex/quote-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
