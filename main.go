package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rental-api/confs"
	"rental-api/db"
	"rental-api/logger"
	"rental-api/server"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	log := logger.New(os.Stdout, "info", "json")
	if cfg != nil {
		log = logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	// connect to database
	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run server
	if err := server.NewServer(cfg, database, log).Start(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
