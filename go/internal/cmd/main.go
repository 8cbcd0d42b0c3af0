package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mdevlin/squadup/go/internal/market/outbox"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup database")
	}
	defer database.Close()

	// Outbox events go to NATS when configured, otherwise to the log
	var publisher outbox.EventPublisher = outbox.NewLogPublisher()
	if config.NATS.Enabled {
		nc, err := outbox.ConnectNATS(config.NATS.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer nc.Close()
		publisher = outbox.NewNATSPublisher(nc, config.NATS.SubjectPrefix)
	}

	services := setupServices(database, config, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := services.CreationWorker.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start creation worker")
	}
	if err := services.OutboxWorker.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start outbox worker")
	}

	server := setupServer()
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if err := services.CreationWorker.Stop(); err != nil {
		log.Error().Err(err).Msg("creation worker stop failed")
	}
	if err := services.OutboxWorker.Stop(); err != nil {
		log.Error().Err(err).Msg("outbox worker stop failed")
	}

	cancel()
	log.Info().Msg("shutdown complete")
}
