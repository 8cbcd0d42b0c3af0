package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mdevlin/squadup/go/internal/dbconfig"
	"github.com/mdevlin/squadup/go/internal/market/outbox"
)

// Runs the market outbox worker as a standalone process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := dbconfig.NewConfigFromEnv()
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}
	nc, err := outbox.ConnectNATS(natsURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to NATS")
	}
	defer nc.Close()

	subjectPrefix := os.Getenv("OUTBOX_SUBJECT_PREFIX")
	if subjectPrefix == "" {
		subjectPrefix = "squadup.market"
	}
	publisher := outbox.NewNATSPublisher(nc, subjectPrefix)

	wCfg := outbox.DefaultConfig()
	if iv := os.Getenv("POLL_INTERVAL"); iv != "" {
		if d, err := time.ParseDuration(iv); err == nil {
			wCfg.PollInterval = d
		}
	}

	w := outbox.NewWorker(db, publisher, wCfg)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start outbox worker")
	}

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	if err := w.Stop(); err != nil {
		log.Error().Err(err).Msg("stop outbox worker")
	}
	log.Info().Msg("graceful shutdown complete")
}
