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
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/dbconfig"
	"github.com/mdevlin/squadup/go/internal/jobs"
	"github.com/mdevlin/squadup/go/internal/jobs/worker"
)

// Runs the team creation worker as a standalone process.
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

	wCfg := worker.DefaultConfig()
	if iv := os.Getenv("POLL_INTERVAL"); iv != "" {
		if d, err := time.ParseDuration(iv); err == nil {
			wCfg.PollInterval = d
		}
	}

	jobsRepo := jobs.NewRepository(db)
	clubApp := club.NewApp(club.NewRepository(db), generator.CryptoSource{})
	w := worker.NewWorker(jobsRepo, clubApp, wCfg, clockwork.NewRealClock())

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start creation worker")
	}

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	if err := w.Stop(); err != nil {
		log.Error().Err(err).Msg("stop creation worker")
	}
	log.Info().Msg("graceful shutdown complete")
}
