package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/jobs"
	"github.com/mdevlin/squadup/go/internal/jobs/worker"
	"github.com/mdevlin/squadup/go/internal/market"
	"github.com/mdevlin/squadup/go/internal/market/outbox"
	"github.com/mdevlin/squadup/go/internal/users"
	usersdb "github.com/mdevlin/squadup/go/internal/users/db"
)

type Services struct {
	Users  *users.App
	Club   *club.App
	Jobs   *jobs.App
	Market *market.App

	CreationWorker *worker.Worker
	OutboxWorker   *outbox.Worker
}

func setupServices(database *sql.DB, config *Config, publisher outbox.EventPublisher) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer

	// Club
	clubRepo := club.NewRepository(database)
	clubApp := club.NewApp(clubRepo, generator.CryptoSource{})

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)

	// Jobs
	jobsRepo := jobs.NewRepository(database)
	jobsApp := jobs.NewApp(jobsRepo, clubRepo, userRepo)

	userApp := users.NewApp(userRepo, clubRepo, jobsRepo)

	// Market
	marketRepo := market.NewRepository(database)
	marketApp := market.NewApp(marketRepo)

	// Workers
	creationWorker := worker.NewWorker(jobsRepo, clubApp, worker.Config{
		PollInterval: parseDuration(config.Workers.Creation.PollInterval, worker.DefaultConfig().PollInterval),
	}, clockwork.NewRealClock())

	outboxCfg := outbox.DefaultConfig()
	outboxCfg.PollInterval = parseDuration(config.Workers.Outbox.PollInterval, outboxCfg.PollInterval)
	if config.Workers.Outbox.BatchSize > 0 {
		outboxCfg.BatchSize = config.Workers.Outbox.BatchSize
	}
	outboxWorker := outbox.NewWorker(database, publisher, outboxCfg)

	return &Services{
		Users:          userApp,
		Club:           clubApp,
		Jobs:           jobsApp,
		Market:         marketApp,
		CreationWorker: creationWorker,
		OutboxWorker:   outboxWorker,
	}
}
