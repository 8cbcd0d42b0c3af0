package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdevlin/squadup/go/internal/club"
	"github.com/mdevlin/squadup/go/internal/club/generator"
	"github.com/mdevlin/squadup/go/internal/dbconfig"
	"github.com/mdevlin/squadup/go/internal/models"
)

const demoUsers = 4

// Seeds a handful of onboarded demo users, each with a full squad, and lists
// a couple of players per team so the market is not empty on first run.
func main() {
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	src := generator.CryptoSource{}

	var inserted, skipped int
	for i := 1; i <= demoUsers; i++ {
		username := fmt.Sprintf("demo_%d", i)
		teamName := fmt.Sprintf("Demo FC %d", i)

		userID := uuid.New()
		cmdTag, err := pool.Exec(ctx, `
            INSERT INTO users (id, username, onboarding_step)
            VALUES ($1, $2, $3)
            ON CONFLICT (username) DO NOTHING
        `, userID, username, string(models.OnboardingStepReady))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", username, err)
			os.Exit(1)
		}
		if cmdTag.RowsAffected() == 0 {
			skipped++
			continue
		}

		teamID := uuid.New()
		if _, err := pool.Exec(ctx, `
            INSERT INTO teams (id, user_id, name, budget_cents)
            VALUES ($1, $2, $3, $4)
        `, teamID, userID, teamName, club.InitialBudgetCents); err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %s: %v\n", teamName, err)
			os.Exit(1)
		}

		squad := generator.NewSquad(src)
		playerIDs := make([]uuid.UUID, len(squad))
		for j, spec := range squad {
			playerIDs[j] = uuid.New()
			if _, err := pool.Exec(ctx, `
                INSERT INTO players (id, team_id, name, position, skill, tactic, physical)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
            `, playerIDs[j], teamID, spec.Name, string(spec.Position), spec.Skill, spec.Tactic, spec.Physical); err != nil {
				fmt.Fprintf(os.Stderr, "error inserting player %s: %v\n", spec.Name, err)
				os.Exit(1)
			}
		}

		// List two players per team at a random six-figure asking price
		for _, playerID := range playerIDs[:2] {
			price := int64(100_000 + src.IntN(400_000))
			if _, err := pool.Exec(ctx, `
                INSERT INTO transfer_listings (player_id, team_id, asking_price_cents)
                VALUES ($1, $2, $3)
            `, playerID, teamID, price); err != nil {
				fmt.Fprintf(os.Stderr, "error inserting listing for %s: %v\n", playerID, err)
				os.Exit(1)
			}
		}

		inserted++
	}

	fmt.Printf("Demo seed complete: %d users inserted, %d skipped\n", inserted, skipped)
}
