package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"mmex-search/internal/config"
	"mmex-search/internal/database"
	"mmex-search/internal/repositories"
	"mmex-search/internal/services"
)

func main() {
	count := flag.Int("transactions", 500, "number of transactions to generate")
	payees := flag.Int("payees", 40, "number of payees to generate")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "generator seed")
	months := flag.Int("months", 12, "how many months back the register reaches")
	flag.Parse()

	if err := run(*count, *payees, *seed, *months); err != nil {
		log.Fatal(err)
	}
}

func run(count, payees int, seed uint64, months int) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, -months, 0)

	seeder := services.NewDemoSeeder(
		repositories.NewAccountRepository(db.DB),
		repositories.NewReferenceRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		services.NewRegisterGenerator(seed),
		logger,
	)

	summary, err := seeder.Seed(ctx, count, payees, from, to)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("Seed complete", "seed", seed, "transactions", summary.Transactions)
	return nil
}
