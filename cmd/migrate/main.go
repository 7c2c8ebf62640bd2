package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"mmex-search/internal/config"
	"mmex-search/internal/database"

	_ "github.com/lib/pq"
)

func main() {
	steps := flag.Int("steps", 0, "number of migrations to roll back with down (0 = all)")
	migrations := flag.String("migrations", "db/migrations", "migrations directory")
	seeds := flag.String("seeds", "db/seeds", "seeds directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [flags] up|down|version|seed\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *steps, *migrations, *seeds); err != nil {
		log.Fatal(err)
	}
}

func run(command string, steps int, migrations, seeds string) error {
	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate only supports the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	runner := database.NewMigrationRunner(db).WithPaths(migrations, seeds).WithLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command {
	case "up":
		err = runner.Up()
	case "down":
		err = runner.Down(steps)
	case "seed":
		var report database.SeedReport
		report, err = runner.WithSeeds(true).LoadSeeds(ctx)
		if err == nil && len(report.Failed) > 0 {
			err = fmt.Errorf("seed files failed: %s", strings.Join(report.Failed, ", "))
		}
	case "version":
		var status database.MigrationStatus
		status, err = runner.Status()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", status.Version, status.Dirty)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return err
}
