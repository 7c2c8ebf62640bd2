package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
	defaultWaitAttempts   = 30
	defaultWaitInterval   = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the register schema under db/migrations with
// golang-migrate and can load the SQL fixtures under db/seeds.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	loadSeeds      bool
	waitAttempts   int
	waitInterval   time.Duration
	logger         *slog.Logger
}

// MigrationStatus is the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
}

// SeedReport lists seed files by outcome, in execution order
type SeedReport struct {
	Applied []string
	Failed  []string
}

func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		loadSeeds:      os.Getenv("SEED_DATABASE") == "true",
		waitAttempts:   defaultWaitAttempts,
		waitInterval:   defaultWaitInterval,
		logger:         slog.Default(),
	}
}

func (mr *MigrationRunner) WithPaths(migrations, seeds string) *MigrationRunner {
	mr.migrationsPath = migrations
	mr.seedsPath = seeds
	return mr
}

// WithSeeds overrides the SEED_DATABASE switch
func (mr *MigrationRunner) WithSeeds(enabled bool) *MigrationRunner {
	mr.loadSeeds = enabled
	return mr
}

func (mr *MigrationRunner) WithRetry(attempts int, interval time.Duration) *MigrationRunner {
	mr.waitAttempts = attempts
	mr.waitInterval = interval
	return mr
}

func (mr *MigrationRunner) WithLogger(logger *slog.Logger) *MigrationRunner {
	if logger != nil {
		mr.logger = logger
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out
// or ctx ends.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.waitAttempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			mr.logger.Info("database ready", "attempt", attempt)
			return nil
		}
		mr.logger.Warn("database not ready", "attempt", attempt, "max_attempts", mr.waitAttempts, "error", lastErr)

		if attempt == mr.waitAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.waitInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.waitAttempts, lastErr)
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); errors.Is(err, os.ErrNotExist) {
		return nil, ErrMigrationsNotFound
	}
	dir, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

// Up applies pending migrations. A dirty schema is forced back to its
// recorded version first. A missing migrations directory is skipped.
func (mr *MigrationRunner) Up() error {
	m, err := mr.open()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Warn("migrations directory missing, skipping", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		mr.logger.Warn("schema dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mr.logger.Info("schema up to date", "version", version)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	if newVersion, _, err := m.Version(); err == nil {
		mr.logger.Info("migrations applied", "from_version", version, "to_version", newVersion)
	}
	return nil
}

// Down reverts steps migrations, or all of them when steps <= 0
func (mr *MigrationRunner) Down(steps int) error {
	m, err := mr.open()
	if err != nil {
		return err
	}

	if steps <= 0 {
		err = m.Down()
	} else {
		err = m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	return nil
}

func (mr *MigrationRunner) Status() (MigrationStatus, error) {
	m, err := mr.open()
	if err != nil {
		return MigrationStatus{}, err
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, err
	}
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

// LoadSeeds runs every *.sql file in the seeds directory in name order. A
// file that fails to execute is reported and skipped, an unreadable one
// aborts the run.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) (SeedReport, error) {
	var report SeedReport
	if !mr.loadSeeds {
		mr.logger.Info("seed loading disabled")
		return report, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return report, fmt.Errorf("list seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return report, fmt.Errorf("read seed file %s: %w", file, err)
		}

		name := filepath.Base(file)
		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			mr.logger.Warn("seed file failed", "file", name, "error", err)
			report.Failed = append(report.Failed, name)
			continue
		}
		report.Applied = append(report.Applied, name)
	}

	mr.logger.Info("seed files loaded", "applied", len(report.Applied), "failed", len(report.Failed))
	return report, nil
}

// MigrateOnStartup waits for the database, applies migrations and loads
// seeds when SEED_DATABASE is set. It does nothing unless enabled.
func MigrateOnStartup(ctx context.Context, db *sql.DB, enabled bool, logger *slog.Logger) error {
	if !enabled {
		return nil
	}

	runner := NewMigrationRunner(db).WithLogger(logger)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("wait for database: %w", err)
	}
	if err := runner.Up(); err != nil {
		return err
	}
	if _, err := runner.LoadSeeds(ctx); err != nil {
		runner.logger.Warn("seed loading failed", "error", err)
	}
	return nil
}
