package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mmex-search/internal/config"
	"mmex-search/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// dialector picks the gorm driver for the configured backend.
func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxConns := cfg.MaxConnections
	if cfg.Driver == config.DriverSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY.
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.Payee{},
		&models.Category{},
		&models.Subcategory{},
		&models.Transaction{},
		&models.SplitTransaction{},
		&models.SavedSearch{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the underlying connection pool.
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// searchIndexes back the predicate's date ordering, type and status filters
// and the split subqueries.
var searchIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_transactions_trans_date_id ON transactions(trans_date, id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_trans_code ON transactions(trans_code)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)",
	"CREATE INDEX IF NOT EXISTS idx_split_transactions_transaction_id ON split_transactions(transaction_id)",
	"CREATE INDEX IF NOT EXISTS idx_split_transactions_category ON split_transactions(category_id, subcategory_id)",
	"CREATE INDEX IF NOT EXISTS idx_accounts_status_favorite ON accounts(status, favorite)",
}

// CreateIndexes creates searchIndexes and returns how many failed. Failures
// are logged, search still works without them.
func (db *DB) CreateIndexes(ctx context.Context, logger *slog.Logger) int {
	failed := 0
	for _, stmt := range searchIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			logger.Warn("index creation failed", "statement", stmt, "error", err)
			failed++
		}
	}
	return failed
}

// Initialize connects, brings the schema up and creates the search indexes.
// SQLite is always auto-migrated. Postgres goes through the SQL migrations
// when AUTO_MIGRATE is set and falls back to auto-migration if they fail.
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(ctx, cfg, logger); err != nil {
		db.Close()
		return nil, err
	}

	failed := db.CreateIndexes(ctx, logger)
	logger.Info("database initialized", "driver", cfg.Database.Driver, "failed_indexes", failed)
	return db, nil
}

func (db *DB) migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database.Driver != config.DriverSQLite {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		err = MigrateOnStartup(ctx, sqlDB, cfg.Database.AutoMigrate, logger)
		if err == nil {
			return nil
		}
		logger.Warn("sql migrations failed, falling back to auto-migrate", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
