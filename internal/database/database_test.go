package database

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"mmex-search/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	d, err := dialector(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = dialector(&config.DatabaseConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		MaxIdleConns: 1,
	}}

	var logs bytes.Buffer
	db, err := Initialize(context.Background(), cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	defer db.Close()

	assert.Contains(t, logs.String(), `"failed_indexes":0`)

	assert.NoError(t, db.HealthCheck(context.Background()))
	for _, table := range []string{"accounts", "transactions", "split_transactions", "saved_searches"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestCreateIndexes_ReportsFailures(t *testing.T) {
	db := SetupTestDB(t)
	require.NoError(t, db.Migrator().DropTable("split_transactions"))

	var logs bytes.Buffer
	failed := db.CreateIndexes(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	assert.Equal(t, 2, failed)
	assert.Contains(t, logs.String(), "idx_split_transactions_category")
}
