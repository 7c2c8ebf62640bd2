package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRunner(t *testing.T) (*MigrationRunner, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var logs bytes.Buffer
	runner := NewMigrationRunner(db).
		WithRetry(3, time.Millisecond).
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	return runner, mock, &logs
}

func writeSeed(t *testing.T, dir, name, sql string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644))
}

func TestNewMigrationRunner_Defaults(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.Equal(t, defaultMigrationsPath, runner.migrationsPath)
	assert.Equal(t, defaultSeedsPath, runner.seedsPath)
	assert.Equal(t, defaultWaitAttempts, runner.waitAttempts)
	assert.True(t, runner.loadSeeds)
}

func TestWaitForDatabase(t *testing.T) {
	tests := []struct {
		name    string
		pings   []error
		wantErr string
	}{
		{name: "ready at once", pings: []error{nil}},
		{name: "ready on third ping", pings: []error{errors.New("refused"), errors.New("refused"), nil}},
		{
			name:    "never ready",
			pings:   []error{errors.New("refused"), errors.New("refused"), errors.New("the database system is starting up")},
			wantErr: "database not ready after 3 attempts: the database system is starting up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, mock, _ := newMockRunner(t)
			for _, pingErr := range tt.pings {
				mock.ExpectPing().WillReturnError(pingErr)
			}

			err := runner.WaitForDatabase(context.Background())

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitForDatabase_StopsWithContext(t *testing.T) {
	runner, mock, _ := newMockRunner(t)
	runner.WithRetry(5, time.Hour)
	mock.ExpectPing().WillReturnError(errors.New("refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, runner.WaitForDatabase(ctx), context.DeadlineExceeded)
}

func TestMissingMigrationsDirectory(t *testing.T) {
	runner, _, logs := newMockRunner(t)
	runner.WithPaths(filepath.Join(t.TempDir(), "absent"), defaultSeedsPath)

	assert.NoError(t, runner.Up())
	assert.Contains(t, logs.String(), "migrations directory missing")
	assert.ErrorIs(t, runner.Down(1), ErrMigrationsNotFound)

	_, err := runner.Status()
	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestLoadSeeds_Disabled(t *testing.T) {
	runner, mock, _ := newMockRunner(t)
	dir := t.TempDir()
	writeSeed(t, dir, "001_accounts.sql", "INSERT INTO accounts (name) VALUES ('Cash');")
	runner.WithPaths(t.TempDir(), dir).WithSeeds(false)

	report, err := runner.LoadSeeds(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_MissingOrEmptyDirectory(t *testing.T) {
	for _, dir := range []string{filepath.Join(t.TempDir(), "absent"), t.TempDir()} {
		runner, _, _ := newMockRunner(t)
		runner.WithPaths(t.TempDir(), dir).WithSeeds(true)

		report, err := runner.LoadSeeds(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, SeedReport{}, report)
	}
}

func TestLoadSeeds_ReportsFailuresAndContinues(t *testing.T) {
	t.Setenv("SEED_DATABASE", "false")
	runner, mock, _ := newMockRunner(t)

	dir := t.TempDir()
	writeSeed(t, dir, "001_payees.sql", "INSERT INTO payees (id, name) VALUES (1, 'Electric Company') ON CONFLICT (name) DO NOTHING;")
	writeSeed(t, dir, "002_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
	writeSeed(t, dir, "003_accounts.sql", "INSERT INTO accounts (name) VALUES ('Wallet');")
	writeSeed(t, dir, "notes.txt", "not sql")

	mock.ExpectExec("INSERT INTO payees").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 1))

	report, err := runner.WithPaths(t.TempDir(), dir).WithSeeds(true).LoadSeeds(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"001_payees.sql", "003_accounts.sql"}, report.Applied)
	assert.Equal(t, []string{"002_bad.sql"}, report.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_UnreadableFileAborts(t *testing.T) {
	runner, _, _ := newMockRunner(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_dir.sql"), 0o755))

	_, err := runner.WithPaths(t.TempDir(), dir).WithSeeds(true).LoadSeeds(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed file")
}

func TestMigrateOnStartup(t *testing.T) {
	t.Run("disabled does not touch the database", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, MigrateOnStartup(context.Background(), db, false, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable database", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectPing().WillReturnError(errors.New("refused"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = MigrateOnStartup(ctx, db, true, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wait for database")
	})
}
