package database

import (
	"fmt"
	"testing"

	"mmex-search/internal/config"
	"mmex-search/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every pooled connection to ":memory:" is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, name string) *models.Account {
	t.Helper()

	account := &models.Account{Name: name}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCategory(t *testing.T, db *DB, name string, subcategories ...string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	for _, sub := range subcategories {
		category.Subcategories = append(category.Subcategories, models.Subcategory{Name: sub})
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestPayee(t *testing.T, db *DB, name string) *models.Payee {
	t.Helper()

	payee := &models.Payee{Name: name}
	if err := db.Create(payee).Error; err != nil {
		t.Fatalf("failed to create test payee: %v", err)
	}

	return payee
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"split_transactions",
		"transactions",
		"saved_searches",
		"subcategories",
		"categories",
		"payees",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
