package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/centuriesmutual/activity-ledger/internal/config"
	"github.com/centuriesmutual/activity-ledger/internal/models"
)

// testConfig returns the policy configuration the tests run with.
func testConfig() *config.Config {
	return &config.Config{
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		RetentionDays:     90,
		DailyMessageLimit: 10,
		DefaultShareTTL:   24 * time.Hour,
		MaxFileSizeMB:     100,
		LockWaitTimeout:   5 * time.Second,
		SweepInterval:     time.Hour,
	}
}

// setupLedger creates a Ledger over an in-memory SQLite database. The pool
// is pinned to one connection so every session sees the same memory
// database.
func setupLedger(t *testing.T) *Ledger {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Client{},
		&models.Message{},
		&models.Document{},
		&models.AuditEvent{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return New(db, testConfig())
}

// mustCreateClient registers a client or fails the test.
func mustCreateClient(t *testing.T, l *Ledger, clientID string) *models.Client {
	t.Helper()
	client, err := l.CreateClient(t.Context(), CreateClientInput{
		ClientID:  clientID,
		Email:     clientID + "@example.com",
		FirstName: "Test",
		LastName:  "Client",
	}, Meta{})
	if err != nil {
		t.Fatalf("Failed to create client %s: %v", clientID, err)
	}
	return client
}
