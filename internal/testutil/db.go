// internal/testutil/db.go
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/infrastructure/database/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an isolated in-memory database with the full schema
// migrated. Every call gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	for _, model := range postgres.Models() {
		if err := db.AutoMigrate(model); err != nil {
			t.Fatalf("failed to migrate model %T: %v", model, err)
		}
	}

	return db
}

// StringPtr returns a pointer to the given string, for optional fields in
// test fixtures
func StringPtr(s string) *string {
	return &s
}

// NewTestConfig returns a configuration with sane test defaults, skipping the
// environment entirely
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "StockMaster Backend",
			Version:     "test",
			Environment: "test",
		},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-for-validation",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost:         4,
			RateLimitPerMinute: 1000,
		},
		Inventory: config.InventoryConfig{
			AbundanceMinQuantity: 6,
			LowStockThreshold:    10,
			DashboardCacheTTL:    30 * time.Second,
		},
		Logging: config.LoggingConfig{
			Level:  "error",
			Format: "text",
		},
	}
}
