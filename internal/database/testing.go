package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SvyatElkind/race-report/internal/config"
)

// testConfigEnv points at a config file describing the test database.
// Tests that need PostgreSQL skip themselves when it is unset.
const testConfigEnv = "RACE_REPORT_TEST_CONFIG"

// SetupTestDB connects to the test database named by RACE_REPORT_TEST_CONFIG,
// or skips the calling test when no test database is configured.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	path := os.Getenv(testConfigEnv)
	if path == "" {
		t.Skipf("%s not set, skipping database test", testConfigEnv)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to ping test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the database connection cleanly
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	db.Close()
}
