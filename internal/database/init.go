package database

import (
	"context"
	"fmt"

	"github.com/SvyatElkind/race-report/internal/config"
)

// Initialize creates a database connection pool and verifies the report
// schema is in place.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	// The migrations create teams, drivers and results. A missing teams
	// table means migrations were never run; failing here beats a query
	// error on the first request.
	var exists bool
	err = db.pool.QueryRow(ctx,
		"SELECT to_regclass('teams') IS NOT NULL").Scan(&exists)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if !exists {
		db.Close()
		return nil, fmt.Errorf(
			"report schema not found: run migrations first (migrate -path migrations -database <dsn> up)")
	}

	return db, nil
}
