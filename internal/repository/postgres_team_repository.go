package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SvyatElkind/race-report/internal/database"
	"github.com/SvyatElkind/race-report/internal/models"
)

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	db *database.DB
}

// NewPostgresTeamRepository creates a new team repository
func NewPostgresTeamRepository(db *database.DB) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

// CreateBatch inserts all teams in a single COPY
func (r *PostgresTeamRepository) CreateBatch(ctx context.Context, teams []models.Team) error {
	if len(teams) == 0 {
		return nil
	}

	columns := []string{"id", "name"}

	copyFromSource := make([][]interface{}, len(teams))
	for i, t := range teams {
		copyFromSource[i] = []interface{}{t.ID, t.Name}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"teams"}, columns, pgx.CopyFromRows(copyFromSource))
	if err != nil {
		return fmt.Errorf("failed to batch insert teams: %w", err)
	}

	if count != int64(len(teams)) {
		return fmt.Errorf("inserted %d teams, expected %d", count, len(teams))
	}

	return nil
}
