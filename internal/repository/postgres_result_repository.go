package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SvyatElkind/race-report/internal/database"
	"github.com/SvyatElkind/race-report/internal/models"
)

const errScanReportRow = "failed to scan report row: %w"

// PostgresResultRepository implements ResultRepository for PostgreSQL
type PostgresResultRepository struct {
	db *database.DB
}

// NewPostgresResultRepository creates a new result repository
func NewPostgresResultRepository(db *database.DB) ResultRepository {
	return &PostgresResultRepository{db: db}
}

// CreateBatch inserts all results in a single COPY
func (r *PostgresResultRepository) CreateBatch(ctx context.Context, results []models.Result) error {
	if len(results) == 0 {
		return nil
	}

	columns := []string{"id", "driver_id", "start_time", "end_time", "lap_time"}

	copyFromSource := make([][]interface{}, len(results))
	for i, res := range results {
		copyFromSource[i] = []interface{}{res.ID, res.DriverID, res.StartTime, res.EndTime, res.LapTime}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"results"}, columns, pgx.CopyFromRows(copyFromSource))
	if err != nil {
		return fmt.Errorf("failed to batch insert results: %w", err)
	}

	if count != int64(len(results)) {
		return fmt.Errorf("inserted %d results, expected %d", count, len(results))
	}

	return nil
}

// JoinedReportRows retrieves driver/team/result triples ordered by lap time
func (r *PostgresResultRepository) JoinedReportRows(ctx context.Context) ([]models.ReportRow, error) {
	// COLLATE "C" forces byte-wise comparison regardless of the
	// database locale. The ranking contract is string order on the
	// formatted lap time, not duration order.
	query := `
		SELECT d.name, d.surname, t.name AS team, res.lap_time
		FROM drivers d
		JOIN teams t ON t.id = d.team_id
		JOIN results res ON res.driver_id = d.id
		ORDER BY res.lap_time COLLATE "C" ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	var report []models.ReportRow
	for rows.Next() {
		var row models.ReportRow
		if err := rows.Scan(&row.Name, &row.Surname, &row.Team, &row.LapTime); err != nil {
			return nil, fmt.Errorf(errScanReportRow, err)
		}
		report = append(report, row)
	}

	return report, rows.Err()
}
