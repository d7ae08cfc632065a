package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SvyatElkind/race-report/internal/database"
	"github.com/SvyatElkind/race-report/internal/models"
)

const errScanDriver = "failed to scan driver: %w"

// PostgresDriverRepository implements DriverRepository for PostgreSQL
type PostgresDriverRepository struct {
	db *database.DB
}

// NewPostgresDriverRepository creates a new driver repository
func NewPostgresDriverRepository(db *database.DB) DriverRepository {
	return &PostgresDriverRepository{db: db}
}

// CreateBatch inserts all drivers in a single COPY
func (r *PostgresDriverRepository) CreateBatch(ctx context.Context, drivers []models.Driver) error {
	if len(drivers) == 0 {
		return nil
	}

	columns := []string{"id", "name", "surname", "team_id"}

	copyFromSource := make([][]interface{}, len(drivers))
	for i, d := range drivers {
		copyFromSource[i] = []interface{}{d.ID, d.Name, d.Surname, d.TeamID}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"drivers"}, columns, pgx.CopyFromRows(copyFromSource))
	if err != nil {
		return fmt.Errorf("failed to batch insert drivers: %w", err)
	}

	if count != int64(len(drivers)) {
		return fmt.Errorf("inserted %d drivers, expected %d", count, len(drivers))
	}

	return nil
}

// Count returns the number of stored drivers
func (r *PostgresDriverRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetPool().QueryRow(ctx, "SELECT COUNT(*) FROM drivers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	return count, nil
}

// ListOrderedByID retrieves all drivers ordered ascending by abbreviation code
func (r *PostgresDriverRepository) ListOrderedByID(ctx context.Context) ([]models.DriverRow, error) {
	// COLLATE "C" keeps the ordering byte-wise like the lap-time
	// queries, independent of the database locale.
	query := `
		SELECT id, name, surname
		FROM drivers
		ORDER BY id COLLATE "C" ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.DriverRow
	for rows.Next() {
		var d models.DriverRow
		if err := rows.Scan(&d.ID, &d.Name, &d.Surname); err != nil {
			return nil, fmt.Errorf(errScanDriver, err)
		}
		drivers = append(drivers, d)
	}

	return drivers, rows.Err()
}

// GetDetail retrieves a single driver joined with its team and result
func (r *PostgresDriverRepository) GetDetail(ctx context.Context, id string) (*models.DriverDetail, error) {
	// Ordered by lap_time for parity with the list report; with one
	// result per driver the ordering is inert.
	query := `
		SELECT d.id, d.name, d.surname, t.name AS team, r.lap_time
		FROM drivers d
		JOIN teams t ON t.id = d.team_id
		JOIN results r ON r.driver_id = d.id
		WHERE d.id = $1
		ORDER BY r.lap_time COLLATE "C" ASC
		LIMIT 1
	`

	detail := &models.DriverDetail{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.Name, &detail.Surname, &detail.Team, &detail.LapTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver detail: %w", err)
	}

	return detail, nil
}
