package repository

import (
	"context"

	"github.com/SvyatElkind/race-report/internal/models"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	CreateBatch(ctx context.Context, teams []models.Team) error
}

// DriverRepository defines the interface for driver data access
type DriverRepository interface {
	CreateBatch(ctx context.Context, drivers []models.Driver) error
	Count(ctx context.Context) (int, error)
	// ListOrderedByID returns all drivers ordered ascending by their
	// abbreviation code.
	ListOrderedByID(ctx context.Context) ([]models.DriverRow, error)
	// GetDetail returns a driver joined with its team and result,
	// ordered by lap_time so the fastest result wins if a driver ever
	// had more than one. The id must already be upper-cased. Returns
	// models.ErrNotFound when no row matches.
	GetDetail(ctx context.Context, id string) (*models.DriverDetail, error)
}

// ResultRepository defines the interface for result data access
type ResultRepository interface {
	CreateBatch(ctx context.Context, results []models.Result) error
	// JoinedReportRows returns all driver/team/result triples ordered
	// ascending by the lap_time string. The ordering is byte-wise
	// string comparison, matching how the stored lap times were always
	// ranked. Place is left for the caller to assign.
	JoinedReportRows(ctx context.Context) ([]models.ReportRow, error)
}
