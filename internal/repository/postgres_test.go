package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvyatElkind/race-report/internal/database"
	"github.com/SvyatElkind/race-report/internal/models"
)

// Exercises the PostgreSQL repositories against a real database. Skips
// unless RACE_REPORT_TEST_CONFIG names a config for a migrated test
// database.
func TestPostgresRepositories(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	ctx := context.Background()
	pool := db.GetPool()

	// Start from a clean slate; results references drivers and teams.
	_, err := pool.Exec(ctx, "TRUNCATE results, drivers, teams")
	require.NoError(t, err)

	repos, err := NewRepositories(db)
	require.NoError(t, err)

	require.NoError(t, repos.Team.CreateBatch(ctx, []models.Team{
		{ID: 1, Name: "FERRARI"},
		{ID: 2, Name: "MERCEDES"},
	}))
	require.NoError(t, repos.Driver.CreateBatch(ctx, []models.Driver{
		{ID: "SVF", Name: "Sebastian", Surname: "Vettel", TeamID: 1},
		{ID: "LHM", Name: "Lewis", Surname: "Hamilton", TeamID: 2},
	}))

	base := time.Date(2018, 5, 24, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Result.CreateBatch(ctx, []models.Result{
		{ID: 1, DriverID: "SVF", StartTime: base, EndTime: base.Add(64415 * time.Millisecond), LapTime: "1:04.415"},
		{ID: 2, DriverID: "LHM", StartTime: base, EndTime: base.Add(73907 * time.Millisecond), LapTime: "1:13.907"},
	}))

	count, err := repos.Driver.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	drivers, err := repos.Driver.ListOrderedByID(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "LHM", drivers[0].ID)
	assert.Equal(t, "SVF", drivers[1].ID)

	rows, err := repos.Result.JoinedReportRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Vettel", rows[0].Surname)
	assert.Equal(t, "1:04.415", rows[0].LapTime)

	detail, err := repos.Driver.GetDetail(ctx, "SVF")
	require.NoError(t, err)
	assert.Equal(t, "FERRARI", detail.Team)

	_, err = repos.Driver.GetDetail(ctx, "XXX")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
