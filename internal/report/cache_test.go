package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SvyatElkind/race-report/internal/models"
)

// countingProvider wraps a Provider and counts delegated calls.
type countingProvider struct {
	inner   Provider
	reports int
	drivers int
	singles int
}

func (p *countingProvider) GetReport(ctx context.Context, order string) ([]models.ReportRow, error) {
	p.reports++
	return p.inner.GetReport(ctx, order)
}

func (p *countingProvider) GetDrivers(ctx context.Context, order string) ([]models.DriverRow, error) {
	p.drivers++
	return p.inner.GetDrivers(ctx, order)
}

func (p *countingProvider) GetSingleDriver(ctx context.Context, driverID string) (*models.DriverDetail, error) {
	p.singles++
	return p.inner.GetSingleDriver(ctx, driverID)
}

func TestCachedServiceTransparent(t *testing.T) {
	ctx := context.Background()
	direct := NewService(seededRepos(t), testLogger())
	counting := &countingProvider{inner: direct}
	cached := NewCachedService(counting, time.Minute, testLogger())

	for _, order := range []string{"", OrderDesc} {
		want, err := direct.GetReport(ctx, order)
		require.NoError(t, err)
		got, err := cached.GetReport(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	want, err := direct.GetSingleDriver(ctx, "SVF")
	require.NoError(t, err)
	got, err := cached.GetSingleDriver(ctx, "SVF")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedServiceServesRepeatsFromCache(t *testing.T) {
	ctx := context.Background()
	counting := &countingProvider{inner: NewService(seededRepos(t), testLogger())}
	cached := NewCachedService(counting, time.Minute, testLogger())

	for i := 0; i < 3; i++ {
		_, err := cached.GetReport(ctx, "")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, counting.reports)

	// A different order is a different key.
	_, err := cached.GetReport(ctx, OrderDesc)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.reports)

	hits, misses, ratio := cached.Cache().Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(2), misses)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}

func TestCachedServiceSingleDriverKeyIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	counting := &countingProvider{inner: NewService(seededRepos(t), testLogger())}
	cached := NewCachedService(counting, time.Minute, testLogger())

	first, err := cached.GetSingleDriver(ctx, "bhs")
	require.NoError(t, err)
	second, err := cached.GetSingleDriver(ctx, "BHS")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.singles)
}

func TestCachedServiceDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	counting := &countingProvider{inner: NewService(seededRepos(t), testLogger())}
	cached := NewCachedService(counting, time.Minute, testLogger())

	for i := 0; i < 2; i++ {
		_, err := cached.GetSingleDriver(ctx, "XXX")
		assert.ErrorIs(t, err, models.ErrNotFound)
	}
	assert.Equal(t, 2, counting.singles)
	assert.Equal(t, 0, cached.Cache().ItemCount())
}
