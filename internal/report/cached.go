package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SvyatElkind/race-report/internal/metrics"
	"github.com/SvyatElkind/race-report/internal/models"
)

// CachedService decorates a Provider with TTL memoization keyed by
// canonical query strings. Lookup misses are not cached; only
// successful results are.
type CachedService struct {
	provider Provider
	cache    *ResultCache
	logger   *logrus.Logger
}

// NewCachedService creates a new cached report service
func NewCachedService(provider Provider, ttl time.Duration, logger *logrus.Logger) *CachedService {
	return &CachedService{
		provider: provider,
		cache:    NewResultCache(ttl),
		logger:   logger,
	}
}

// GetReport returns the ranked report, served from cache when possible
func (c *CachedService) GetReport(ctx context.Context, order string) ([]models.ReportRow, error) {
	key := fmt.Sprintf("report?order=%s", order)
	if cached, found := c.cache.Get(key); found {
		c.logger.WithField("cache_key", key).Debug("Cache hit")
		metrics.ReportCacheHits.Inc()
		return cached.([]models.ReportRow), nil
	}

	metrics.ReportCacheMisses.Inc()
	rows, err := c.provider.GetReport(ctx, order)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, rows)
	return rows, nil
}

// GetDrivers returns the driver list, served from cache when possible
func (c *CachedService) GetDrivers(ctx context.Context, order string) ([]models.DriverRow, error) {
	key := fmt.Sprintf("drivers?order=%s", order)
	if cached, found := c.cache.Get(key); found {
		c.logger.WithField("cache_key", key).Debug("Cache hit")
		metrics.ReportCacheHits.Inc()
		return cached.([]models.DriverRow), nil
	}

	metrics.ReportCacheMisses.Inc()
	rows, err := c.provider.GetDrivers(ctx, order)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, rows)
	return rows, nil
}

// GetSingleDriver returns one driver's detail, served from cache when
// possible. The key is upper-cased so case variants share an entry.
func (c *CachedService) GetSingleDriver(ctx context.Context, driverID string) (*models.DriverDetail, error) {
	key := fmt.Sprintf("driver?id=%s", strings.ToUpper(driverID))
	if cached, found := c.cache.Get(key); found {
		c.logger.WithField("cache_key", key).Debug("Cache hit")
		metrics.ReportCacheHits.Inc()
		return cached.(*models.DriverDetail), nil
	}

	metrics.ReportCacheMisses.Inc()
	detail, err := c.provider.GetSingleDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, detail)
	return detail, nil
}

// Cache exposes the underlying cache, mainly for stats endpoints and
// tests.
func (c *CachedService) Cache() *ResultCache {
	return c.cache
}
