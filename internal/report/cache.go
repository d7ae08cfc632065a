package report

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/SvyatElkind/race-report/internal/metrics"
)

// ResultCache memoizes query results keyed by canonical request
// parameters. The store never changes after ingestion, so entries are
// invalidated only by TTL expiry or process restart; the cache must
// never alter what a query would have returned.
type ResultCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewResultCache creates a new result cache
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Get retrieves a cached value
func (rc *ResultCache) Get(key string) (interface{}, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	value, found := rc.cache.Get(key)
	if found {
		rc.hitCount++
	} else {
		rc.missCount++
	}
	rc.updateMetrics()

	return value, found
}

// Set stores a value
func (rc *ResultCache) Set(key string, value interface{}) {
	rc.cache.Set(key, value, rc.ttl)
}

// Clear flushes the cache and resets the counters
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
	rc.hitCount = 0
	rc.missCount = 0
}

// Stats returns hit and miss counts with the hit ratio
func (rc *ResultCache) Stats() (hits, misses uint64, ratio float64) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	hits = rc.hitCount
	misses = rc.missCount
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of cached entries
func (rc *ResultCache) ItemCount() int {
	return rc.cache.ItemCount()
}

func (rc *ResultCache) updateMetrics() {
	total := rc.hitCount + rc.missCount
	if total == 0 {
		return
	}
	metrics.ReportCacheHitRatio.Set(float64(rc.hitCount) / float64(total))
}
