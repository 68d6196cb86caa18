package memcache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

// OverlapCache is an in-process implementation of the overlap cache store,
// used for local runs and tests. Entries expire on the configured TTL; the
// DeleteExpired sweep is a no-op because go-cache janitors expired keys itself.
type OverlapCache struct {
	cache *gocache.Cache
}

var _ repository.OverlapCacheRepository = (*OverlapCache)(nil)

func NewOverlapCache(ttl time.Duration) *OverlapCache {
	return &OverlapCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func cacheKey(accountID, key string, periodStart, periodEnd time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		accountID,
		key,
		periodStart.Format(time.DateOnly),
		periodEnd.Format(time.DateOnly),
	)
}

func (c *OverlapCache) Get(accountID, key string, periodStart, periodEnd time.Time) (*domain.CachedOverlap, error) {
	v, ok := c.cache.Get(cacheKey(accountID, key, periodStart, periodEnd))
	if !ok {
		return nil, nil
	}

	entry, ok := v.(*domain.CachedOverlap)
	if !ok {
		return nil, nil
	}

	return entry, nil
}

func (c *OverlapCache) Upsert(entry *domain.CachedOverlap) error {
	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	c.cache.SetDefault(cacheKey(entry.AccountID, entry.Key, entry.PeriodStart, entry.PeriodEnd), entry)
	return nil
}

func (c *OverlapCache) DeleteExpired(_ time.Duration) (int64, error) {
	c.cache.DeleteExpired()
	return 0, nil
}
