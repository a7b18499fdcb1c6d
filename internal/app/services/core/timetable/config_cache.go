package timetable

import (
	"context"
	"sync/atomic"
	"time"

	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
)

type cachedConfig struct {
	config    *models.CollegeConfig
	fetchedAt time.Time
}

// ConfigCacheCell is a single-entry, time-bounded cache over the config
// singleton. Reads race-free via an atomic pointer; a lapsed or empty
// cell refetches and every concurrent caller may refetch independently,
// which is acceptable for one tiny document.
type ConfigCacheCell struct {
	repository contracts.CollegeConfigRepository
	ttl        time.Duration
	now        func() time.Time
	cell       atomic.Pointer[cachedConfig]
}

func NewConfigCacheCell(repository contracts.CollegeConfigRepository, ttl time.Duration, now func() time.Time) *ConfigCacheCell {
	if now == nil {
		now = time.Now
	}
	return &ConfigCacheCell{
		repository: repository,
		ttl:        ttl,
		now:        now,
	}
}

func (c *ConfigCacheCell) Get(ctx context.Context) (*models.CollegeConfig, error) {
	if entry := c.cell.Load(); entry != nil && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.config, nil
	}

	config, err := c.repository.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	// An unconfigured singleton (nil, nil) is cached too: the resolver
	// treats it as all-holiday and hammering the store would not
	// change that.
	c.cell.Store(&cachedConfig{config: config, fetchedAt: c.now()})
	return config, nil
}

func (c *ConfigCacheCell) Invalidate() {
	c.cell.Store(nil)
}
