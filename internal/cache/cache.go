package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// ErrCacheMiss is returned when a key is absent from every cache tier.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines the interface for portal caching. The portal caches the
// two read-heavy datasets: the campaign dashboard list and the
// discoverable-creator pool.
type Cache interface {
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)
	SetCampaigns(ctx context.Context, campaigns []models.Campaign, ttl time.Duration) error

	GetCreatorPool(ctx context.Context) ([]models.DiscoverableCreator, error)
	SetCreatorPool(ctx context.Context, creators []models.DiscoverableCreator, ttl time.Duration) error

	InvalidateAll(ctx context.Context) error
	GetStats() Stats
}

// Stats holds cache performance statistics.
type Stats struct {
	Hits        int64
	Misses      int64
	Errors      int64
	HitRatio    float64
	TotalOps    int64
	LastUpdated time.Time
}

// Config holds cache configuration.
type Config struct {
	DefaultTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EnableMemory  bool
	EnableRedis   bool
}

// HybridCache layers an in-process cache over Redis: memory answers hot
// reads, Redis shares state between instances.
type HybridCache struct {
	memoryCache *memoryCache
	redisCache  *redisCache
	config      Config

	mu    sync.RWMutex
	stats Stats
}

// NewHybridCache creates a new hybrid cache with the enabled tiers.
func NewHybridCache(config Config) (*HybridCache, error) {
	hc := &HybridCache{
		config: config,
		stats:  Stats{LastUpdated: time.Now()},
	}

	if config.EnableMemory {
		hc.memoryCache = newMemoryCache()
	}

	if config.EnableRedis {
		var err error
		hc.redisCache, err = newRedisCache(config)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
	}

	return hc, nil
}

// GetCampaigns retrieves campaigns from cache (memory first, then Redis).
func (hc *HybridCache) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	if hc.memoryCache != nil {
		if campaigns, found := hc.memoryCache.getCampaigns(); found {
			hc.recordHit()
			return campaigns, nil
		}
	}

	if hc.redisCache != nil {
		campaigns, err := hc.redisCache.getCampaigns(ctx)
		if err == nil {
			hc.recordHit()
			if hc.memoryCache != nil {
				hc.memoryCache.setCampaigns(campaigns, hc.config.DefaultTTL)
			}
			return campaigns, nil
		}
	}

	hc.recordMiss()
	return nil, ErrCacheMiss
}

// SetCampaigns stores campaigns in every enabled tier.
func (hc *HybridCache) SetCampaigns(ctx context.Context, campaigns []models.Campaign, ttl time.Duration) error {
	if hc.memoryCache != nil {
		hc.memoryCache.setCampaigns(campaigns, ttl)
	}
	if hc.redisCache != nil {
		if err := hc.redisCache.setCampaigns(ctx, campaigns, ttl); err != nil {
			hc.recordError()
			return err
		}
	}
	return nil
}

// GetCreatorPool retrieves the creator pool from cache.
func (hc *HybridCache) GetCreatorPool(ctx context.Context) ([]models.DiscoverableCreator, error) {
	if hc.memoryCache != nil {
		if creators, found := hc.memoryCache.getCreatorPool(); found {
			hc.recordHit()
			return creators, nil
		}
	}

	if hc.redisCache != nil {
		creators, err := hc.redisCache.getCreatorPool(ctx)
		if err == nil {
			hc.recordHit()
			if hc.memoryCache != nil {
				hc.memoryCache.setCreatorPool(creators, hc.config.DefaultTTL)
			}
			return creators, nil
		}
	}

	hc.recordMiss()
	return nil, ErrCacheMiss
}

// SetCreatorPool stores the creator pool in every enabled tier.
func (hc *HybridCache) SetCreatorPool(ctx context.Context, creators []models.DiscoverableCreator, ttl time.Duration) error {
	if hc.memoryCache != nil {
		hc.memoryCache.setCreatorPool(creators, ttl)
	}
	if hc.redisCache != nil {
		if err := hc.redisCache.setCreatorPool(ctx, creators, ttl); err != nil {
			hc.recordError()
			return err
		}
	}
	return nil
}

// InvalidateAll clears every tier, e.g. after a campaign launch.
func (hc *HybridCache) InvalidateAll(ctx context.Context) error {
	if hc.memoryCache != nil {
		hc.memoryCache.clear()
	}
	if hc.redisCache != nil {
		if err := hc.redisCache.clear(ctx); err != nil {
			hc.recordError()
			return err
		}
	}
	return nil
}

// GetStats returns a snapshot of cache performance counters.
func (hc *HybridCache) GetStats() Stats {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	stats := hc.stats
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(stats.Hits) / float64(stats.TotalOps)
	}
	return stats
}

func (hc *HybridCache) recordHit() {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.stats.Hits++
	hc.stats.TotalOps++
	hc.stats.LastUpdated = time.Now()
}

func (hc *HybridCache) recordMiss() {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.stats.Misses++
	hc.stats.TotalOps++
	hc.stats.LastUpdated = time.Now()
}

func (hc *HybridCache) recordError() {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.stats.Errors++
	hc.stats.TotalOps++
	hc.stats.LastUpdated = time.Now()
}
