package cache

import (
	"sync"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// memoryCache is the in-process cache tier with per-entry TTL expiry.
type memoryCache struct {
	mu sync.RWMutex

	campaigns          []models.Campaign
	campaignsExpiresAt time.Time

	creatorPool          []models.DiscoverableCreator
	creatorPoolExpiresAt time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{}
}

func (mc *memoryCache) getCampaigns() ([]models.Campaign, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	if mc.campaigns == nil || time.Now().After(mc.campaignsExpiresAt) {
		return nil, false
	}
	return mc.campaigns, true
}

func (mc *memoryCache) setCampaigns(campaigns []models.Campaign, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.campaigns = campaigns
	mc.campaignsExpiresAt = time.Now().Add(ttl)
}

func (mc *memoryCache) getCreatorPool() ([]models.DiscoverableCreator, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	if mc.creatorPool == nil || time.Now().After(mc.creatorPoolExpiresAt) {
		return nil, false
	}
	return mc.creatorPool, true
}

func (mc *memoryCache) setCreatorPool(creators []models.DiscoverableCreator, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.creatorPool = creators
	mc.creatorPoolExpiresAt = time.Now().Add(ttl)
}

func (mc *memoryCache) clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.campaigns = nil
	mc.creatorPool = nil
}
