package cache

import (
	"context"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// CachedRepository wraps a campaign repository and creator directory
// with read-through caching.
type CachedRepository struct {
	campaigns service.CampaignRepository
	directory service.CreatorDirectory
	cache     Cache
	ttl       time.Duration
}

// NewCachedRepository creates a new cached repository.
func NewCachedRepository(campaigns service.CampaignRepository, directory service.CreatorDirectory, cache Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		campaigns: campaigns,
		directory: directory,
		cache:     cache,
		ttl:       ttl,
	}
}

var _ service.CampaignRepository = (*CachedRepository)(nil)
var _ service.CreatorDirectory = (*CachedRepository)(nil)

// ListCampaigns reads the campaign list through the cache.
func (cr *CachedRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := cr.cache.GetCampaigns(ctx)
	if err == nil {
		return campaigns, nil
	}

	campaigns, err = cr.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	// Populate the cache off the request path.
	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cr.cache.SetCampaigns(cacheCtx, campaigns, cr.ttl)
	}()

	return campaigns, nil
}

// GetCampaign serves a single campaign from the cached list when
// possible, falling back to storage.
func (cr *CachedRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error) {
	if campaigns, err := cr.cache.GetCampaigns(ctx); err == nil {
		for _, c := range campaigns {
			if c.ID == id {
				return c, true, nil
			}
		}
	}
	return cr.campaigns.GetCampaign(ctx, id)
}

// CreateCampaign writes through to storage and invalidates the cached
// campaign list so the new campaign shows up on the next read.
func (cr *CachedRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) error {
	if err := cr.campaigns.CreateCampaign(ctx, campaign); err != nil {
		return err
	}
	cr.cache.InvalidateAll(ctx)
	return nil
}

// ListCreators reads the creator pool through the cache. The pool is
// static candidate data, which makes it the ideal cache resident.
func (cr *CachedRepository) ListCreators(ctx context.Context) ([]models.DiscoverableCreator, error) {
	creators, err := cr.cache.GetCreatorPool(ctx)
	if err == nil {
		return creators, nil
	}

	creators, err = cr.directory.ListCreators(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cr.cache.SetCreatorPool(cacheCtx, creators, cr.ttl)
	}()

	return creators, nil
}
