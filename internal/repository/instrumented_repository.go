package repository

import (
	"context"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/metrics"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// InstrumentedRepository wraps a repository and directory with metrics
// collection.
type InstrumentedRepository struct {
	campaigns service.CampaignRepository
	directory service.CreatorDirectory
	metrics   *metrics.Metrics
}

// NewInstrumentedRepository creates a new instrumented repository.
func NewInstrumentedRepository(campaigns service.CampaignRepository, directory service.CreatorDirectory, m *metrics.Metrics) *InstrumentedRepository {
	return &InstrumentedRepository{
		campaigns: campaigns,
		directory: directory,
		metrics:   m,
	}
}

var _ service.CampaignRepository = (*InstrumentedRepository)(nil)
var _ service.CreatorDirectory = (*InstrumentedRepository)(nil)

// ListCampaigns implements service.CampaignRepository with metrics.
func (r *InstrumentedRepository) ListCampaigns(ctx context.Context) (campaigns []models.Campaign, err error) {
	defer func() {
		r.metrics.RecordStorageQuery("select", "campaigns")
		if err != nil {
			r.metrics.RecordStorageError("select", "query_error")
		}
	}()

	campaigns, err = r.campaigns.ListCampaigns(ctx)
	return
}

// GetCampaign implements service.CampaignRepository with metrics.
func (r *InstrumentedRepository) GetCampaign(ctx context.Context, id string) (campaign models.Campaign, found bool, err error) {
	defer func() {
		r.metrics.RecordStorageQuery("select", "campaigns")
		if err != nil {
			r.metrics.RecordStorageError("select", "query_error")
		}
	}()

	campaign, found, err = r.campaigns.GetCampaign(ctx, id)
	return
}

// CreateCampaign implements service.CampaignRepository with metrics.
func (r *InstrumentedRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (err error) {
	defer func() {
		r.metrics.RecordStorageQuery("insert", "campaigns")
		if err != nil {
			r.metrics.RecordStorageError("insert", "insert_error")
		}
	}()

	err = r.campaigns.CreateCampaign(ctx, campaign)
	return
}

// ListCreators implements service.CreatorDirectory with metrics.
func (r *InstrumentedRepository) ListCreators(ctx context.Context) (creators []models.DiscoverableCreator, err error) {
	defer func() {
		r.metrics.RecordStorageQuery("select", "discoverable_creators")
		if err != nil {
			r.metrics.RecordStorageError("select", "query_error")
		}
	}()

	creators, err = r.directory.ListCreators(ctx)
	return
}
