package middleware

import (
	"context"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/metrics"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// serviceMetricsMiddleware implements business metrics collection for
// PortalService.
type serviceMetricsMiddleware struct {
	metrics *metrics.Metrics
	next    service.PortalService
}

// NewServiceMetricsMiddleware creates a new service metrics middleware
func NewServiceMetricsMiddleware(metrics *metrics.Metrics) func(service.PortalService) service.PortalService {
	return func(next service.PortalService) service.PortalService {
		return &serviceMetricsMiddleware{
			metrics: metrics,
			next:    next,
		}
	}
}

// CreateCampaign implements service.PortalService with business metrics.
func (mw *serviceMetricsMiddleware) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error) {
	campaign, err := mw.next.CreateCampaign(ctx, draft)
	if err == nil {
		mw.metrics.RecordCampaignLaunch(string(campaign.Mode))
	}
	return campaign, err
}

// ListCampaigns implements service.PortalService.
func (mw *serviceMetricsMiddleware) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return mw.next.ListCampaigns(ctx)
}

// GetCampaign implements service.PortalService.
func (mw *serviceMetricsMiddleware) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	return mw.next.GetCampaign(ctx, id)
}

// SearchCreators implements service.PortalService.
func (mw *serviceMetricsMiddleware) SearchCreators(ctx context.Context, criteria service.CreatorSearchCriteria) ([]models.DiscoverableCreator, error) {
	return mw.next.SearchCreators(ctx, criteria)
}

// talentMetricsMiddleware implements business metrics collection for
// TalentService.
type talentMetricsMiddleware struct {
	metrics *metrics.Metrics
	next    service.TalentService
}

// NewTalentMetricsMiddleware creates a metrics middleware for the talent
// service.
func NewTalentMetricsMiddleware(metrics *metrics.Metrics) func(service.TalentService) service.TalentService {
	return func(next service.TalentService) service.TalentService {
		return &talentMetricsMiddleware{
			metrics: metrics,
			next:    next,
		}
	}
}

// StartSession implements service.TalentService with business metrics.
func (mw *talentMetricsMiddleware) StartSession(ctx context.Context) (service.SessionView, error) {
	view, err := mw.next.StartSession(ctx)
	if err == nil {
		mw.metrics.RecordTalentSession("started")
	}
	return view, err
}

// GetSession implements service.TalentService.
func (mw *talentMetricsMiddleware) GetSession(ctx context.Context, id string) (service.SessionView, error) {
	return mw.next.GetSession(ctx, id)
}

// UpdateSelection implements service.TalentService.
func (mw *talentMetricsMiddleware) UpdateSelection(ctx context.Context, id string, update service.SelectionUpdate) (service.SessionView, error) {
	return mw.next.UpdateSelection(ctx, id, update)
}

// AdvanceSession implements service.TalentService with business metrics.
func (mw *talentMetricsMiddleware) AdvanceSession(ctx context.Context, id string) (service.SessionView, error) {
	view, err := mw.next.AdvanceSession(ctx, id)
	if err == nil {
		mw.metrics.RecordTalentSession("advanced")
	}
	return view, err
}

// ApplyRosterAction implements service.TalentService with business metrics.
func (mw *talentMetricsMiddleware) ApplyRosterAction(ctx context.Context, id string, action service.RosterAction) (service.SessionView, error) {
	view, err := mw.next.ApplyRosterAction(ctx, id, action)
	outcome := "accepted"
	if err != nil {
		outcome = "rejected"
	}
	mw.metrics.RecordRosterAction(string(action.Action), outcome)
	return view, err
}

// CloseSession implements service.TalentService with business metrics.
func (mw *talentMetricsMiddleware) CloseSession(ctx context.Context, id string) error {
	err := mw.next.CloseSession(ctx, id)
	if err == nil {
		mw.metrics.RecordTalentSession("closed")
	}
	return err
}
