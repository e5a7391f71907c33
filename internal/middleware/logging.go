package middleware

import (
	"context"
	"time"

	"github.com/go-kit/log"

	reqcontext "github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/context"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// loggingMiddleware implements logging middleware for PortalService
type loggingMiddleware struct {
	logger log.Logger
	next   service.PortalService
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger log.Logger) func(service.PortalService) service.PortalService {
	return func(next service.PortalService) service.PortalService {
		return &loggingMiddleware{
			logger: logger,
			next:   next,
		}
	}
}

// CreateCampaign implements service.PortalService with request logging.
func (mw *loggingMiddleware) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (campaign models.Campaign, err error) {
	defer func(begin time.Time) {
		mw.log(ctx, err,
			"method", "CreateCampaign",
			"title", draft.Title,
			"mode", draft.Mode,
			"campaign_id", campaign.ID,
			"took", time.Since(begin),
		)
	}(time.Now())

	return mw.next.CreateCampaign(ctx, draft)
}

// ListCampaigns implements service.PortalService with request logging.
func (mw *loggingMiddleware) ListCampaigns(ctx context.Context) (campaigns []models.Campaign, err error) {
	defer func(begin time.Time) {
		mw.log(ctx, err,
			"method", "ListCampaigns",
			"campaigns_count", len(campaigns),
			"took", time.Since(begin),
		)
	}(time.Now())

	return mw.next.ListCampaigns(ctx)
}

// GetCampaign implements service.PortalService with request logging.
func (mw *loggingMiddleware) GetCampaign(ctx context.Context, id string) (campaign models.Campaign, err error) {
	defer func(begin time.Time) {
		mw.log(ctx, err,
			"method", "GetCampaign",
			"campaign_id", id,
			"took", time.Since(begin),
		)
	}(time.Now())

	return mw.next.GetCampaign(ctx, id)
}

// SearchCreators implements service.PortalService with request logging.
func (mw *loggingMiddleware) SearchCreators(ctx context.Context, criteria service.CreatorSearchCriteria) (creators []models.DiscoverableCreator, err error) {
	defer func(begin time.Time) {
		mw.log(ctx, err,
			"method", "SearchCreators",
			"category", criteria.Category,
			"platform", criteria.Platform,
			"creators_count", len(creators),
			"took", time.Since(begin),
		)
	}(time.Now())

	return mw.next.SearchCreators(ctx, criteria)
}

func (mw *loggingMiddleware) log(ctx context.Context, err error, fields ...interface{}) {
	logFields := make([]interface{}, 0, len(fields)+6)
	logFields = append(logFields, "request_id", reqcontext.GetRequestID(ctx))
	logFields = append(logFields, fields...)

	if remoteAddr := reqcontext.GetRemoteAddr(ctx); remoteAddr != "" {
		logFields = append(logFields, "remote_addr", remoteAddr)
	}
	if err != nil {
		logFields = append(logFields, "error", err.Error(), "success", false)
	} else {
		logFields = append(logFields, "success", true)
	}

	mw.logger.Log(logFields...)
}
