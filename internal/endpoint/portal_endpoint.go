package endpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// PortalEndpoints holds all endpoints for the campaign portal service
type PortalEndpoints struct {
	ListCampaignsEndpoint  endpoint.Endpoint
	GetCampaignEndpoint    endpoint.Endpoint
	CreateCampaignEndpoint endpoint.Endpoint
	SearchCreatorsEndpoint endpoint.Endpoint
}

// MakePortalEndpoints creates endpoints for the portal service
func MakePortalEndpoints(s service.PortalService) PortalEndpoints {
	return PortalEndpoints{
		ListCampaignsEndpoint:  makeListCampaignsEndpoint(s),
		GetCampaignEndpoint:    makeGetCampaignEndpoint(s),
		CreateCampaignEndpoint: makeCreateCampaignEndpoint(s),
		SearchCreatorsEndpoint: makeSearchCreatorsEndpoint(s),
	}
}

// ListCampaignsRequest represents the request for listing campaigns
type ListCampaignsRequest struct{}

// ListCampaignsResponse represents the response for listing campaigns
type ListCampaignsResponse struct {
	Campaigns []models.CampaignSummary `json:"campaigns,omitempty"`
	Err       error                    `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r ListCampaignsResponse) Failed() error { return r.Err }

func makeListCampaignsEndpoint(s service.PortalService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		campaigns, err := s.ListCampaigns(ctx)
		summaries := make([]models.CampaignSummary, len(campaigns))
		for i := range campaigns {
			summaries[i] = campaigns[i].ToSummary()
		}
		return ListCampaignsResponse{
			Campaigns: summaries,
			Err:       err,
		}, nil
	}
}

// GetCampaignRequest represents the request for one campaign
type GetCampaignRequest struct {
	ID string
}

// GetCampaignResponse represents the response for one campaign
type GetCampaignResponse struct {
	Campaign models.Campaign `json:"campaign"`
	Err      error           `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r GetCampaignResponse) Failed() error { return r.Err }

func makeGetCampaignEndpoint(s service.PortalService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(GetCampaignRequest)
		campaign, err := s.GetCampaign(ctx, req.ID)
		return GetCampaignResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// CreateCampaignRequest carries the wizard's launch snapshot
type CreateCampaignRequest struct {
	Draft models.CampaignDraft
}

// CreateCampaignResponse represents the response for campaign creation
type CreateCampaignResponse struct {
	Campaign models.Campaign `json:"campaign"`
	Err      error           `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r CreateCampaignResponse) Failed() error { return r.Err }

func makeCreateCampaignEndpoint(s service.PortalService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(CreateCampaignRequest)
		campaign, err := s.CreateCampaign(ctx, req.Draft)
		return CreateCampaignResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// SearchCreatorsRequest represents the request for searching creators
type SearchCreatorsRequest struct {
	Criteria service.CreatorSearchCriteria
}

// SearchCreatorsResponse represents the response for searching creators
type SearchCreatorsResponse struct {
	Creators []models.DiscoverableCreator `json:"creators,omitempty"`
	Err      error                        `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r SearchCreatorsResponse) Failed() error { return r.Err }

func makeSearchCreatorsEndpoint(s service.PortalService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(SearchCreatorsRequest)
		creators, err := s.SearchCreators(ctx, req.Criteria)
		return SearchCreatorsResponse{
			Creators: creators,
			Err:      err,
		}, nil
	}
}

// ListCampaigns is a helper method to call the endpoint
func (e PortalEndpoints) ListCampaigns(ctx context.Context) ([]models.CampaignSummary, error) {
	response, err := e.ListCampaignsEndpoint(ctx, ListCampaignsRequest{})
	if err != nil {
		return nil, err
	}
	resp := response.(ListCampaignsResponse)
	return resp.Campaigns, resp.Err
}

// GetCampaign is a helper method to call the endpoint
func (e PortalEndpoints) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	response, err := e.GetCampaignEndpoint(ctx, GetCampaignRequest{ID: id})
	if err != nil {
		return models.Campaign{}, err
	}
	resp := response.(GetCampaignResponse)
	return resp.Campaign, resp.Err
}
