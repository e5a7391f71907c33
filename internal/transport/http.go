package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/discovery"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/draft"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/endpoint"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// NewHTTPHandler creates HTTP handlers for the portal and talent services
func NewHTTPHandler(portal endpoint.PortalEndpoints, talent endpoint.TalentEndpoints, logger log.Logger) http.Handler {
	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
	}

	listCampaignsHandler := httptransport.NewServer(
		portal.ListCampaignsEndpoint,
		decodeListCampaignsRequest,
		encodeListCampaignsResponse,
		options...,
	)
	getCampaignHandler := httptransport.NewServer(
		portal.GetCampaignEndpoint,
		decodeGetCampaignRequest,
		encodeGetCampaignResponse,
		options...,
	)
	createCampaignHandler := httptransport.NewServer(
		portal.CreateCampaignEndpoint,
		decodeCreateCampaignRequest,
		encodeCreateCampaignResponse,
		options...,
	)
	searchCreatorsHandler := httptransport.NewServer(
		portal.SearchCreatorsEndpoint,
		decodeSearchCreatorsRequest,
		encodeSearchCreatorsResponse,
		options...,
	)

	startSessionHandler := httptransport.NewServer(
		talent.StartSessionEndpoint,
		decodeStartSessionRequest,
		encodeSessionResponse,
		options...,
	)
	getSessionHandler := httptransport.NewServer(
		talent.GetSessionEndpoint,
		decodeGetSessionRequest,
		encodeSessionResponse,
		options...,
	)
	updateSelectionHandler := httptransport.NewServer(
		talent.UpdateSelectionEndpoint,
		decodeUpdateSelectionRequest,
		encodeSessionResponse,
		options...,
	)
	advanceSessionHandler := httptransport.NewServer(
		talent.AdvanceSessionEndpoint,
		decodeAdvanceSessionRequest,
		encodeSessionResponse,
		options...,
	)
	rosterActionHandler := httptransport.NewServer(
		talent.RosterActionEndpoint,
		decodeRosterActionRequest,
		encodeSessionResponse,
		options...,
	)

	r := mux.NewRouter()

	// Campaign dashboard and wizard launch
	r.Handle("/v1/campaigns", listCampaignsHandler).Methods("GET")
	r.Handle("/v1/campaigns", createCampaignHandler).Methods("POST")
	r.Handle("/v1/campaigns/{id}", getCampaignHandler).Methods("GET")

	// Creator directory search
	r.Handle("/v1/creators", searchCreatorsHandler).Methods("GET")

	// Find-talent sessions
	r.Handle("/v1/talent", startSessionHandler).Methods("POST")
	r.Handle("/v1/talent/{id}", getSessionHandler).Methods("GET")
	r.Handle("/v1/talent/{id}/selection", updateSelectionHandler).Methods("PUT")
	r.Handle("/v1/talent/{id}/advance", advanceSessionHandler).Methods("POST")
	r.Handle("/v1/talent/{id}/actions", rosterActionHandler).Methods("POST")

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods("GET")

	return r
}

// decodeListCampaignsRequest decodes HTTP request to ListCampaignsRequest
func decodeListCampaignsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return endpoint.ListCampaignsRequest{}, nil
}

// encodeListCampaignsResponse encodes ListCampaignsResponse to HTTP response
func encodeListCampaignsResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(endpoint.ListCampaignsResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp.Campaigns)
}

// decodeGetCampaignRequest decodes HTTP request to GetCampaignRequest
func decodeGetCampaignRequest(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	return endpoint.GetCampaignRequest{ID: vars["id"]}, nil
}

// encodeGetCampaignResponse encodes GetCampaignResponse to HTTP response
func encodeGetCampaignResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(endpoint.GetCampaignResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp.Campaign)
}

// decodeCreateCampaignRequest decodes the wizard's launch snapshot
func decodeCreateCampaignRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var draftBody models.CampaignDraft
	if err := json.NewDecoder(r.Body).Decode(&draftBody); err != nil {
		return nil, errors.New("invalid campaign draft body")
	}
	return endpoint.CreateCampaignRequest{Draft: draftBody}, nil
}

// encodeCreateCampaignResponse encodes CreateCampaignResponse to HTTP response
func encodeCreateCampaignResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(endpoint.CreateCampaignResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(resp.Campaign)
}

// decodeSearchCreatorsRequest decodes query filters to SearchCreatorsRequest
func decodeSearchCreatorsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	query := r.URL.Query()

	criteria := service.CreatorSearchCriteria{
		Category: query.Get("category"),
		Platform: models.Platform(query.Get("platform")),
	}
	if raw := query.Get("min_followers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid min_followers param")
		}
		criteria.MinFollowers = n
	}
	if raw := query.Get("min_match_score"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid min_match_score param")
		}
		criteria.MinMatchScore = n
	}

	return endpoint.SearchCreatorsRequest{Criteria: criteria}, nil
}

// encodeSearchCreatorsResponse encodes SearchCreatorsResponse to HTTP response
func encodeSearchCreatorsResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(endpoint.SearchCreatorsResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	if len(resp.Creators) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp.Creators)
}

// decodeStartSessionRequest decodes HTTP request to StartSessionRequest
func decodeStartSessionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return endpoint.StartSessionRequest{}, nil
}

// decodeGetSessionRequest decodes HTTP request to GetSessionRequest
func decodeGetSessionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	return endpoint.GetSessionRequest{ID: vars["id"]}, nil
}

// decodeUpdateSelectionRequest decodes a selection change body
func decodeUpdateSelectionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)

	var update service.SelectionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return nil, errors.New("invalid selection body")
	}
	return endpoint.UpdateSelectionRequest{ID: vars["id"], Update: update}, nil
}

// decodeAdvanceSessionRequest decodes HTTP request to AdvanceSessionRequest
func decodeAdvanceSessionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	return endpoint.AdvanceSessionRequest{ID: vars["id"]}, nil
}

// decodeRosterActionRequest decodes a roster action body
func decodeRosterActionRequest(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)

	var action service.RosterAction
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		return nil, errors.New("invalid action body")
	}
	return endpoint.RosterActionRequest{ID: vars["id"], Action: action}, nil
}

// encodeSessionResponse encodes SessionResponse to HTTP response
func encodeSessionResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(endpoint.SessionResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp.Session)
}

// encodeError encodes error to HTTP response
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))

	errorResponse := models.NewErrorResponse(err.Error())
	json.NewEncoder(w).Encode(errorResponse)
}

// statusFor maps domain errors to HTTP status codes. Unknown errors are
// treated as server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrCampaignNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, discovery.ErrCreatorNotFound),
		errors.Is(err, management.ErrCreatorNotFound):
		return http.StatusNotFound
	case errors.Is(err, discovery.ErrWrongPhase),
		errors.Is(err, management.ErrNotAwaitingPost),
		errors.Is(err, management.ErrNoSubmission),
		errors.Is(err, service.ErrNoRoster):
		return http.StatusConflict
	case errors.Is(err, draft.ErrModeDisabled),
		errors.Is(err, draft.ErrTitleRequired),
		errors.Is(err, draft.ErrNoGoalSelected),
		errors.Is(err, discovery.ErrNoSelection),
		errors.Is(err, management.ErrEmptyComment),
		errors.Is(err, management.ErrInvalidStatus),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrUnknownSelectionOp):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStorage):
		return http.StatusInternalServerError
	}

	// Request decoding failures
	switch err.Error() {
	case "invalid campaign draft body", "invalid selection body", "invalid action body",
		"invalid min_followers param", "invalid min_match_score param":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "brand-portal",
		"version": "1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
