package endpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// TalentEndpoints holds all endpoints for the talent session service
type TalentEndpoints struct {
	StartSessionEndpoint    endpoint.Endpoint
	GetSessionEndpoint      endpoint.Endpoint
	UpdateSelectionEndpoint endpoint.Endpoint
	AdvanceSessionEndpoint  endpoint.Endpoint
	RosterActionEndpoint    endpoint.Endpoint
}

// MakeTalentEndpoints creates endpoints for the talent service
func MakeTalentEndpoints(s service.TalentService) TalentEndpoints {
	return TalentEndpoints{
		StartSessionEndpoint:    makeStartSessionEndpoint(s),
		GetSessionEndpoint:      makeGetSessionEndpoint(s),
		UpdateSelectionEndpoint: makeUpdateSelectionEndpoint(s),
		AdvanceSessionEndpoint:  makeAdvanceSessionEndpoint(s),
		RosterActionEndpoint:    makeRosterActionEndpoint(s),
	}
}

// StartSessionRequest represents the request to open a discovery session
type StartSessionRequest struct{}

// SessionResponse carries a session projection back to the client
type SessionResponse struct {
	Session service.SessionView `json:"session"`
	Err     error               `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r SessionResponse) Failed() error { return r.Err }

func makeStartSessionEndpoint(s service.TalentService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		view, err := s.StartSession(ctx)
		return SessionResponse{Session: view, Err: err}, nil
	}
}

// GetSessionRequest represents the request for a session snapshot
type GetSessionRequest struct {
	ID string
}

func makeGetSessionEndpoint(s service.TalentService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(GetSessionRequest)
		view, err := s.GetSession(ctx, req.ID)
		return SessionResponse{Session: view, Err: err}, nil
	}
}

// UpdateSelectionRequest represents a selection change in a session
type UpdateSelectionRequest struct {
	ID     string
	Update service.SelectionUpdate
}

func makeUpdateSelectionEndpoint(s service.TalentService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(UpdateSelectionRequest)
		view, err := s.UpdateSelection(ctx, req.ID, req.Update)
		return SessionResponse{Session: view, Err: err}, nil
	}
}

// AdvanceSessionRequest moves a session to its next phase
type AdvanceSessionRequest struct {
	ID string
}

func makeAdvanceSessionEndpoint(s service.TalentService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(AdvanceSessionRequest)
		view, err := s.AdvanceSession(ctx, req.ID)
		return SessionResponse{Session: view, Err: err}, nil
	}
}

// RosterActionRequest applies a management action to a session's roster
type RosterActionRequest struct {
	ID     string
	Action service.RosterAction
}

func makeRosterActionEndpoint(s service.TalentService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(RosterActionRequest)
		view, err := s.ApplyRosterAction(ctx, req.ID, req.Action)
		return SessionResponse{Session: view, Err: err}, nil
	}
}

// StartSession is a helper method to call the endpoint
func (e TalentEndpoints) StartSession(ctx context.Context) (service.SessionView, error) {
	response, err := e.StartSessionEndpoint(ctx, StartSessionRequest{})
	if err != nil {
		return service.SessionView{}, err
	}
	resp := response.(SessionResponse)
	return resp.Session, resp.Err
}
