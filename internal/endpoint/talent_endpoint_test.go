package endpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/discovery"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// MockTalentService is a mock implementation of service.TalentService
type MockTalentService struct {
	mock.Mock
}

func (m *MockTalentService) StartSession(ctx context.Context) (service.SessionView, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.SessionView), args.Error(1)
}

func (m *MockTalentService) GetSession(ctx context.Context, id string) (service.SessionView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.SessionView), args.Error(1)
}

func (m *MockTalentService) UpdateSelection(ctx context.Context, id string, update service.SelectionUpdate) (service.SessionView, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(service.SessionView), args.Error(1)
}

func (m *MockTalentService) AdvanceSession(ctx context.Context, id string) (service.SessionView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.SessionView), args.Error(1)
}

func (m *MockTalentService) ApplyRosterAction(ctx context.Context, id string, action service.RosterAction) (service.SessionView, error) {
	args := m.Called(ctx, id, action)
	return args.Get(0).(service.SessionView), args.Error(1)
}

func (m *MockTalentService) CloseSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMakeTalentEndpoints(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	assert.NotNil(t, endpoints)
	assert.NotNil(t, endpoints.StartSessionEndpoint)
	assert.NotNil(t, endpoints.GetSessionEndpoint)
	assert.NotNil(t, endpoints.UpdateSelectionEndpoint)
	assert.NotNil(t, endpoints.AdvanceSessionEndpoint)
	assert.NotNil(t, endpoints.RosterActionEndpoint)
}

func TestStartSessionEndpoint(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	view := service.SessionView{
		ID:    "sess-1",
		Phase: discovery.PhaseMatching,
		Pool: []models.CreatorCard{
			{ID: "cr-maya", Name: "Maya Lindqvist", Followers: "182.0K", MatchScore: 96},
		},
	}
	mockService.On("StartSession", mock.Anything).Return(view, nil)

	response, err := endpoints.StartSessionEndpoint(context.Background(), StartSessionRequest{})

	assert.NoError(t, err)
	assert.IsType(t, SessionResponse{}, response)

	sessionResponse := response.(SessionResponse)
	assert.Equal(t, view, sessionResponse.Session)
	assert.Nil(t, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestGetSessionEndpoint_NotFound(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	mockService.On("GetSession", mock.Anything, "sess-missing").
		Return(service.SessionView{}, service.ErrSessionNotFound)

	response, err := endpoints.GetSessionEndpoint(context.Background(), GetSessionRequest{ID: "sess-missing"})

	assert.NoError(t, err) // Endpoint itself doesn't return error, error is in response
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, service.ErrSessionNotFound, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestUpdateSelectionEndpoint(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	view := service.SessionView{
		ID:          "sess-1",
		Phase:       discovery.PhaseSelect,
		SelectedIDs: []string{"cr-maya"},
	}
	mockService.On("UpdateSelection", mock.Anything, "sess-1", mock.MatchedBy(func(u service.SelectionUpdate) bool {
		return u.Op == "toggle" && u.CreatorID == "cr-maya"
	})).Return(view, nil)

	request := UpdateSelectionRequest{
		ID:     "sess-1",
		Update: service.SelectionUpdate{Op: "toggle", CreatorID: "cr-maya"},
	}
	response, err := endpoints.UpdateSelectionEndpoint(context.Background(), request)

	assert.NoError(t, err)
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, []string{"cr-maya"}, sessionResponse.Session.SelectedIDs)
	assert.Nil(t, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestUpdateSelectionEndpoint_WrongPhase(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	mockService.On("UpdateSelection", mock.Anything, "sess-1", mock.Anything).
		Return(service.SessionView{}, discovery.ErrWrongPhase)

	request := UpdateSelectionRequest{ID: "sess-1", Update: service.SelectionUpdate{Op: "select_all"}}
	response, err := endpoints.UpdateSelectionEndpoint(context.Background(), request)

	assert.NoError(t, err)
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, discovery.ErrWrongPhase, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestAdvanceSessionEndpoint(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	view := service.SessionView{ID: "sess-1", Phase: discovery.PhaseManage}
	mockService.On("AdvanceSession", mock.Anything, "sess-1").Return(view, nil)

	response, err := endpoints.AdvanceSessionEndpoint(context.Background(), AdvanceSessionRequest{ID: "sess-1"})

	assert.NoError(t, err)
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, discovery.PhaseManage, sessionResponse.Session.Phase)
	assert.Nil(t, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestRosterActionEndpoint(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	view := service.SessionView{ID: "sess-1", Phase: discovery.PhaseManage}
	mockService.On("ApplyRosterAction", mock.Anything, "sess-1", mock.MatchedBy(func(a service.RosterAction) bool {
		return a.Action == service.ActionInvite && a.CreatorID == "cr-maya"
	})).Return(view, nil)

	request := RosterActionRequest{
		ID:     "sess-1",
		Action: service.RosterAction{Action: service.ActionInvite, CreatorID: "cr-maya"},
	}
	response, err := endpoints.RosterActionEndpoint(context.Background(), request)

	assert.NoError(t, err)
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, view, sessionResponse.Session)
	assert.Nil(t, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestRosterActionEndpoint_UnknownAction(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	mockService.On("ApplyRosterAction", mock.Anything, "sess-1", mock.Anything).
		Return(service.SessionView{}, service.ErrUnknownAction)

	request := RosterActionRequest{ID: "sess-1", Action: service.RosterAction{Action: "dance"}}
	response, err := endpoints.RosterActionEndpoint(context.Background(), request)

	assert.NoError(t, err)
	sessionResponse := response.(SessionResponse)
	assert.Equal(t, service.ErrUnknownAction, sessionResponse.Err)

	mockService.AssertExpectations(t)
}

func TestSessionResponse_Failed(t *testing.T) {
	responseError := errors.New("test error")

	assert.Equal(t, responseError, SessionResponse{Err: responseError}.Failed())
	assert.Nil(t, SessionResponse{}.Failed())
}

func TestTalentEndpoints_StartSessionHelper(t *testing.T) {
	mockService := &MockTalentService{}
	endpoints := MakeTalentEndpoints(mockService)

	view := service.SessionView{ID: "sess-1", Phase: discovery.PhaseMatching}
	mockService.On("StartSession", mock.Anything).Return(view, nil)

	got, err := endpoints.StartSession(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)

	mockService.AssertExpectations(t)
}
