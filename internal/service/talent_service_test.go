package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/discovery"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

func talentPool() []models.DiscoverableCreator {
	return []models.DiscoverableCreator{
		{ID: "cr-maya", Name: "Maya Lindqvist", Followers: 182_000, MatchScore: 96},
		{ID: "cr-priya", Name: "Priya Raman", Followers: 96_500, MatchScore: 89},
	}
}

// newTestTalentService builds a talent service whose matching animation
// finishes almost immediately.
func newTestTalentService(t *testing.T) TalentService {
	t.Helper()

	mockDirectory := &MockCreatorDirectory{}
	mockDirectory.On("ListCreators", mock.Anything).Return(talentPool(), nil)

	cfg := discovery.DefaultMatchingConfig()
	cfg.TickInterval = time.Millisecond
	cfg.CompletionDelay = time.Millisecond

	return NewTalentService(mockDirectory, discovery.WithMatchingConfig(cfg))
}

// startSelectSession starts a session and waits for matching to finish.
func startSelectSession(t *testing.T, svc TalentService) SessionView {
	t.Helper()
	ctx := context.Background()

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, err := svc.GetSession(ctx, view.ID)
		return err == nil && v.Phase == discovery.PhaseSelect
	}, 5*time.Second, 5*time.Millisecond)

	view, err = svc.GetSession(ctx, view.ID)
	require.NoError(t, err)
	return view
}

func TestTalentService_StartSession(t *testing.T) {
	svc := newTestTalentService(t)

	view, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, discovery.PhaseMatching, view.Phase)
	assert.Len(t, view.Pool, 2)
	assert.Equal(t, "182.0K", view.Pool[0].Followers)

	require.NoError(t, svc.CloseSession(context.Background(), view.ID))
}

func TestTalentService_GetSession_Unknown(t *testing.T) {
	svc := newTestTalentService(t)

	_, err := svc.GetSession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTalentService_UpdateSelection(t *testing.T) {
	svc := newTestTalentService(t)
	view := startSelectSession(t, svc)
	ctx := context.Background()

	view, err := svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "toggle", CreatorID: "cr-priya"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cr-priya"}, view.SelectedIDs)

	view, err = svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "select_all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cr-priya", "cr-maya"}, view.SelectedIDs)

	view, err = svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "deselect_all"})
	require.NoError(t, err)
	assert.Empty(t, view.SelectedIDs)

	_, err = svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "invert"})
	assert.ErrorIs(t, err, ErrUnknownSelectionOp)

	require.NoError(t, svc.CloseSession(ctx, view.ID))
}

func TestTalentService_AdvanceSession(t *testing.T) {
	svc := newTestTalentService(t)
	view := startSelectSession(t, svc)
	ctx := context.Background()

	_, err := svc.AdvanceSession(ctx, view.ID)
	assert.ErrorIs(t, err, discovery.ErrNoSelection)

	_, err = svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "select_all"})
	require.NoError(t, err)

	view, err = svc.AdvanceSession(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, discovery.PhaseManage, view.Phase)
	assert.Len(t, view.Roster, 2)
	assert.Len(t, view.Grouped[management.BucketNeedsAction], 2)

	require.NoError(t, svc.CloseSession(ctx, view.ID))
}

func TestTalentService_ApplyRosterAction(t *testing.T) {
	svc := newTestTalentService(t)
	view := startSelectSession(t, svc)
	ctx := context.Background()

	// Roster actions need the management phase.
	_, err := svc.ApplyRosterAction(ctx, view.ID, RosterAction{Action: ActionInviteAll})
	assert.ErrorIs(t, err, ErrNoRoster)

	_, err = svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "select_all"})
	require.NoError(t, err)
	_, err = svc.AdvanceSession(ctx, view.ID)
	require.NoError(t, err)

	view, err = svc.ApplyRosterAction(ctx, view.ID, RosterAction{Action: ActionInviteAll})
	require.NoError(t, err)
	for _, mc := range view.Roster {
		assert.Equal(t, management.StatusInvited, mc.InviteStatus)
	}

	view, err = svc.ApplyRosterAction(ctx, view.ID, RosterAction{
		Action:    ActionChangeStatus,
		CreatorID: "cr-maya",
		Status:    management.StatusWaitingForContent,
	})
	require.NoError(t, err)
	assert.Equal(t, management.StatusWaitingForContent, view.Roster[0].InviteStatus)
	assert.Equal(t, management.StatusInvited, view.Roster[1].InviteStatus)

	_, err = svc.ApplyRosterAction(ctx, view.ID, RosterAction{Action: "dance"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = svc.ApplyRosterAction(ctx, view.ID, RosterAction{
		Action:    ActionMarkAsPosted,
		CreatorID: "cr-priya",
	})
	assert.ErrorIs(t, err, management.ErrNotAwaitingPost)

	require.NoError(t, svc.CloseSession(ctx, view.ID))
}

func TestTalentService_RevisionDrafts(t *testing.T) {
	mockDirectory := &MockCreatorDirectory{}
	mockDirectory.On("ListCreators", mock.Anything).Return(talentPool(), nil)

	cfg := discovery.DefaultMatchingConfig()
	cfg.TickInterval = time.Millisecond
	cfg.CompletionDelay = time.Millisecond

	svc := NewTalentService(mockDirectory,
		discovery.WithMatchingConfig(cfg),
		discovery.WithSeeder(discovery.DemoSeeder{}),
	)

	view := startSelectSession(t, svc)
	ctx := context.Background()

	_, err := svc.UpdateSelection(ctx, view.ID, SelectionUpdate{Op: "select_all"})
	require.NoError(t, err)
	view, err = svc.AdvanceSession(ctx, view.ID)
	require.NoError(t, err)

	// The second seeded submission is flagged, so it gets a pre-drafted
	// revision message; the compliant first one does not.
	require.Contains(t, view.RevisionDraft, "cr-priya")
	assert.Contains(t, view.RevisionDraft["cr-priya"], "Hi Priya!")
	assert.NotContains(t, view.RevisionDraft, "cr-maya")

	require.NoError(t, svc.CloseSession(ctx, view.ID))
}

func TestTalentService_CloseSession(t *testing.T) {
	svc := newTestTalentService(t)
	ctx := context.Background()

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CloseSession(ctx, view.ID))

	_, err = svc.GetSession(ctx, view.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.CloseSession(ctx, view.ID), ErrSessionNotFound)
}
