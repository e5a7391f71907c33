package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

var sessionNow = time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

func sessionClock() time.Time { return sessionNow }

func testPool() []models.DiscoverableCreator {
	return []models.DiscoverableCreator{
		{ID: "cr-maya", Name: "Maya Lindqvist", MatchScore: 96},
		{ID: "cr-jordan", Name: "Jordan Avery", MatchScore: 91},
		{ID: "cr-priya", Name: "Priya Raman", MatchScore: 89},
	}
}

// selectSession returns a session already advanced to the select phase.
func selectSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithClock(sessionClock)}, opts...)
	s := NewSession(testPool(), opts...)
	s.CompleteMatching()
	require.Equal(t, PhaseSelect, s.Phase())
	return s
}

func TestNewSession(t *testing.T) {
	s := NewSession(testPool())

	assert.Equal(t, PhaseMatching, s.Phase())
	assert.Len(t, s.Pool(), 3)
	assert.Nil(t, s.MatchingRun())
	assert.Nil(t, s.Roster())
}

func TestSession_SelectionRequiresSelectPhase(t *testing.T) {
	s := NewSession(testPool())

	assert.ErrorIs(t, s.ToggleSelect("cr-maya"), ErrWrongPhase)
	assert.ErrorIs(t, s.SelectAll(), ErrWrongPhase)
	assert.ErrorIs(t, s.DeselectAll(), ErrWrongPhase)
	_, err := s.AdvanceToManage()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSession_ToggleSelect(t *testing.T) {
	s := selectSession(t)

	require.NoError(t, s.ToggleSelect("cr-priya"))
	require.NoError(t, s.ToggleSelect("cr-maya"))
	assert.True(t, s.IsSelected("cr-priya"))
	assert.True(t, s.IsSelected("cr-maya"))

	// Selection order is the order creators were picked, not pool order.
	selected := s.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "cr-priya", selected[0].ID)
	assert.Equal(t, "cr-maya", selected[1].ID)

	require.NoError(t, s.ToggleSelect("cr-priya"))
	assert.False(t, s.IsSelected("cr-priya"))
	assert.Len(t, s.Selected(), 1)
}

func TestSession_ToggleSelectUnknownID(t *testing.T) {
	s := selectSession(t)

	require.NoError(t, s.ToggleSelect("cr-nobody"))
	assert.Empty(t, s.Selected())
}

func TestSession_SelectAllAndDeselectAll(t *testing.T) {
	s := selectSession(t)
	require.NoError(t, s.ToggleSelect("cr-priya"))

	require.NoError(t, s.SelectAll())
	selected := s.Selected()
	require.Len(t, selected, 3)
	// The earlier pick keeps its position; the rest follow in pool order.
	assert.Equal(t, "cr-priya", selected[0].ID)
	assert.Equal(t, "cr-maya", selected[1].ID)
	assert.Equal(t, "cr-jordan", selected[2].ID)

	require.NoError(t, s.DeselectAll())
	assert.Empty(t, s.Selected())
}

func TestSession_CreatorDetail(t *testing.T) {
	s := selectSession(t)

	c, err := s.CreatorDetail("cr-jordan")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Avery", c.Name)
	assert.False(t, s.IsSelected("cr-jordan"), "viewing a profile selects nothing")

	_, err = s.CreatorDetail("cr-nobody")
	assert.ErrorIs(t, err, ErrCreatorNotFound)
}

func TestSession_AdvanceToManageRequiresSelection(t *testing.T) {
	s := selectSession(t)

	_, err := s.AdvanceToManage()
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, PhaseSelect, s.Phase())
}

func TestSession_AdvanceToManage(t *testing.T) {
	s := selectSession(t)
	require.NoError(t, s.ToggleSelect("cr-jordan"))
	require.NoError(t, s.ToggleSelect("cr-maya"))

	roster, err := s.AdvanceToManage()
	require.NoError(t, err)
	assert.Equal(t, PhaseManage, s.Phase())
	assert.Same(t, roster, s.Roster())

	creators := roster.Creators()
	require.Len(t, creators, 2)
	assert.Equal(t, "cr-jordan", creators[0].Creator.ID)
	assert.Equal(t, "cr-maya", creators[1].Creator.ID)
	for _, mc := range creators {
		assert.Equal(t, management.StatusPending, mc.InviteStatus)
	}
}

func TestSession_PhasesOnlyMoveForward(t *testing.T) {
	s := selectSession(t)
	require.NoError(t, s.ToggleSelect("cr-maya"))
	_, err := s.AdvanceToManage()
	require.NoError(t, err)

	// Matching cannot be re-entered once the session has moved on.
	s.CompleteMatching()
	assert.Equal(t, PhaseManage, s.Phase())
	assert.Nil(t, s.StartMatching(context.Background()))

	_, err = s.AdvanceToManage()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSession_MatchingAdvancesToSelect(t *testing.T) {
	s := NewSession(testPool(), WithMatchingConfig(fastMatchingConfig()))

	run := s.StartMatching(context.Background())
	require.NotNil(t, run)

	require.Eventually(t, func() bool {
		return s.Phase() == PhaseSelect
	}, 5*time.Second, 5*time.Millisecond)
	assert.True(t, run.Done())
}

func TestSession_CloseStopsMatching(t *testing.T) {
	cfg := fastMatchingConfig()
	cfg.TickInterval = time.Hour
	s := NewSession(testPool(), WithMatchingConfig(cfg))

	run := s.StartMatching(context.Background())
	require.NotNil(t, run)
	s.Close()

	assert.Equal(t, PhaseMatching, s.Phase())
	assert.False(t, run.Done())
	s.Close()
}

func TestSession_SeederRunsOnAdvance(t *testing.T) {
	s := selectSession(t, WithSeeder(DemoSeeder{Now: sessionClock}))
	require.NoError(t, s.SelectAll())

	roster, err := s.AdvanceToManage()
	require.NoError(t, err)

	creators := roster.Creators()
	require.NotNil(t, creators[0].Submission)
	assert.True(t, creators[0].Submission.Compliant())
	assert.Equal(t, management.StatusContentSubmitted, creators[0].InviteStatus)

	require.NotNil(t, creators[1].Submission)
	assert.False(t, creators[1].Submission.Compliant())
	assert.Len(t, creators[1].Submission.AIIssues, 2)

	assert.Nil(t, creators[2].Submission)
}

// Walking the whole flow with two creators: matching, selection, roster
// handoff, invites, then one creator through review to posted.
func TestSession_EndToEnd(t *testing.T) {
	s := selectSession(t)
	require.NoError(t, s.ToggleSelect("cr-maya"))
	require.NoError(t, s.ToggleSelect("cr-priya"))

	roster, err := s.AdvanceToManage()
	require.NoError(t, err)

	roster.InviteAll()
	wantDue := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	for _, mc := range roster.Creators() {
		assert.Equal(t, management.StatusInvited, mc.InviteStatus)
		assert.Equal(t, wantDue, mc.ContentDueDate)
	}

	require.NoError(t, roster.AttachSubmission("cr-maya", models.ContentSubmission{
		ID: "sub-1", ContentURL: "https://cdn.benable.example/p/1.jpg", SubmittedAt: sessionNow,
	}))
	require.NoError(t, roster.ApproveContent("cr-maya"))
	require.NoError(t, roster.MarkAsPosted("cr-maya"))

	maya, _ := roster.Get("cr-maya")
	priya, _ := roster.Get("cr-priya")
	assert.Equal(t, management.StatusPosted, maya.InviteStatus)
	assert.Equal(t, management.StatusInvited, priya.InviteStatus)

	groups := roster.Grouped()
	assert.Len(t, groups[management.BucketCompleted], 1)
	assert.Len(t, groups[management.BucketInProgress], 1)
}
