package management

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

var testNow = time.Date(2026, time.August, 20, 15, 45, 30, 0, time.UTC)

func testClock() time.Time { return testNow }

func testCreators() []models.DiscoverableCreator {
	return []models.DiscoverableCreator{
		{ID: "cr-maya", Name: "Maya Lindqvist", Handle: "@mayaglow", Followers: 182_000},
		{ID: "cr-priya", Name: "Priya Raman", Handle: "@priyaskin", Followers: 96_500},
	}
}

func testSubmission(issues ...string) models.ContentSubmission {
	return models.ContentSubmission{
		ID:            "sub-1",
		ContentURL:    "https://cdn.benable.example/p/1.jpg",
		Format:        models.FormatInstagramPost,
		SubmittedAt:   testNow,
		AIReviewScore: 72,
		AIIssues:      issues,
	}
}

func TestNewRoster(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	require.Len(t, r.Creators(), 2)
	wantDue := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	for _, mc := range r.Creators() {
		assert.Equal(t, StatusPending, mc.InviteStatus)
		assert.Equal(t, models.CompensationGifted, mc.CompensationType)
		// Due dates are date-only: one week out, truncated to UTC midnight.
		assert.Equal(t, wantDue, mc.ContentDueDate)
		assert.Nil(t, mc.Submission)
	}
}

func TestRoster_PreservesSelectionOrder(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	assert.Equal(t, "cr-maya", r.Creators()[0].Creator.ID)
	assert.Equal(t, "cr-priya", r.Creators()[1].Creator.ID)
}

func TestRoster_InviteOne(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	require.NoError(t, r.InviteOne("cr-maya"))
	maya, _ := r.Get("cr-maya")
	priya, _ := r.Get("cr-priya")
	assert.Equal(t, StatusInvited, maya.InviteStatus)
	assert.Equal(t, StatusPending, priya.InviteStatus)

	// Inviting an already-invited creator changes nothing.
	require.NoError(t, r.InviteOne("cr-maya"))
	assert.Equal(t, StatusInvited, maya.InviteStatus)

	assert.ErrorIs(t, r.InviteOne("cr-nobody"), ErrCreatorNotFound)
}

func TestRoster_InviteAll(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.ChangeStatus("cr-priya", StatusPosted))

	r.InviteAll()

	maya, _ := r.Get("cr-maya")
	priya, _ := r.Get("cr-priya")
	assert.Equal(t, StatusInvited, maya.InviteStatus)
	// Only pending creators are invited; others keep their status.
	assert.Equal(t, StatusPosted, priya.InviteStatus)
}

func TestRoster_InviteAllBackfillsDueDate(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	maya, _ := r.Get("cr-maya")
	maya.ContentDueDate = time.Time{}

	r.InviteAll()

	wantDue := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantDue, maya.ContentDueDate)
}

func TestRoster_SendReminder(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	// A reminder to a pending creator does nothing.
	require.NoError(t, r.SendReminder("cr-maya"))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusPending, maya.InviteStatus)

	require.NoError(t, r.InviteOne("cr-maya"))
	require.NoError(t, r.SendReminder("cr-maya"))
	assert.Equal(t, StatusAccepted, maya.InviteStatus)
}

func TestRoster_ChangeStatus(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	// The brand can jump a creator to any canonical status directly.
	require.NoError(t, r.ChangeStatus("cr-maya", StatusAwaitingPost))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusAwaitingPost, maya.InviteStatus)

	require.NoError(t, r.ChangeStatus("cr-maya", StatusPending))
	assert.Equal(t, StatusPending, maya.InviteStatus)

	assert.ErrorIs(t, r.ChangeStatus("cr-maya", "ghosted"), ErrInvalidStatus)
	assert.Equal(t, StatusPending, maya.InviteStatus)
}

func TestRoster_AttachSubmission(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))

	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusContentSubmitted, maya.InviteStatus)
	require.NotNil(t, maya.Submission)
	assert.Equal(t, models.ReviewPending, maya.Submission.BrandReviewStatus)
	assert.True(t, maya.Submission.Compliant())
}

func TestRoster_ApproveContent(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	assert.ErrorIs(t, r.ApproveContent("cr-maya"), ErrNoSubmission)

	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))
	require.NoError(t, r.ApproveContent("cr-maya"))

	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusAwaitingPost, maya.InviteStatus)
	assert.Equal(t, models.ReviewApproved, maya.Submission.BrandReviewStatus)
}

func TestRoster_RequestRevision(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission("missing disclosure")))

	require.NoError(t, r.RequestRevision("cr-maya", "Please add the #ad disclosure."))

	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusRevisionRequested, maya.InviteStatus)
	assert.Equal(t, models.ReviewRevisionRequested, maya.Submission.BrandReviewStatus)
	require.Len(t, maya.Submission.BrandComments, 1)
	assert.Equal(t, "Please add the #ad disclosure.", maya.Submission.BrandComments[0].Text)
	assert.Equal(t, BrandAuthor, maya.Submission.BrandComments[0].From)
	assert.Equal(t, testNow, maya.Submission.BrandComments[0].At)
}

func TestRoster_RequestRevisionBlankComment(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))

	err := r.RequestRevision("cr-maya", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	// A rejected request leaves both the status and the thread untouched.
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusContentSubmitted, maya.InviteStatus)
	assert.Equal(t, models.ReviewPending, maya.Submission.BrandReviewStatus)
	assert.Empty(t, maya.Submission.BrandComments)
}

func TestRoster_RevisionLoop(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission("missing tag")))
	require.NoError(t, r.RequestRevision("cr-maya", "Tag us please."))

	// The creator resubmits and review starts over.
	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusContentSubmitted, maya.InviteStatus)

	require.NoError(t, r.RequestRevision("cr-maya", "One more thing."))
	assert.Equal(t, StatusRevisionRequested, maya.InviteStatus)
}

func TestRoster_MarkAsPosted(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	assert.ErrorIs(t, r.MarkAsPosted("cr-maya"), ErrNotAwaitingPost)

	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))
	require.NoError(t, r.ApproveContent("cr-maya"))
	require.NoError(t, r.MarkAsPosted("cr-maya"))

	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusPosted, maya.InviteStatus)
}

func TestRoster_SendKudos(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.ChangeStatus("cr-maya", StatusPosted))

	require.NoError(t, r.SendKudos("cr-maya"))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, StatusPosted, maya.InviteStatus)

	assert.ErrorIs(t, r.SendKudos("cr-nobody"), ErrCreatorNotFound)
}

func TestRoster_UpdateCompensationType(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	require.NoError(t, r.UpdateCompensationType("cr-maya", models.CompensationPaid))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, models.CompensationPaid, maya.CompensationType)
}

func TestRoster_UpdateDueDateKeepsDateOnly(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	require.NoError(t, r.UpdateDueDate("cr-maya", time.Date(2026, time.September, 3, 18, 22, 9, 0, time.UTC)))
	maya, _ := r.Get("cr-maya")
	assert.Equal(t, time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC), maya.ContentDueDate)
}

func TestRoster_Grouped(t *testing.T) {
	r := NewRoster(testCreators(), testClock)
	require.NoError(t, r.InviteOne("cr-maya"))

	groups := r.Grouped()
	assert.Len(t, groups[BucketInProgress], 1)
	assert.Len(t, groups[BucketNeedsAction], 1)

	// Groupings are recomputed from status on each call.
	require.NoError(t, r.ChangeStatus("cr-maya", StatusPosted))
	groups = r.Grouped()
	assert.Len(t, groups[BucketCompleted], 1)
	assert.Empty(t, groups[BucketInProgress])
}

// The two-creator walkthrough: select, invite everyone, then drive one
// creator through review while the other stays put.
func TestRoster_TwoCreatorLifecycle(t *testing.T) {
	r := NewRoster(testCreators(), testClock)

	r.InviteAll()
	wantDue := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	for _, mc := range r.Creators() {
		assert.Equal(t, StatusInvited, mc.InviteStatus)
		assert.Equal(t, wantDue, mc.ContentDueDate)
	}

	require.NoError(t, r.ChangeStatus("cr-maya", StatusWaitingForContent))

	maya, _ := r.Get("cr-maya")
	priya, _ := r.Get("cr-priya")
	assert.Equal(t, StatusWaitingForContent, maya.InviteStatus)
	assert.Equal(t, StatusInvited, priya.InviteStatus)

	require.NoError(t, r.AttachSubmission("cr-maya", testSubmission()))
	require.NoError(t, r.ApproveContent("cr-maya"))
	require.NoError(t, r.MarkAsPosted("cr-maya"))

	assert.Equal(t, StatusPosted, maya.InviteStatus)
	assert.Equal(t, StatusInvited, priya.InviteStatus)
}
