package management

import (
	"errors"
	"strings"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// DefaultContentLeadTime is how far out the content due date defaults
// when a creator joins the roster or gets invited without one.
const DefaultContentLeadTime = 7 * 24 * time.Hour

// BrandAuthor is the author tag recorded on brand review comments.
const BrandAuthor = "brand"

var (
	// ErrCreatorNotFound is returned for an unknown roster creator ID.
	ErrCreatorNotFound = errors.New("creator not on roster")
	// ErrNoSubmission is returned when a review action targets a creator
	// without a content submission. The UI simply does not offer the
	// action in that case.
	ErrNoSubmission = errors.New("creator has no content submission")
	// ErrEmptyComment rejects revision requests with blank comment text.
	ErrEmptyComment = errors.New("revision comment is required")
	// ErrInvalidStatus rejects status values outside the canonical list.
	ErrInvalidStatus = errors.New("unknown invite status")
	// ErrNotAwaitingPost is returned when marking content posted for a
	// creator that is not awaiting a post.
	ErrNotAwaitingPost = errors.New("creator is not awaiting post")
)

// ManagedCreator wraps a selected discoverable creator with the
// campaign-management state the brand drives. The embedded profile is
// never mutated; only the management fields change.
type ManagedCreator struct {
	Creator          models.DiscoverableCreator `json:"creator"`
	InviteStatus     InviteStatus               `json:"invite_status"`
	CompensationType models.CompensationType    `json:"compensation_type"`
	// ContentDueDate is date-only: always midnight UTC.
	ContentDueDate time.Time                 `json:"content_due_date,omitempty"`
	Submission     *models.ContentSubmission `json:"submission,omitempty"`
}

// Roster is the ordered set of creators selected for a campaign, keyed
// by creator ID. It is owned by one find-talent session and does not
// survive a restart.
type Roster struct {
	creators []*ManagedCreator
	byID     map[string]*ManagedCreator
	now      func() time.Time
}

// NewRoster builds a roster from the selected creators in selection
// order. Every creator starts pending, gifted, with content due in
// DefaultContentLeadTime. A nil now falls back to time.Now.
func NewRoster(selected []models.DiscoverableCreator, now func() time.Time) *Roster {
	if now == nil {
		now = time.Now
	}
	r := &Roster{
		byID: make(map[string]*ManagedCreator, len(selected)),
		now:  now,
	}
	due := dateOnly(now().Add(DefaultContentLeadTime))
	for _, c := range selected {
		mc := &ManagedCreator{
			Creator:          c,
			InviteStatus:     StatusPending,
			CompensationType: models.CompensationGifted,
			ContentDueDate:   due,
		}
		r.creators = append(r.creators, mc)
		r.byID[c.ID] = mc
	}
	return r
}

// dateOnly truncates a time to its UTC date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Creators returns the roster in selection order.
func (r *Roster) Creators() []*ManagedCreator { return r.creators }

// Get returns the managed creator with the given ID.
func (r *Roster) Get(id string) (*ManagedCreator, error) {
	mc, ok := r.byID[id]
	if !ok {
		return nil, ErrCreatorNotFound
	}
	return mc, nil
}

// InviteOne sends the invite for a single pending creator.
func (r *Roster) InviteOne(id string) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if mc.InviteStatus == StatusPending {
		mc.InviteStatus = StatusInvited
	}
	return nil
}

// InviteAll invites every creator still pending, back-filling the
// content due date for any creator that has none set.
func (r *Roster) InviteAll() {
	due := dateOnly(r.now().Add(DefaultContentLeadTime))
	for _, mc := range r.creators {
		if mc.InviteStatus != StatusPending {
			continue
		}
		mc.InviteStatus = StatusInvited
		if mc.ContentDueDate.IsZero() {
			mc.ContentDueDate = due
		}
	}
}

// SendReminder nudges an invited creator. In this prototype the reminder
// doubles as the creator's response and moves them straight to accepted;
// a production system would instead wait for an acceptance event from
// the messaging service.
func (r *Roster) SendReminder(id string) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if mc.InviteStatus == StatusInvited {
		mc.InviteStatus = StatusAccepted
	}
	return nil
}

// ChangeStatus jumps a creator directly to any status in the canonical
// flow. This is a deliberate escape hatch: the brand can override the
// lifecycle rather than only advancing it one step at a time.
func (r *Roster) ChangeStatus(id string, status InviteStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	mc.InviteStatus = status
	return nil
}

// AttachSubmission records a creator's content submission and moves them
// to content_submitted. Submissions arrive from the content pipeline with
// the external AI review already attached.
func (r *Roster) AttachSubmission(id string, submission models.ContentSubmission) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if submission.BrandReviewStatus == "" {
		submission.BrandReviewStatus = models.ReviewPending
	}
	mc.Submission = &submission
	mc.InviteStatus = StatusContentSubmitted
	return nil
}

// ApproveContent approves a creator's submission and moves them to
// awaiting_post. Requires a submission to exist.
func (r *Roster) ApproveContent(id string) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if mc.Submission == nil {
		return ErrNoSubmission
	}
	mc.Submission.BrandReviewStatus = models.ReviewApproved
	mc.InviteStatus = StatusAwaitingPost
	return nil
}

// RequestRevision asks the creator to rework their submission, recording
// the brand's comment on the review thread. Blank comments are rejected
// and leave both the status and the thread untouched. Revision can be
// requested again after another review round.
func (r *Roster) RequestRevision(id, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return ErrEmptyComment
	}
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if mc.Submission == nil {
		return ErrNoSubmission
	}
	mc.Submission.BrandComments = append(mc.Submission.BrandComments, models.Comment{
		Text: comment,
		From: BrandAuthor,
		At:   r.now(),
	})
	mc.Submission.BrandReviewStatus = models.ReviewRevisionRequested
	mc.InviteStatus = StatusRevisionRequested
	return nil
}

// MarkAsPosted records that approved content went live.
func (r *Roster) MarkAsPosted(id string) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	if mc.InviteStatus != StatusAwaitingPost {
		return ErrNotAwaitingPost
	}
	mc.InviteStatus = StatusPosted
	return nil
}

// SendKudos thanks a creator for posted content. Cosmetic: it has no
// effect on the state machine and exists so the action can be logged
// and counted like any other.
func (r *Roster) SendKudos(id string) error {
	_, err := r.Get(id)
	return err
}

// UpdateCompensationType changes a creator's compensation independent of
// their invite status.
func (r *Roster) UpdateCompensationType(id string, t models.CompensationType) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	mc.CompensationType = t
	return nil
}

// UpdateDueDate changes a creator's content due date, keeping only the
// date component.
func (r *Roster) UpdateDueDate(id string, due time.Time) error {
	mc, err := r.Get(id)
	if err != nil {
		return err
	}
	mc.ContentDueDate = dateOnly(due)
	return nil
}

// Grouped buckets the roster for the dashboard. Groupings are recomputed
// from invite statuses on every call, never stored.
func (r *Roster) Grouped() map[Bucket][]*ManagedCreator {
	groups := make(map[Bucket][]*ManagedCreator)
	for _, mc := range r.creators {
		bucket := BucketFor(mc.InviteStatus)
		groups[bucket] = append(groups[bucket], mc)
	}
	return groups
}
