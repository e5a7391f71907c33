// Package management tracks creators selected for a campaign through the
// invite and content-review lifecycle. The roster lives in memory for the
// duration of one find-talent session and is mutated by brand actions.
package management

// InviteStatus is the lifecycle status of a managed creator. The order
// below is the natural flow, but the machine is not strictly linear:
// revision_requested loops back through review, and the brand can jump a
// creator to any status directly as a manual override.
type InviteStatus string

// enum values for InviteStatus
const (
	StatusPending           InviteStatus = "pending"
	StatusInvited           InviteStatus = "invited"
	StatusAccepted          InviteStatus = "accepted"
	StatusWaitingForContent InviteStatus = "waiting_for_content"
	StatusContentSubmitted  InviteStatus = "content_submitted"
	StatusInReview          InviteStatus = "in_review"
	StatusRevisionRequested InviteStatus = "revision_requested"
	StatusApproved          InviteStatus = "approved"
	StatusAwaitingPost      InviteStatus = "awaiting_post"
	StatusPosted            InviteStatus = "posted"
)

// AllInviteStatuses lists every invite status in canonical flow order.
// The brand's manual status override offers exactly this list.
func AllInviteStatuses() []InviteStatus {
	return []InviteStatus{
		StatusPending,
		StatusInvited,
		StatusAccepted,
		StatusWaitingForContent,
		StatusContentSubmitted,
		StatusInReview,
		StatusRevisionRequested,
		StatusApproved,
		StatusAwaitingPost,
		StatusPosted,
	}
}

// Valid reports whether s is a known invite status.
func (s InviteStatus) Valid() bool {
	for _, known := range AllInviteStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Bucket is a dashboard grouping of invite statuses. Buckets partition
// the status enum: every status belongs to exactly one bucket.
type Bucket string

// enum values for Bucket
const (
	BucketNeedsAction  Bucket = "needs_action"
	BucketInProgress   Bucket = "in_progress"
	BucketAwaitingPost Bucket = "awaiting_post"
	BucketCompleted    Bucket = "completed"
)

// BucketFor returns the dashboard bucket a status belongs to. The switch
// is exhaustive over AllInviteStatuses.
func BucketFor(s InviteStatus) Bucket {
	switch s {
	case StatusPending, StatusContentSubmitted, StatusInReview, StatusRevisionRequested:
		return BucketNeedsAction
	case StatusInvited, StatusAccepted, StatusWaitingForContent:
		return BucketInProgress
	case StatusAwaitingPost, StatusApproved:
		return BucketAwaitingPost
	case StatusPosted:
		return BucketCompleted
	default:
		return BucketNeedsAction
	}
}
