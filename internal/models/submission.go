package models

import "time"

// ContentSubmission is a piece of content a creator submitted for brand
// review. The AI review fields are supplied by an external moderation
// service; this core only stores and displays them.
type ContentSubmission struct {
	ID            string        `json:"id" db:"id"`
	ContentURL    string        `json:"content_url" db:"content_url"`
	Caption       string        `json:"caption,omitempty" db:"caption"`
	Format        ContentFormat `json:"format" db:"format"`
	SubmittedAt   time.Time     `json:"submitted_at" db:"submitted_at"`
	AIReviewScore int           `json:"ai_review_score" db:"ai_review_score"`
	AIReviewNotes string        `json:"ai_review_notes,omitempty" db:"ai_review_notes"`
	AIIssues      []string      `json:"ai_issues,omitempty" db:"ai_issues"`

	BrandReviewStatus BrandReviewStatus `json:"brand_review_status" db:"brand_review_status"`
	BrandComments     []Comment         `json:"brand_comments,omitempty"`
}

// Compliant reports whether the external AI review found no issues.
func (s *ContentSubmission) Compliant() bool {
	return len(s.AIIssues) == 0
}

// BrandReviewStatus is the brand's review decision on a submission.
type BrandReviewStatus string

// enum values for BrandReviewStatus
const (
	ReviewPending           BrandReviewStatus = "pending"
	ReviewApproved          BrandReviewStatus = "approved"
	ReviewRevisionRequested BrandReviewStatus = "revision_requested"
)

// Comment is one entry of a submission's review thread, ordered by time.
type Comment struct {
	Text string    `json:"text"`
	From string    `json:"from"`
	At   time.Time `json:"at"`
}
