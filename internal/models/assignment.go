package models

// CreatorAssignment records a creator's participation in a launched
// campaign as shown on the dashboard. Its status enum is coarser than the
// management flow's invite lifecycle and includes terminal declines.
type CreatorAssignment struct {
	Name          string              `json:"name" db:"name"`
	Handle        string              `json:"handle" db:"handle"`
	AvatarURL     string              `json:"avatar_url" db:"avatar_url"`
	Followers     int                 `json:"followers" db:"followers"`
	Exclusive     bool                `json:"exclusive" db:"exclusive"`
	Categories    []string            `json:"categories" db:"categories"`
	Platforms     []Platform          `json:"platforms" db:"platforms"`
	Status        AssignmentStatus    `json:"status" db:"status"`
	Compensation  CompensationSummary `json:"compensation"`
	Submissions   []ContentSubmission `json:"submissions,omitempty"`
}

// AssignmentStatus is the dashboard-level status of a creator assignment.
type AssignmentStatus string

// enum values for AssignmentStatus
const (
	AssignmentRecommended      AssignmentStatus = "recommended"
	AssignmentInvited          AssignmentStatus = "invited"
	AssignmentApplied          AssignmentStatus = "applied"
	AssignmentAccepted         AssignmentStatus = "accepted"
	AssignmentNegotiating      AssignmentStatus = "negotiating"
	AssignmentProductShipped   AssignmentStatus = "product_shipped"
	AssignmentGiftCardSent     AssignmentStatus = "gift_card_sent"
	AssignmentContentSubmitted AssignmentStatus = "content_submitted"
	AssignmentContentApproved  AssignmentStatus = "content_approved"
	AssignmentPosted           AssignmentStatus = "posted"
	AssignmentComplete         AssignmentStatus = "complete"
	AssignmentDeclined         AssignmentStatus = "declined"
)

// CompensationSummary is the agreed compensation shown on an assignment.
type CompensationSummary struct {
	Type   CompensationType `json:"type"`
	Amount float64          `json:"amount,omitempty"`
	// GiftCardState tracks delivery of gift-card compensation
	// (e.g. "pending", "sent", "redeemed"). Empty for other types.
	GiftCardState string `json:"gift_card_state,omitempty"`
}
