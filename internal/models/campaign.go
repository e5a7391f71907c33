package models

import (
	"time"
)

// Campaign is a launched influencer-marketing campaign owned by a brand.
// It is created from a completed CampaignDraft and tracked on the brand
// dashboard together with the creators participating in it.
type Campaign struct {
	ID                string               `json:"id" db:"id"`
	Title             string               `json:"title" db:"title"`
	Mode              CampaignMode         `json:"mode" db:"mode"`
	Status            CampaignStatus       `json:"status" db:"status"`
	Goals             []CampaignGoal       `json:"goals" db:"goals"`
	ContentFormats    []ContentFormat      `json:"content_formats" db:"content_formats"`
	Compensations     []CompensationConfig `json:"compensations" db:"compensations"`
	Description       string               `json:"description" db:"description"`
	Obligations       []Obligation         `json:"obligations" db:"obligations"`
	CustomObligations []string             `json:"custom_obligations" db:"custom_obligations"`
	ContentNiches     []string             `json:"content_niches" db:"content_niches"`
	BudgetType        BudgetType           `json:"budget_type" db:"budget_type"`
	BudgetAllocated   float64              `json:"budget_allocated" db:"budget_allocated"`
	BudgetCap         float64              `json:"budget_cap" db:"budget_cap"`
	CreatorCount      int                  `json:"creator_count,omitempty" db:"creator_count"`
	Creators          []CreatorAssignment  `json:"creators,omitempty"`
	CreatedAt         time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at" db:"updated_at"`
}

// CampaignStatus represents the lifecycle status of a launched campaign.
type CampaignStatus string

// enum values for CampaignStatus
const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusFilled    CampaignStatus = "filled"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// IsActive returns true if the campaign is accepting creators.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// BudgetType determines how BudgetAllocated is interpreted.
type BudgetType string

// enum values for BudgetType
const (
	BudgetTypeTotal      BudgetType = "total"
	BudgetTypePerCreator BudgetType = "per_creator"
)

// Platforms returns the set of platforms implied by the campaign's
// content formats. Benable is always present.
func (c *Campaign) Platforms() []Platform {
	return PlatformsForFormats(c.ContentFormats)
}
