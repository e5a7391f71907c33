package models

// ErrorResponse represents error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// CampaignSummary is the list-view projection of a campaign. Progress and
// budget percentages are derived at response time, never stored.
type CampaignSummary struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Status          CampaignStatus `json:"status"`
	CreatorTotal    int            `json:"creator_total"`
	ProgressPercent int            `json:"progress_percent"`
	BudgetPercent   int            `json:"budget_percent"`
}

// ToSummary converts a Campaign to its list-view projection.
func (c *Campaign) ToSummary() CampaignSummary {
	return CampaignSummary{
		ID:              c.ID,
		Title:           c.Title,
		Status:          c.Status,
		CreatorTotal:    len(c.Creators),
		ProgressPercent: CampaignProgressPercent(c.Creators),
		BudgetPercent:   BudgetPercent(c.BudgetAllocated, c.BudgetCap),
	}
}

// CreatorCard is the discovery-grid projection of a discoverable creator.
type CreatorCard struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Handle       string   `json:"handle"`
	Followers    string   `json:"followers"`
	MatchScore   int      `json:"match_score"`
	MatchReasons []string `json:"match_reasons,omitempty"`
}

// ToCard converts a DiscoverableCreator to its grid projection with the
// follower count abbreviated for display.
func (c *DiscoverableCreator) ToCard() CreatorCard {
	return CreatorCard{
		ID:           c.ID,
		Name:         c.Name,
		Handle:       c.Handle,
		Followers:    FormatFollowerCount(c.Followers),
		MatchScore:   c.MatchScore,
		MatchReasons: c.MatchReasons,
	}
}
