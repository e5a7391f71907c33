package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/draft"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

var (
	// ErrCampaignNotFound is returned for unknown campaign IDs.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrStorage hides repository failures from clients.
	ErrStorage = errors.New("failed to access campaign storage")
)

// PortalService defines the brand portal's campaign operations.
type PortalService interface {
	CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	SearchCreators(ctx context.Context, criteria CreatorSearchCriteria) ([]models.DiscoverableCreator, error)
}

// CampaignRepository is the persistence interface for campaigns.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error)
	CreateCampaign(ctx context.Context, campaign models.Campaign) error
}

// CreatorDirectory is the lookup interface for discoverable creators.
type CreatorDirectory interface {
	ListCreators(ctx context.Context) ([]models.DiscoverableCreator, error)
}

// CreatorSearchCriteria filters the creator directory. Zero values mean
// no filtering on that field.
type CreatorSearchCriteria struct {
	Category      string          `json:"category,omitempty"`
	Platform      models.Platform `json:"platform,omitempty"`
	MinFollowers  int             `json:"min_followers,omitempty"`
	MinMatchScore int             `json:"min_match_score,omitempty"`
}

// Normalize trims and lowercases the free-text criteria fields.
func (c *CreatorSearchCriteria) Normalize() {
	c.Category = strings.ToLower(strings.TrimSpace(c.Category))
	c.Platform = models.Platform(strings.ToLower(strings.TrimSpace(string(c.Platform))))
}

// portalService implements PortalService over a campaign repository and
// a creator directory.
type portalService struct {
	campaigns CampaignRepository
	directory CreatorDirectory
	now       func() time.Time
	newID     func() string
}

// NewPortalService creates the portal service.
func NewPortalService(campaigns CampaignRepository, directory CreatorDirectory) PortalService {
	return &portalService{
		campaigns: campaigns,
		directory: directory,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// CreateCampaign turns a completed wizard draft into an active campaign
// and persists it. The wizard's launch invariants are re-checked here
// because this is the service boundary, using the same sentinels the
// wizard reports.
func (s *portalService) CreateCampaign(ctx context.Context, d models.CampaignDraft) (models.Campaign, error) {
	if strings.TrimSpace(d.Title) == "" {
		return models.Campaign{}, draft.ErrTitleRequired
	}
	if len(d.Goals) == 0 {
		return models.Campaign{}, draft.ErrNoGoalSelected
	}
	if !models.ModeEnabled(d.Mode) {
		return models.Campaign{}, draft.ErrModeDisabled
	}

	now := s.now()
	campaign := models.Campaign{
		ID:                s.newID(),
		Title:             strings.TrimSpace(d.Title),
		Mode:              d.Mode,
		Status:            models.CampaignStatusActive,
		Goals:             d.Goals,
		ContentFormats:    d.ContentFormats,
		Compensations:     d.Compensations,
		Description:       d.Description,
		Obligations:       d.Obligations,
		CustomObligations: d.CustomObligations,
		ContentNiches:     d.ContentNiches,
		BudgetType:        d.BudgetType,
		BudgetCap:         d.BudgetCap,
		CreatorCount:      d.CreatorCount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.campaigns.CreateCampaign(ctx, campaign); err != nil {
		return models.Campaign{}, ErrStorage
	}
	return campaign, nil
}

// ListCampaigns returns every campaign on the brand's dashboard.
func (s *portalService) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, ErrStorage
	}
	return campaigns, nil
}

// GetCampaign returns one campaign by ID.
func (s *portalService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	campaign, found, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return models.Campaign{}, ErrStorage
	}
	if !found {
		return models.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

// SearchCreators filters the creator directory by the given criteria.
func (s *portalService) SearchCreators(ctx context.Context, criteria CreatorSearchCriteria) ([]models.DiscoverableCreator, error) {
	criteria.Normalize()

	pool, err := s.directory.ListCreators(ctx)
	if err != nil {
		return nil, ErrStorage
	}

	var matched []models.DiscoverableCreator
	for _, c := range pool {
		if matchesCriteria(c, criteria) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func matchesCriteria(c models.DiscoverableCreator, criteria CreatorSearchCriteria) bool {
	if c.Followers < criteria.MinFollowers {
		return false
	}
	if c.MatchScore < criteria.MinMatchScore {
		return false
	}
	if criteria.Category != "" {
		found := false
		for _, cat := range c.Categories {
			if strings.ToLower(cat) == criteria.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if criteria.Platform != "" {
		found := false
		for _, p := range c.Platforms {
			if p == criteria.Platform {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
