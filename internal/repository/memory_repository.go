package repository

import (
	"context"
	"sync"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// memoryRepository implements service.CampaignRepository and
// service.CreatorDirectory in memory. It backs local development and
// demos and ships seeded with sample campaigns and the standard
// eight-creator candidate pool.
type memoryRepository struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	creators  []models.DiscoverableCreator
}

// MemoryRepository is both a campaign repository and a creator directory.
type MemoryRepository interface {
	service.CampaignRepository
	service.CreatorDirectory
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() MemoryRepository {
	return &memoryRepository{}
}

// NewSeededRepository creates an in-memory repository pre-loaded with
// the demo campaigns and creator pool.
func NewSeededRepository() MemoryRepository {
	return &memoryRepository{
		campaigns: SeedCampaigns(),
		creators:  SeedCreators(),
	}
}

// ListCampaigns returns all campaigns, most recently updated first.
func (r *memoryRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

// GetCampaign returns one campaign by ID.
func (r *memoryRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.Campaign{}, false, nil
}

// CreateCampaign stores a new campaign.
func (r *memoryRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append([]models.Campaign{campaign}, r.campaigns...)
	return nil
}

// ListCreators returns the full discoverable-creator pool.
func (r *memoryRepository) ListCreators(ctx context.Context) ([]models.DiscoverableCreator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.DiscoverableCreator, len(r.creators))
	copy(out, r.creators)
	return out, nil
}

// SeedCampaigns returns the demo campaigns shown on a fresh dashboard.
// Assignment statuses are spread across the lifecycle so every progress
// tier shows up somewhere.
func SeedCampaigns() []models.Campaign {
	created := time.Date(2026, time.July, 14, 9, 0, 0, 0, time.UTC)

	return []models.Campaign{
		{
			ID:             "cmp-summer-glow",
			Title:          "Summer Glow Launch",
			Mode:           models.ModeTargeted,
			Status:         models.CampaignStatusActive,
			Goals:          []models.CampaignGoal{models.GoalProductLaunch, models.GoalUGC},
			ContentFormats: []models.ContentFormat{models.FormatBenablePost, models.FormatInstagramReel},
			Compensations: []models.CompensationConfig{
				{Type: models.CompensationGifted, Enabled: true, Detail: &models.GiftedDetail{ProductName: "Summer Glow set", ProductValue: 120}},
				{Type: models.CompensationPaid, Enabled: true, Detail: &models.PaidDetail{FeeMin: 500, FeeMax: 1500}},
			},
			Description:       "Introduce the Summer Glow skincare set to beauty-first audiences with honest first-impression content.",
			Obligations:       models.DefaultObligations(),
			CustomObligations: []string{"Mention the SPF rating on camera"},
			ContentNiches:     []string{"beauty", "skincare"},
			BudgetType:        models.BudgetTypeTotal,
			BudgetAllocated:   3200,
			BudgetCap:         5000,
			CreatorCount:      6,
			CreatedAt:         created,
			UpdatedAt:         created.AddDate(0, 0, 21),
			Creators: []models.CreatorAssignment{
				{
					Name: "Maya Lindqvist", Handle: "@mayaglow", Followers: 182_000,
					Categories: []string{"beauty"}, Platforms: []models.Platform{models.PlatformBenable, models.PlatformInstagram},
					Status:       models.AssignmentContentSubmitted,
					Compensation: models.CompensationSummary{Type: models.CompensationGifted},
				},
				{
					Name: "Priya Raman", Handle: "@priyaskin", Followers: 96_500,
					Categories: []string{"skincare"}, Platforms: []models.Platform{models.PlatformBenable, models.PlatformInstagram},
					Status:       models.AssignmentProductShipped,
					Compensation: models.CompensationSummary{Type: models.CompensationGifted},
				},
				{
					Name: "Jordan Avery", Handle: "@jordanbeauty", Followers: 2_400_000, Exclusive: true,
					Categories: []string{"beauty", "lifestyle"}, Platforms: []models.Platform{models.PlatformBenable, models.PlatformTikTok},
					Status:       models.AssignmentAccepted,
					Compensation: models.CompensationSummary{Type: models.CompensationPaid, Amount: 1500},
				},
			},
		},
		{
			ID:             "cmp-home-refresh",
			Title:          "Home Refresh Favorites",
			Mode:           models.ModeTargeted,
			Status:         models.CampaignStatusActive,
			Goals:          []models.CampaignGoal{models.GoalWordOfMouth, models.GoalSales},
			ContentFormats: []models.ContentFormat{models.FormatBenablePost},
			Compensations: []models.CompensationConfig{
				{Type: models.CompensationGiftCard, Enabled: true, Detail: &models.GiftCardDetail{Value: 100, Brand: "Benable", Delivery: "email"}},
				{Type: models.CompensationCommissionBoost, Enabled: true, Detail: &models.CommissionBoostDetail{Rate: 0.15}},
			},
			Description:     "Everyday home picks shared through authentic Benable recommendation lists.",
			Obligations:     models.DefaultObligations(),
			ContentNiches:   []string{"home", "organization"},
			BudgetType:      models.BudgetTypePerCreator,
			BudgetAllocated: 800,
			BudgetCap:       2400,
			CreatedAt:       created.AddDate(0, 0, 10),
			UpdatedAt:       created.AddDate(0, 0, 12),
			Creators: []models.CreatorAssignment{
				{
					Name: "Sofia Delgado", Handle: "@sofiasorted", Followers: 48_200,
					Categories: []string{"home"}, Platforms: []models.Platform{models.PlatformBenable},
					Status:       models.AssignmentInvited,
					Compensation: models.CompensationSummary{Type: models.CompensationGiftCard, Amount: 100, GiftCardState: "pending"},
				},
				{
					Name: "Ben Okafor", Handle: "@benathome", Followers: 31_700,
					Categories: []string{"home", "diy"}, Platforms: []models.Platform{models.PlatformBenable},
					Status:       models.AssignmentRecommended,
					Compensation: models.CompensationSummary{Type: models.CompensationCommissionBoost},
				},
			},
		},
		{
			ID:             "cmp-fall-fitness",
			Title:          "Fall Fitness Reset",
			Mode:           models.ModeTargeted,
			Status:         models.CampaignStatusCompleted,
			Goals:          []models.CampaignGoal{models.GoalAwareness, models.GoalCommunity},
			ContentFormats: []models.ContentFormat{models.FormatBenablePost, models.FormatTikTokVideo},
			Compensations: []models.CompensationConfig{
				{Type: models.CompensationPaid, Enabled: true, Detail: &models.PaidDetail{FeeMin: 800, FeeMax: 2000}},
				{Type: models.CompensationGifted, Enabled: true},
			},
			Description:       "Wrap-up of last season's fitness challenge with the community's favorite gear lists.",
			Obligations:       models.DefaultObligations(),
			CustomObligations: []string{"Link the challenge recap list"},
			ContentNiches:     []string{"fitness", "wellness"},
			BudgetType:        models.BudgetTypeTotal,
			BudgetAllocated:   4000,
			BudgetCap:         4000,
			CreatedAt:         created.AddDate(0, -2, 0),
			UpdatedAt:         created.AddDate(0, -1, 0),
			Creators: []models.CreatorAssignment{
				{
					Name: "Alex Chen", Handle: "@alexmoves", Followers: 510_000,
					Categories: []string{"fitness"}, Platforms: []models.Platform{models.PlatformBenable, models.PlatformTikTok},
					Status:       models.AssignmentComplete,
					Compensation: models.CompensationSummary{Type: models.CompensationPaid, Amount: 2000},
				},
				{
					Name: "Dana Whitfield", Handle: "@danawell", Followers: 88_900,
					Categories: []string{"wellness"}, Platforms: []models.Platform{models.PlatformBenable},
					Status:       models.AssignmentComplete,
					Compensation: models.CompensationSummary{Type: models.CompensationGifted},
				},
			},
		},
	}
}

// SeedCreators returns the eight-creator candidate pool used by the
// find-talent flow in demos and tests.
func SeedCreators() []models.DiscoverableCreator {
	posted := time.Date(2026, time.August, 2, 17, 30, 0, 0, time.UTC)

	return []models.DiscoverableCreator{
		{
			ID: "cr-maya", Name: "Maya Lindqvist", Handle: "@mayaglow",
			Bio: "Skincare first, makeup second. Honest reviews only.", Followers: 182_000,
			Categories: []string{"beauty", "skincare"},
			Platforms:  []models.Platform{models.PlatformBenable, models.PlatformInstagram},
			Engagement: models.Engagement{Rate: 4.8, AvgLikes: 7_600, AvgComments: 410, PostsPerWeek: 3.5},
			MatchScore: 96,
			MatchReasons: []string{
				"Audience overlaps your target demographic by 74%",
				"Top 5% engagement in the beauty category",
			},
			RecentPosts: []models.RecentPost{{URL: "https://benable.example/p/maya-1", Platform: models.PlatformInstagram, Likes: 8_912, PostedAt: posted}},
		},
		{
			ID: "cr-jordan", Name: "Jordan Avery", Handle: "@jordanbeauty",
			Bio: "Beauty and lifestyle for real routines.", Followers: 2_400_000, Exclusive: true,
			Categories: []string{"beauty", "lifestyle"},
			Platforms:  []models.Platform{models.PlatformBenable, models.PlatformTikTok},
			Engagement: models.Engagement{Rate: 3.1, AvgLikes: 61_000, AvgComments: 2_900, PostsPerWeek: 5},
			MatchScore: 91,
			MatchReasons: []string{
				"Benable-exclusive creator",
				"Previous product-launch campaigns outperformed benchmarks",
			},
		},
		{
			ID: "cr-priya", Name: "Priya Raman", Handle: "@priyaskin",
			Bio: "Dermatology-informed skincare deep dives.", Followers: 96_500,
			Categories: []string{"skincare"},
			Platforms:  []models.Platform{models.PlatformBenable, models.PlatformInstagram},
			Engagement: models.Engagement{Rate: 5.6, AvgLikes: 4_800, AvgComments: 520, PostsPerWeek: 2},
			MatchScore: 89,
			MatchReasons: []string{"Highest comment quality score in your niche"},
		},
		{
			ID: "cr-sofia", Name: "Sofia Delgado", Handle: "@sofiasorted",
			Bio: "Small-space organization and home finds.", Followers: 48_200,
			Categories: []string{"home", "organization"},
			Platforms:  []models.Platform{models.PlatformBenable},
			Engagement: models.Engagement{Rate: 6.2, AvgLikes: 2_700, AvgComments: 340, PostsPerWeek: 4},
			MatchScore: 84,
			MatchReasons: []string{"Audience buys from recommendation lists 2.3x platform average"},
		},
		{
			ID: "cr-alex", Name: "Alex Chen", Handle: "@alexmoves",
			Bio: "Training plans and gear that actually holds up.", Followers: 510_000,
			Categories: []string{"fitness"},
			Platforms:  []models.Platform{models.PlatformBenable, models.PlatformTikTok},
			Engagement: models.Engagement{Rate: 4.1, AvgLikes: 19_000, AvgComments: 1_100, PostsPerWeek: 6},
			MatchScore: 78,
			MatchReasons: []string{"Strong completion rate on past campaign deliverables"},
		},
		{
			ID: "cr-dana", Name: "Dana Whitfield", Handle: "@danawell",
			Bio: "Wellness without the hype.", Followers: 88_900,
			Categories: []string{"wellness", "lifestyle"},
			Platforms:  []models.Platform{models.PlatformBenable},
			Engagement: models.Engagement{Rate: 5.0, AvgLikes: 4_100, AvgComments: 290, PostsPerWeek: 3},
			MatchScore: 75,
			MatchReasons: []string{"Audience age range matches your campaign brief"},
		},
		{
			ID: "cr-ben", Name: "Ben Okafor", Handle: "@benathome",
			Bio: "DIY projects and home upgrades on a budget.", Followers: 31_700,
			Categories: []string{"home", "diy"},
			Platforms:  []models.Platform{models.PlatformBenable},
			Engagement: models.Engagement{Rate: 7.3, AvgLikes: 2_100, AvgComments: 400, PostsPerWeek: 2.5},
			MatchScore: 71,
			MatchReasons: []string{"Fast-growing audience in your target region"},
		},
		{
			ID: "cr-lena", Name: "Lena Hoffmann", Handle: "@lenacooks",
			Bio: "Weeknight cooking with pantry staples.", Followers: 1_250_000,
			Categories: []string{"food", "lifestyle"},
			Platforms:  []models.Platform{models.PlatformBenable, models.PlatformInstagram, models.PlatformTikTok},
			Engagement: models.Engagement{Rate: 3.9, AvgLikes: 44_000, AvgComments: 1_800, PostsPerWeek: 4.5},
			MatchScore: 64,
			MatchReasons: []string{"Cross-platform reach across all your campaign formats"},
		},
	}
}
