package models

// CampaignMode determines how creators join a campaign.
type CampaignMode string

// enum values for CampaignMode
const (
	// ModeTargeted means the brand hand-picks and invites creators.
	ModeTargeted CampaignMode = "targeted"
	// ModeOpen would let any creator apply. Reserved, not yet enabled.
	ModeOpen CampaignMode = "open"
	// ModeDebut would feature the campaign in the creator debut feed.
	// Reserved, not yet enabled.
	ModeDebut CampaignMode = "debut"
)

// ModeEnabled reports whether a campaign mode can currently be selected.
// Only targeted campaigns are available; open and debut are reserved
// product states that the wizard must reject.
func ModeEnabled(mode CampaignMode) bool {
	return mode == ModeTargeted
}

// CampaignGoal is a marketing objective selected on the first wizard step.
type CampaignGoal string

// enum values for CampaignGoal
const (
	GoalWordOfMouth   CampaignGoal = "word_of_mouth"
	GoalProductLaunch CampaignGoal = "product_launch"
	GoalUGC           CampaignGoal = "ugc"
	GoalAwareness     CampaignGoal = "awareness"
	GoalSales         CampaignGoal = "sales"
	GoalCommunity     CampaignGoal = "community"
)

// AllCampaignGoals lists every selectable goal in display order.
func AllCampaignGoals() []CampaignGoal {
	return []CampaignGoal{
		GoalWordOfMouth,
		GoalProductLaunch,
		GoalUGC,
		GoalAwareness,
		GoalSales,
		GoalCommunity,
	}
}

// ContentFormat is a deliverable content type requested from creators.
type ContentFormat string

// enum values for ContentFormat
const (
	FormatBenablePost    ContentFormat = "benable_post"
	FormatInstagramPost  ContentFormat = "instagram_post"
	FormatInstagramReel  ContentFormat = "instagram_reel"
	FormatInstagramStory ContentFormat = "instagram_story"
	FormatTikTokVideo    ContentFormat = "tiktok_video"
)

// Platform is a social platform a content format publishes to.
type Platform string

// enum values for Platform
const (
	PlatformBenable   Platform = "benable"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Platform returns the platform a content format publishes to.
func (f ContentFormat) Platform() Platform {
	switch f {
	case FormatInstagramPost, FormatInstagramReel, FormatInstagramStory:
		return PlatformInstagram
	case FormatTikTokVideo:
		return PlatformTikTok
	default:
		return PlatformBenable
	}
}

// PlatformsForFormats derives the platform set implied by a list of
// content formats. Benable is always included, Instagram and TikTok only
// when a format publishing to them is present.
func PlatformsForFormats(formats []ContentFormat) []Platform {
	platforms := []Platform{PlatformBenable}
	var instagram, tiktok bool
	for _, f := range formats {
		switch f.Platform() {
		case PlatformInstagram:
			instagram = true
		case PlatformTikTok:
			tiktok = true
		}
	}
	if instagram {
		platforms = append(platforms, PlatformInstagram)
	}
	if tiktok {
		platforms = append(platforms, PlatformTikTok)
	}
	return platforms
}

// Obligation is a toggleable compliance requirement shown on the brief step.
type Obligation struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Emoji    string   `json:"emoji"`
	Platform Platform `json:"platform"`
	Enabled  bool     `json:"enabled"`
}

// DefaultObligations returns the standard compliance requirements offered
// to every new campaign. The FTC disclosure requirement starts enabled.
func DefaultObligations() []Obligation {
	return []Obligation{
		{ID: "ftc_disclosure", Label: "Include #ad or #sponsored disclosure", Emoji: "📢", Platform: PlatformBenable, Enabled: true},
		{ID: "tag_brand", Label: "Tag the brand account", Emoji: "🏷️", Platform: PlatformBenable, Enabled: true},
		{ID: "product_visible", Label: "Show the product in use", Emoji: "📦", Platform: PlatformBenable, Enabled: false},
		{ID: "story_mention", Label: "Mention in at least one story", Emoji: "💬", Platform: PlatformInstagram, Enabled: false},
		{ID: "link_in_bio", Label: "Keep the campaign link in bio for 7 days", Emoji: "🔗", Platform: PlatformInstagram, Enabled: false},
		{ID: "sound_on", Label: "Use the campaign audio", Emoji: "🎵", Platform: PlatformTikTok, Enabled: false},
	}
}

// CampaignDraft is the snapshot a completed wizard session hands to
// campaign creation. It mirrors the wizard's state at launch time.
type CampaignDraft struct {
	Mode               CampaignMode         `json:"mode"`
	Title              string               `json:"title"`
	Goals              []CampaignGoal       `json:"goals"`
	ContentFormats     []ContentFormat      `json:"content_formats"`
	Compensations      []CompensationConfig `json:"compensations"`
	Description        string               `json:"description"`
	Obligations        []Obligation         `json:"obligations"`
	CustomObligations  []string             `json:"custom_obligations"`
	ContentNiches      []string             `json:"content_niches"`
	CreatorCount       int                  `json:"creator_count,omitempty"`
	BudgetType         BudgetType           `json:"budget_type"`
	BudgetCap          float64              `json:"budget_cap"`
}

// Platforms derives the platform set from the draft's content formats.
func (d *CampaignDraft) Platforms() []Platform {
	return PlatformsForFormats(d.ContentFormats)
}
