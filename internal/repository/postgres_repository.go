package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/database"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/service"
)

// PostgresRepository implements service.CampaignRepository and
// service.CreatorDirectory using PostgreSQL.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ service.CampaignRepository = (*PostgresRepository)(nil)
var _ service.CreatorDirectory = (*PostgresRepository)(nil)

// ListCampaigns retrieves all campaigns with their creator assignments,
// most recently updated first.
func (r *PostgresRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaignsQuery := `
		SELECT id, title, mode, status, goals, content_formats, compensations,
		       description, obligations, custom_obligations, content_niches,
		       budget_type, budget_allocated, budget_cap, creator_count,
		       created_at, updated_at
		FROM campaigns
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, campaignsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	campaignIDs := make([]string, 0)

	for rows.Next() {
		var c models.Campaign
		var goals, formats, customObligations, niches []string
		var compensations, obligations []byte
		var createdAt, updatedAt time.Time

		err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Mode,
			&c.Status,
			pq.Array(&goals),
			pq.Array(&formats),
			&compensations,
			&c.Description,
			&obligations,
			pq.Array(&customObligations),
			pq.Array(&niches),
			&c.BudgetType,
			&c.BudgetAllocated,
			&c.BudgetCap,
			&c.CreatorCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}

		c.Goals = toGoals(goals)
		c.ContentFormats = toFormats(formats)
		c.CustomObligations = customObligations
		c.ContentNiches = niches
		c.CreatedAt = createdAt
		c.UpdatedAt = updatedAt
		if err := unmarshalLaunchConfig(compensations, obligations, &c); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, c)
		campaignIDs = append(campaignIDs, c.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over campaign rows: %w", err)
	}

	if len(campaigns) == 0 {
		return campaigns, nil
	}

	assignments, err := r.assignmentsByCampaign(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].Creators = assignments[campaigns[i].ID]
	}

	return campaigns, nil
}

// GetCampaign retrieves one campaign and its creator assignments.
func (r *PostgresRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, bool, error) {
	query := `
		SELECT id, title, mode, status, goals, content_formats, compensations,
		       description, obligations, custom_obligations, content_niches,
		       budget_type, budget_allocated, budget_cap, creator_count,
		       created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`

	var c models.Campaign
	var goals, formats, customObligations, niches []string
	var compensations, obligations []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Mode,
		&c.Status,
		pq.Array(&goals),
		pq.Array(&formats),
		&compensations,
		&c.Description,
		&obligations,
		pq.Array(&customObligations),
		pq.Array(&niches),
		&c.BudgetType,
		&c.BudgetAllocated,
		&c.BudgetCap,
		&c.CreatorCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Campaign{}, false, nil
		}
		return models.Campaign{}, false, fmt.Errorf("failed to query campaign: %w", err)
	}

	c.Goals = toGoals(goals)
	c.ContentFormats = toFormats(formats)
	c.CustomObligations = customObligations
	c.ContentNiches = niches
	if err := unmarshalLaunchConfig(compensations, obligations, &c); err != nil {
		return models.Campaign{}, false, err
	}

	assignments, err := r.assignmentsByCampaign(ctx, []string{id})
	if err != nil {
		return models.Campaign{}, false, err
	}
	c.Creators = assignments[id]

	return c, true, nil
}

// CreateCampaign stores a newly launched campaign.
func (r *PostgresRepository) CreateCampaign(ctx context.Context, c models.Campaign) error {
	query := `
		INSERT INTO campaigns (
			id, title, mode, status, goals, content_formats, compensations,
			description, obligations, custom_obligations, content_niches,
			budget_type, budget_allocated, budget_cap, creator_count,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	compensations, err := json.Marshal(c.Compensations)
	if err != nil {
		return fmt.Errorf("failed to marshal compensations: %w", err)
	}
	obligations, err := json.Marshal(c.Obligations)
	if err != nil {
		return fmt.Errorf("failed to marshal obligations: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.Mode, c.Status,
		pq.Array(goalStrings(c.Goals)),
		pq.Array(formatStrings(c.ContentFormats)),
		compensations,
		c.Description,
		obligations,
		pq.Array(c.CustomObligations),
		pq.Array(c.ContentNiches),
		c.BudgetType, c.BudgetAllocated, c.BudgetCap,
		c.CreatorCount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}
	return nil
}

// ListCreators retrieves the discoverable-creator pool ordered by match
// score, best first.
func (r *PostgresRepository) ListCreators(ctx context.Context) ([]models.DiscoverableCreator, error) {
	query := `
		SELECT id, name, handle, avatar_url, bio, followers, exclusive,
		       categories, platforms, engagement_rate, avg_likes,
		       avg_comments, posts_per_week, match_score, match_reasons
		FROM discoverable_creators
		ORDER BY match_score DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query creators: %w", err)
	}
	defer rows.Close()

	var creators []models.DiscoverableCreator
	for rows.Next() {
		var c models.DiscoverableCreator
		var categories, platforms, reasons []string

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Handle,
			&c.AvatarURL,
			&c.Bio,
			&c.Followers,
			&c.Exclusive,
			pq.Array(&categories),
			pq.Array(&platforms),
			&c.Engagement.Rate,
			&c.Engagement.AvgLikes,
			&c.Engagement.AvgComments,
			&c.Engagement.PostsPerWeek,
			&c.MatchScore,
			pq.Array(&reasons),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creator: %w", err)
		}

		c.Categories = categories
		c.MatchReasons = reasons
		c.Platforms = toPlatforms(platforms)
		creators = append(creators, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over creator rows: %w", err)
	}

	return creators, nil
}

// assignmentsByCampaign loads creator assignments for a set of campaigns
// in one query, grouped by campaign ID.
func (r *PostgresRepository) assignmentsByCampaign(ctx context.Context, campaignIDs []string) (map[string][]models.CreatorAssignment, error) {
	query := `
		SELECT campaign_id, name, handle, avatar_url, followers, exclusive,
		       categories, platforms, status, compensation_type,
		       compensation_amount, gift_card_state
		FROM creator_assignments
		WHERE campaign_id = ANY($1)
		ORDER BY campaign_id, id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(campaignIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query creator assignments: %w", err)
	}
	defer rows.Close()

	byCampaign := make(map[string][]models.CreatorAssignment)
	for rows.Next() {
		var a models.CreatorAssignment
		var campaignID string
		var categories, platforms []string

		err := rows.Scan(
			&campaignID,
			&a.Name,
			&a.Handle,
			&a.AvatarURL,
			&a.Followers,
			&a.Exclusive,
			pq.Array(&categories),
			pq.Array(&platforms),
			&a.Status,
			&a.Compensation.Type,
			&a.Compensation.Amount,
			&a.Compensation.GiftCardState,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creator assignment: %w", err)
		}

		a.Categories = categories
		a.Platforms = toPlatforms(platforms)
		byCampaign[campaignID] = append(byCampaign[campaignID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over assignment rows: %w", err)
	}

	return byCampaign, nil
}

// unmarshalLaunchConfig decodes the JSONB compensation and obligation
// columns into the campaign.
func unmarshalLaunchConfig(compensations, obligations []byte, c *models.Campaign) error {
	if len(compensations) > 0 {
		if err := json.Unmarshal(compensations, &c.Compensations); err != nil {
			return fmt.Errorf("failed to unmarshal compensations: %w", err)
		}
	}
	if len(obligations) > 0 {
		if err := json.Unmarshal(obligations, &c.Obligations); err != nil {
			return fmt.Errorf("failed to unmarshal obligations: %w", err)
		}
	}
	return nil
}

func toGoals(values []string) []models.CampaignGoal {
	out := make([]models.CampaignGoal, len(values))
	for i, v := range values {
		out[i] = models.CampaignGoal(v)
	}
	return out
}

func goalStrings(goals []models.CampaignGoal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = string(g)
	}
	return out
}

func toFormats(values []string) []models.ContentFormat {
	out := make([]models.ContentFormat, len(values))
	for i, v := range values {
		out[i] = models.ContentFormat(v)
	}
	return out
}

func formatStrings(formats []models.ContentFormat) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

func toPlatforms(values []string) []models.Platform {
	out := make([]models.Platform, len(values))
	for i, v := range values {
		out[i] = models.Platform(v)
	}
	return out
}
