package models

import "time"

// DiscoverableCreator is a candidate from the creator directory shown in
// the find-talent flow. Candidate data is immutable: the discovery flow
// only selects and deselects creators by ID, it never mutates them.
type DiscoverableCreator struct {
	ID           string       `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Handle       string       `json:"handle" db:"handle"`
	AvatarURL    string       `json:"avatar_url" db:"avatar_url"`
	Bio          string       `json:"bio,omitempty" db:"bio"`
	Followers    int          `json:"followers" db:"followers"`
	Exclusive    bool         `json:"exclusive" db:"exclusive"`
	Categories   []string     `json:"categories" db:"categories"`
	Platforms    []Platform   `json:"platforms" db:"platforms"`
	Engagement   Engagement   `json:"engagement"`
	MatchScore   int          `json:"match_score" db:"match_score"`
	MatchReasons []string     `json:"match_reasons,omitempty" db:"match_reasons"`
	RecentPosts  []RecentPost `json:"recent_posts,omitempty"`
}

// Engagement holds a creator's static engagement statistics.
type Engagement struct {
	Rate         float64 `json:"rate"`
	AvgLikes     int     `json:"avg_likes"`
	AvgComments  int     `json:"avg_comments"`
	PostsPerWeek float64 `json:"posts_per_week"`
}

// RecentPost is a sample of a creator's recent content.
type RecentPost struct {
	URL      string    `json:"url"`
	ImageURL string    `json:"image_url,omitempty"`
	Platform Platform  `json:"platform"`
	Likes    int       `json:"likes"`
	PostedAt time.Time `json:"posted_at"`
}

// FirstName returns the creator's first name for use in messages
// addressed to them.
func (c *DiscoverableCreator) FirstName() string {
	for i, r := range c.Name {
		if r == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}
