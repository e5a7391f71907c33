package discovery

import (
	"fmt"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// SubmissionSeeder pre-populates content submissions on a freshly built
// roster. Production sessions use no seeder: submissions only arrive
// from the content pipeline. Seeding exists so demo environments and
// tests can show the review flow without waiting for creators.
type SubmissionSeeder interface {
	Seed(roster *management.Roster)
}

// DemoSeeder seeds the first selected creator with a compliant
// submission and the second with one flagged by AI review, so a demo
// roster shows both sides of the review flow immediately.
type DemoSeeder struct {
	Now func() time.Time
}

// Seed implements SubmissionSeeder.
func (d DemoSeeder) Seed(roster *management.Roster) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	creators := roster.Creators()
	if len(creators) > 0 {
		first := creators[0]
		roster.AttachSubmission(first.Creator.ID, models.ContentSubmission{
			ID:            fmt.Sprintf("sub-%s-1", first.Creator.ID),
			ContentURL:    "https://cdn.benable.example/demo/compliant.jpg",
			Caption:       "Obsessed with this find! #ad",
			Format:        models.FormatInstagramPost,
			SubmittedAt:   now(),
			AIReviewScore: 96,
			AIReviewNotes: "Disclosure present, brand tagged, product clearly shown.",
		})
	}
	if len(creators) > 1 {
		second := creators[1]
		roster.AttachSubmission(second.Creator.ID, models.ContentSubmission{
			ID:            fmt.Sprintf("sub-%s-1", second.Creator.ID),
			ContentURL:    "https://cdn.benable.example/demo/flagged.jpg",
			Caption:       "New favorite thing, check it out",
			Format:        models.FormatInstagramReel,
			SubmittedAt:   now(),
			AIReviewScore: 58,
			AIReviewNotes: "Missing required disclosure and brand tag.",
			AIIssues: []string{
				"Add #ad or #sponsored disclosure to the caption",
				"Tag the brand account in the post",
			},
		})
	}
}
