package models

import (
	"fmt"
	"math"
	"time"
)

// ProgressBuckets holds the percentages reported by CampaignProgressPercent
// for each progress tier. The exact values carry no business rule beyond
// "more complete states report a higher percentage", so they are kept
// configurable rather than hardcoded.
type ProgressBuckets struct {
	Empty       int
	AllComplete int
	AnyContent  int
	AnyShipped  int
	AnyAccepted int
	Started     int
}

// DefaultProgressBuckets returns the dashboard's standard progress tiers.
func DefaultProgressBuckets() ProgressBuckets {
	return ProgressBuckets{
		Empty:       10,
		AllComplete: 100,
		AnyContent:  70,
		AnyShipped:  50,
		AnyAccepted: 35,
		Started:     15,
	}
}

// CampaignProgressPercent classifies a campaign's overall progress from
// its creator assignments. It is an ordered-priority classifier, not an
// average: buckets are checked from most complete down to least complete
// and the first match wins. All assignments must be complete for the
// full-completion bucket; a single complete assignment among stragglers
// falls through to a lower tier.
func CampaignProgressPercent(assignments []CreatorAssignment) int {
	return DefaultProgressBuckets().ProgressPercent(assignments)
}

// ProgressPercent classifies progress using this bucket configuration.
func (b ProgressBuckets) ProgressPercent(assignments []CreatorAssignment) int {
	if len(assignments) == 0 {
		return b.Empty
	}

	allComplete := true
	for _, a := range assignments {
		if a.Status != AssignmentComplete {
			allComplete = false
			break
		}
	}
	if allComplete {
		return b.AllComplete
	}

	for _, a := range assignments {
		switch a.Status {
		case AssignmentContentSubmitted, AssignmentContentApproved, AssignmentPosted, AssignmentComplete:
			return b.AnyContent
		}
	}
	for _, a := range assignments {
		switch a.Status {
		case AssignmentProductShipped, AssignmentGiftCardSent:
			return b.AnyShipped
		}
	}
	for _, a := range assignments {
		if a.Status == AssignmentAccepted {
			return b.AnyAccepted
		}
	}
	return b.Started
}

// BudgetPercent returns the rounded share of the budget cap that has been
// allocated. A zero or negative cap reports 0 rather than dividing by it.
func BudgetPercent(allocated, cap float64) int {
	if cap <= 0 {
		return 0
	}
	return int(math.Round(allocated / cap * 100))
}

// FormatFollowerCount abbreviates a follower count for display:
// millions as "1.0M", thousands as "1.2K", anything below as-is.
func FormatFollowerCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatDate renders a date as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateRange renders a date range, omitting the start date's year
// when both dates fall in the same year.
func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}
