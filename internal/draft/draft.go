// Package draft holds the campaign-creation wizard state. A Draft is
// owned by a single authoring session and mutated in place by wizard
// actions; abandoning the wizard simply discards it.
package draft

import (
	"errors"
	"strings"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// DescriptionMinimum is the advisory minimum description length shown on
// the brief step. It is surfaced to the UI but does not gate launch.
const DescriptionMinimum = 50

var (
	// ErrModeDisabled is returned when selecting a reserved campaign mode.
	ErrModeDisabled = errors.New("campaign mode is not available")
	// ErrNoGoalSelected blocks leaving the goals step without a goal.
	ErrNoGoalSelected = errors.New("select at least one campaign goal")
	// ErrNoModeSelected blocks leaving the details step without a mode.
	ErrNoModeSelected = errors.New("select a campaign mode")
	// ErrTitleRequired blocks launching without a campaign title.
	ErrTitleRequired = errors.New("campaign title is required")
	// ErrCompensationMismatch is returned when a compensation detail does
	// not belong to the compensation type being updated.
	ErrCompensationMismatch = errors.New("compensation detail does not match type")
	// ErrUnknownCompensation is returned for a type outside the fixed list.
	ErrUnknownCompensation = errors.New("unknown compensation type")
)

// Step is one of the wizard's four ordered steps.
type Step int

// wizard steps in order
const (
	StepGoals Step = iota + 1
	StepDetails
	StepBrief
	StepReview
)

// Draft is the campaign under construction. Zero-valued fields mean the
// brand has not reached that step yet; New seeds the fixed lists.
type Draft struct {
	step Step

	mode              models.CampaignMode
	title             string
	goals             []models.CampaignGoal
	contentFormats    []models.ContentFormat
	compensations     []models.CompensationConfig
	description       string
	obligations       []models.Obligation
	customObligations []string
	contentNiches     []string
	creatorCount      int
	budgetType        models.BudgetType
	budgetCap         float64
}

// New creates an empty draft positioned on the goals step. The Benable
// post format is pre-selected and cannot be removed.
func New() *Draft {
	return &Draft{
		step:           StepGoals,
		contentFormats: []models.ContentFormat{models.FormatBenablePost},
		compensations:  models.DefaultCompensationConfigs(),
		obligations:    models.DefaultObligations(),
		budgetType:     models.BudgetTypeTotal,
	}
}

// Step returns the wizard step the draft is currently on.
func (d *Draft) Step() Step { return d.step }

// Mode returns the selected campaign mode, empty until chosen.
func (d *Draft) Mode() models.CampaignMode { return d.mode }

// Title returns the campaign title.
func (d *Draft) Title() string { return d.title }

// SetTitle sets the campaign title.
func (d *Draft) SetTitle(title string) {
	d.title = strings.TrimSpace(title)
}

// Goals returns the selected goals in selection order.
func (d *Draft) Goals() []models.CampaignGoal { return d.goals }

// SetGoals replaces the goal selection, dropping duplicates.
func (d *Draft) SetGoals(goals []models.CampaignGoal) {
	d.goals = nil
	for _, g := range goals {
		if !d.hasGoal(g) {
			d.goals = append(d.goals, g)
		}
	}
}

// ToggleGoal adds or removes a goal from the selection.
func (d *Draft) ToggleGoal(goal models.CampaignGoal) {
	for i, g := range d.goals {
		if g == goal {
			d.goals = append(d.goals[:i], d.goals[i+1:]...)
			return
		}
	}
	d.goals = append(d.goals, goal)
}

func (d *Draft) hasGoal(goal models.CampaignGoal) bool {
	for _, g := range d.goals {
		if g == goal {
			return true
		}
	}
	return false
}

// SetMode selects the campaign mode. Reserved modes (open, debut) are
// rejected and leave the previous selection untouched; the UI should
// query models.ModeEnabled before offering a mode at all.
func (d *Draft) SetMode(mode models.CampaignMode) error {
	if !models.ModeEnabled(mode) {
		return ErrModeDisabled
	}
	d.mode = mode
	return nil
}

// ContentFormats returns the selected content formats.
func (d *Draft) ContentFormats() []models.ContentFormat { return d.contentFormats }

// ToggleContentFormat adds or removes a content format. The Benable post
// format is pinned: toggling it is a no-op.
func (d *Draft) ToggleContentFormat(format models.ContentFormat) {
	if format == models.FormatBenablePost {
		return
	}
	for i, f := range d.contentFormats {
		if f == format {
			d.contentFormats = append(d.contentFormats[:i], d.contentFormats[i+1:]...)
			return
		}
	}
	d.contentFormats = append(d.contentFormats, format)
}

// Platforms returns the platform set implied by the selected formats.
// Always contains Benable.
func (d *Draft) Platforms() []models.Platform {
	return models.PlatformsForFormats(d.contentFormats)
}

// Compensations returns the fixed five-element compensation list.
func (d *Draft) Compensations() []models.CompensationConfig { return d.compensations }

// ToggleCompensation enables or disables one compensation type.
func (d *Draft) ToggleCompensation(t models.CompensationType, enabled bool) error {
	for i := range d.compensations {
		if d.compensations[i].Type == t {
			d.compensations[i].Enabled = enabled
			return nil
		}
	}
	return ErrUnknownCompensation
}

// SetCompensationDetail updates the detail of one compensation type. The
// detail must belong to the type being updated.
func (d *Draft) SetCompensationDetail(t models.CompensationType, detail models.CompensationDetail) error {
	if detail != nil && detail.CompensationType() != t {
		return ErrCompensationMismatch
	}
	for i := range d.compensations {
		if d.compensations[i].Type == t {
			d.compensations[i].Detail = detail
			return nil
		}
	}
	return ErrUnknownCompensation
}

// Description returns the campaign brief description.
func (d *Draft) Description() string { return d.description }

// SetDescription sets the campaign brief description.
func (d *Draft) SetDescription(text string) {
	d.description = text
}

// DescriptionMeetsMinimum reports whether the description reaches the
// advisory minimum length. Advisory only; launch does not check it.
func (d *Draft) DescriptionMeetsMinimum() bool {
	return len(strings.TrimSpace(d.description)) >= DescriptionMinimum
}

// Obligations returns the standard compliance requirements with their
// current toggle state.
func (d *Draft) Obligations() []models.Obligation { return d.obligations }

// ToggleObligation flips one standard obligation by ID. Unknown IDs are
// ignored.
func (d *Draft) ToggleObligation(id string) {
	for i := range d.obligations {
		if d.obligations[i].ID == id {
			d.obligations[i].Enabled = !d.obligations[i].Enabled
			return
		}
	}
}

// CustomObligations returns the brand's free-text obligations in the
// order they were added.
func (d *Draft) CustomObligations() []string { return d.customObligations }

// AddCustomObligation appends a free-text obligation. Blank text is a
// no-op.
func (d *Draft) AddCustomObligation(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	d.customObligations = append(d.customObligations, text)
}

// RemoveCustomObligation removes the obligation at index, preserving the
// order of the rest. Out-of-range indexes are ignored.
func (d *Draft) RemoveCustomObligation(index int) {
	if index < 0 || index >= len(d.customObligations) {
		return
	}
	d.customObligations = append(d.customObligations[:index], d.customObligations[index+1:]...)
}

// ContentNiches returns the selected niche tags in selection order.
func (d *Draft) ContentNiches() []string { return d.contentNiches }

// ToggleNiche adds or removes a niche tag.
func (d *Draft) ToggleNiche(name string) {
	for i, n := range d.contentNiches {
		if n == name {
			d.contentNiches = append(d.contentNiches[:i], d.contentNiches[i+1:]...)
			return
		}
	}
	d.contentNiches = append(d.contentNiches, name)
}

// AddCustomNiche appends a free-form niche tag. Blank or already-present
// tags are a no-op.
func (d *Draft) AddCustomNiche(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for _, n := range d.contentNiches {
		if n == text {
			return
		}
	}
	d.contentNiches = append(d.contentNiches, text)
}

// CreatorCount returns the optional target creator count, 0 when unset.
func (d *Draft) CreatorCount() int { return d.creatorCount }

// SetCreatorCount sets the target creator count. Negative values reset
// it to unset.
func (d *Draft) SetCreatorCount(count int) {
	if count < 0 {
		count = 0
	}
	d.creatorCount = count
}

// SetBudget sets the budget type and cap shown on the review step.
func (d *Draft) SetBudget(t models.BudgetType, cap float64) {
	d.budgetType = t
	d.budgetCap = cap
}

// CanAdvance reports whether the draft may leave its current step, and
// the gate error when it may not. Validation never mutates the draft;
// the UI uses this to disable the next-step action.
func (d *Draft) CanAdvance() error {
	switch d.step {
	case StepGoals:
		if len(d.goals) == 0 {
			return ErrNoGoalSelected
		}
	case StepDetails:
		if d.mode == "" {
			return ErrNoModeSelected
		}
	}
	return nil
}

// Advance moves the draft to the next step when its gate allows it.
func (d *Draft) Advance() error {
	if err := d.CanAdvance(); err != nil {
		return err
	}
	if d.step < StepReview {
		d.step++
	}
	return nil
}

// Back moves the draft to the previous step. Already at the first step
// is a no-op.
func (d *Draft) Back() {
	if d.step > StepGoals {
		d.step--
	}
}

// Launch validates the completed draft and produces the snapshot handed
// to campaign creation. The draft itself is left untouched so a failed
// launch can be corrected and retried.
func (d *Draft) Launch() (models.CampaignDraft, error) {
	if len(d.goals) == 0 {
		return models.CampaignDraft{}, ErrNoGoalSelected
	}
	if d.mode == "" {
		return models.CampaignDraft{}, ErrNoModeSelected
	}
	if d.title == "" {
		return models.CampaignDraft{}, ErrTitleRequired
	}

	snapshot := models.CampaignDraft{
		Mode:              d.mode,
		Title:             d.title,
		Goals:             append([]models.CampaignGoal(nil), d.goals...),
		ContentFormats:    append([]models.ContentFormat(nil), d.contentFormats...),
		Compensations:     append([]models.CompensationConfig(nil), d.compensations...),
		Description:       d.description,
		Obligations:       append([]models.Obligation(nil), d.obligations...),
		CustomObligations: append([]string(nil), d.customObligations...),
		ContentNiches:     append([]string(nil), d.contentNiches...),
		CreatorCount:      d.creatorCount,
		BudgetType:        d.budgetType,
		BudgetCap:         d.budgetCap,
	}
	return snapshot, nil
}
