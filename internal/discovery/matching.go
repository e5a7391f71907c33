package discovery

import (
	"context"
	"sync"
	"time"
)

// MatchingStage is one labeled phase of the matching progress animation.
// A stage is active while progress is at or below its threshold.
type MatchingStage struct {
	Threshold int    `json:"threshold"`
	Label     string `json:"label"`
}

// MatchingConfig controls the cadence of the matching progress run.
type MatchingConfig struct {
	// TickInterval is the wall-clock time between progress increments.
	TickInterval time.Duration
	// CompletionDelay is the pause between reaching full progress and
	// advancing to creator selection.
	CompletionDelay time.Duration
	// Stages are the labeled phases, ordered by ascending threshold. The
	// final stage must have threshold 100.
	Stages []MatchingStage
}

// DefaultMatchingConfig returns the standard five-stage cadence.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		TickInterval:    220 * time.Millisecond,
		CompletionDelay: 600 * time.Millisecond,
		Stages: []MatchingStage{
			{Threshold: 20, Label: "Analyzing campaign goals"},
			{Threshold: 40, Label: "Scanning creator profiles"},
			{Threshold: 60, Label: "Evaluating audience fit"},
			{Threshold: 85, Label: "Scoring engagement quality"},
			{Threshold: 100, Label: "Ranking your matches"},
		},
	}
}

// MatchingRun is the deterministic progress simulation behind the
// "AI matching" screen. It is purely cosmetic: progress moves forward on
// a fixed cadence with no real computation behind it, and its only
// externally observable effect is the completion callback. Tests drive
// it through Tick directly instead of waiting on wall-clock timers.
type MatchingRun struct {
	mu       sync.Mutex
	cfg      MatchingConfig
	progress int
	done     bool
}

// NewMatchingRun creates a run at zero progress.
func NewMatchingRun(cfg MatchingConfig) *MatchingRun {
	if len(cfg.Stages) == 0 {
		cfg = DefaultMatchingConfig()
	}
	return &MatchingRun{cfg: cfg}
}

// Tick advances progress by one and reports whether the run just
// completed. Ticking a completed run is a no-op.
func (m *MatchingRun) Tick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return false
	}
	m.progress++
	if m.progress >= 100 {
		m.progress = 100
		m.done = true
		return true
	}
	return false
}

// Progress returns the current progress between 0 and 100.
func (m *MatchingRun) Progress() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

// Done reports whether the run has reached full progress.
func (m *MatchingRun) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Stage returns the stage label active at the current progress.
func (m *MatchingRun) Stage() MatchingStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stage := range m.cfg.Stages {
		if m.progress <= stage.Threshold {
			return stage
		}
	}
	return m.cfg.Stages[len(m.cfg.Stages)-1]
}

// Run drives the progress animation off a real ticker until completion
// or context cancellation, then waits the completion delay and invokes
// onComplete. The caller owns the context; cancelling it stops the run
// with no callback, which is how a torn-down view cleans up its timer.
func (m *MatchingRun) Run(ctx context.Context, onComplete func()) {
	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.Tick() {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.cfg.CompletionDelay):
			}
			if onComplete != nil {
				onComplete()
			}
			return
		}
	}
}
