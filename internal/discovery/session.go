// Package discovery implements the find-talent flow: a one-shot matching
// animation, creator selection over a fixed candidate pool, and the
// handoff into campaign management.
package discovery

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

// Phase is the find-talent flow's current screen. Phases only move
// forward; matching is a one-shot scripted sequence and cannot be
// re-entered once left.
type Phase string

// enum values for Phase
const (
	PhaseMatching Phase = "ai_matching"
	PhaseSelect   Phase = "select_creators"
	PhaseManage   Phase = "manage"
)

var (
	// ErrWrongPhase is returned for an action outside its phase.
	ErrWrongPhase = errors.New("action not available in current phase")
	// ErrNoSelection blocks advancing to management with nobody selected.
	ErrNoSelection = errors.New("select at least one creator")
	// ErrCreatorNotFound is returned when viewing an unknown creator.
	ErrCreatorNotFound = errors.New("creator not in candidate pool")
)

// Option configures a Session.
type Option func(*Session)

// WithClock injects the time source used for roster due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithMatchingConfig overrides the matching animation cadence.
func WithMatchingConfig(cfg MatchingConfig) Option {
	return func(s *Session) { s.matchingCfg = cfg }
}

// WithSeeder injects the submission seeding strategy applied when the
// roster is built. Defaults to no seeding.
func WithSeeder(seeder SubmissionSeeder) Option {
	return func(s *Session) { s.seeder = seeder }
}

// Session owns one brand's pass through the find-talent flow. The
// candidate pool is loaded once and never mutated; selection tracks
// creator IDs in the order they were picked.
type Session struct {
	mu sync.Mutex

	phase         Phase
	pool          []models.DiscoverableCreator
	poolByID      map[string]int
	selectedOrder []string
	selected      map[string]bool

	matchingCfg MatchingConfig
	run         *MatchingRun
	cancelRun   context.CancelFunc

	roster *management.Roster
	seeder SubmissionSeeder
	now    func() time.Time
}

// NewSession creates a session over the given candidate pool, positioned
// on the matching phase.
func NewSession(pool []models.DiscoverableCreator, opts ...Option) *Session {
	s := &Session{
		phase:       PhaseMatching,
		pool:        pool,
		poolByID:    make(map[string]int, len(pool)),
		selected:    make(map[string]bool),
		matchingCfg: DefaultMatchingConfig(),
		now:         time.Now,
	}
	for i, c := range pool {
		s.poolByID[c.ID] = i
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase returns the flow's current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Pool returns the full candidate pool.
func (s *Session) Pool() []models.DiscoverableCreator {
	return s.pool
}

// StartMatching begins the matching animation, cancelling any run still
// outstanding so only one timer ever feeds the session. When the run
// completes the session advances to creator selection on its own.
func (s *Session) StartMatching(ctx context.Context) *MatchingRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseMatching {
		return nil
	}
	if s.cancelRun != nil {
		s.cancelRun()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelRun = cancel
	s.run = NewMatchingRun(s.matchingCfg)
	go s.run.Run(runCtx, s.CompleteMatching)
	return s.run
}

// MatchingRun returns the current matching run, nil before StartMatching.
func (s *Session) MatchingRun() *MatchingRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run
}

// CompleteMatching moves the session from matching to creator selection.
// Called by the matching run on completion; calling it in any later
// phase is a no-op, and matching can never be re-entered.
func (s *Session) CompleteMatching() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseMatching {
		s.phase = PhaseSelect
	}
}

// Close cancels any outstanding matching timer. Safe to call repeatedly.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelRun != nil {
		s.cancelRun()
		s.cancelRun = nil
	}
}

// ToggleSelect flips a creator in or out of the selection. Unknown IDs
// are ignored; selection order is preserved for the management handoff.
func (s *Session) ToggleSelect(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelect {
		return ErrWrongPhase
	}
	if _, ok := s.poolByID[id]; !ok {
		return nil
	}
	if s.selected[id] {
		delete(s.selected, id)
		for i, sid := range s.selectedOrder {
			if sid == id {
				s.selectedOrder = append(s.selectedOrder[:i], s.selectedOrder[i+1:]...)
				break
			}
		}
		return nil
	}
	s.selected[id] = true
	s.selectedOrder = append(s.selectedOrder, id)
	return nil
}

// SelectAll selects every candidate not yet selected, in pool order.
func (s *Session) SelectAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelect {
		return ErrWrongPhase
	}
	for _, c := range s.pool {
		if !s.selected[c.ID] {
			s.selected[c.ID] = true
			s.selectedOrder = append(s.selectedOrder, c.ID)
		}
	}
	return nil
}

// DeselectAll clears the selection.
func (s *Session) DeselectAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelect {
		return ErrWrongPhase
	}
	s.selected = make(map[string]bool)
	s.selectedOrder = nil
	return nil
}

// IsSelected reports whether a creator is currently selected.
func (s *Session) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected[id]
}

// Selected returns the selected creators in selection order.
func (s *Session) Selected() []models.DiscoverableCreator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Session) selectedLocked() []models.DiscoverableCreator {
	out := make([]models.DiscoverableCreator, 0, len(s.selectedOrder))
	for _, id := range s.selectedOrder {
		out = append(out, s.pool[s.poolByID[id]])
	}
	return out
}

// CreatorDetail returns the read-only detail view of one candidate.
// Viewing a profile changes no session state.
func (s *Session) CreatorDetail(id string) (models.DiscoverableCreator, error) {
	i, ok := s.poolByID[id]
	if !ok {
		return models.DiscoverableCreator{}, ErrCreatorNotFound
	}
	return s.pool[i], nil
}

// AdvanceToManage moves the flow into campaign management, building the
// roster from the selection in selection order and applying the
// configured submission seeder. Requires at least one selected creator.
func (s *Session) AdvanceToManage() (*management.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelect {
		return nil, ErrWrongPhase
	}
	if len(s.selectedOrder) == 0 {
		return nil, ErrNoSelection
	}

	s.roster = management.NewRoster(s.selectedLocked(), s.now)
	if s.seeder != nil {
		s.seeder.Seed(s.roster)
	}
	s.phase = PhaseManage
	return s.roster, nil
}

// Roster returns the management roster, nil before AdvanceToManage.
func (s *Session) Roster() *management.Roster {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster
}
