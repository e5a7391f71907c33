package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/discovery"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/management"
	"github.com/juliabenable/vibe-coding-Brand-Project-1-repo-sub000/internal/models"
)

var (
	// ErrSessionNotFound is returned for unknown talent session IDs.
	// Sessions are process-local and do not survive a restart, so client
	// retries after a deploy land here.
	ErrSessionNotFound = errors.New("talent session not found")
	// ErrUnknownAction is returned for an unrecognized roster action.
	ErrUnknownAction = errors.New("unknown roster action")
	// ErrUnknownSelectionOp is returned for an unrecognized selection op.
	ErrUnknownSelectionOp = errors.New("unknown selection op")
	// ErrNoRoster is returned for roster actions before management phase.
	ErrNoRoster = errors.New("session has no roster yet")
)

// RosterActionName identifies one brand action on the managed roster.
type RosterActionName string

// enum values for RosterActionName
const (
	ActionInvite             RosterActionName = "invite"
	ActionInviteAll          RosterActionName = "invite_all"
	ActionSendReminder       RosterActionName = "send_reminder"
	ActionChangeStatus       RosterActionName = "change_status"
	ActionApproveContent     RosterActionName = "approve_content"
	ActionRequestRevision    RosterActionName = "request_revision"
	ActionMarkAsPosted       RosterActionName = "mark_as_posted"
	ActionSendKudos          RosterActionName = "send_kudos"
	ActionUpdateCompensation RosterActionName = "update_compensation"
	ActionUpdateDueDate      RosterActionName = "update_due_date"
)

// RosterAction is one management action dispatched by the brand UI.
// Only the fields the named action needs are read.
type RosterAction struct {
	Action           RosterActionName        `json:"action"`
	CreatorID        string                  `json:"creator_id,omitempty"`
	Comment          string                  `json:"comment,omitempty"`
	Status           management.InviteStatus `json:"status,omitempty"`
	CompensationType models.CompensationType `json:"compensation_type,omitempty"`
	DueDate          time.Time               `json:"due_date,omitempty"`
}

// SelectionUpdate is one change to the discovery selection.
type SelectionUpdate struct {
	// Op is "toggle", "select_all" or "deselect_all".
	Op        string `json:"op"`
	CreatorID string `json:"creator_id,omitempty"`
}

// SessionView is the client-facing projection of a talent session.
type SessionView struct {
	ID            string                         `json:"id"`
	Phase         discovery.Phase                `json:"phase"`
	Progress      int                            `json:"progress"`
	Stage         string                         `json:"stage,omitempty"`
	Pool          []models.CreatorCard           `json:"pool,omitempty"`
	SelectedIDs   []string                       `json:"selected_ids,omitempty"`
	Roster        []management.ManagedCreator    `json:"roster,omitempty"`
	Grouped       map[management.Bucket][]string `json:"grouped,omitempty"`
	RevisionDraft map[string]string              `json:"revision_drafts,omitempty"`
}

// TalentService owns the in-memory find-talent sessions. One session is
// one brand's pass through matching, selection and management.
type TalentService interface {
	StartSession(ctx context.Context) (SessionView, error)
	GetSession(ctx context.Context, id string) (SessionView, error)
	UpdateSelection(ctx context.Context, id string, update SelectionUpdate) (SessionView, error)
	AdvanceSession(ctx context.Context, id string) (SessionView, error)
	ApplyRosterAction(ctx context.Context, id string, action RosterAction) (SessionView, error)
	CloseSession(ctx context.Context, id string) error
}

// talentSession pairs a discovery session with its lifecycle context so
// closing the session cancels its matching timer.
type talentSession struct {
	session *discovery.Session
	cancel  context.CancelFunc
}

type talentService struct {
	directory CreatorDirectory
	opts      []discovery.Option
	newID     func() string

	mu       sync.Mutex
	sessions map[string]*talentSession
}

// NewTalentService creates a talent service over the creator directory.
// Discovery options (clock, matching cadence, seeder) apply to every
// session it starts.
func NewTalentService(directory CreatorDirectory, opts ...discovery.Option) TalentService {
	return &talentService{
		directory: directory,
		opts:      opts,
		newID:     func() string { return uuid.New().String() },
		sessions:  make(map[string]*talentSession),
	}
}

// StartSession loads the candidate pool and begins the matching
// animation for a new session.
func (s *talentService) StartSession(ctx context.Context) (SessionView, error) {
	pool, err := s.directory.ListCreators(ctx)
	if err != nil {
		return SessionView{}, ErrStorage
	}

	id := s.newID()
	session := discovery.NewSession(pool, s.opts...)

	// The matching run outlives the request; it is bound to the session
	// lifetime, not the request context.
	runCtx, cancel := context.WithCancel(context.Background())
	session.StartMatching(runCtx)

	s.mu.Lock()
	s.sessions[id] = &talentSession{session: session, cancel: cancel}
	s.mu.Unlock()

	return s.view(id, session), nil
}

// GetSession returns the current view of a session.
func (s *talentService) GetSession(ctx context.Context, id string) (SessionView, error) {
	session, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	return s.view(id, session.session), nil
}

// UpdateSelection applies one selection change during the select phase.
func (s *talentService) UpdateSelection(ctx context.Context, id string, update SelectionUpdate) (SessionView, error) {
	ts, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}

	switch update.Op {
	case "toggle":
		err = ts.session.ToggleSelect(update.CreatorID)
	case "select_all":
		err = ts.session.SelectAll()
	case "deselect_all":
		err = ts.session.DeselectAll()
	default:
		err = ErrUnknownSelectionOp
	}
	if err != nil {
		return SessionView{}, err
	}
	return s.view(id, ts.session), nil
}

// AdvanceSession moves a session from selection into management.
func (s *talentService) AdvanceSession(ctx context.Context, id string) (SessionView, error) {
	ts, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if _, err := ts.session.AdvanceToManage(); err != nil {
		return SessionView{}, err
	}
	return s.view(id, ts.session), nil
}

// ApplyRosterAction dispatches one management action on the roster.
func (s *talentService) ApplyRosterAction(ctx context.Context, id string, action RosterAction) (SessionView, error) {
	ts, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	roster := ts.session.Roster()
	if roster == nil {
		return SessionView{}, ErrNoRoster
	}

	switch action.Action {
	case ActionInvite:
		err = roster.InviteOne(action.CreatorID)
	case ActionInviteAll:
		roster.InviteAll()
	case ActionSendReminder:
		err = roster.SendReminder(action.CreatorID)
	case ActionChangeStatus:
		err = roster.ChangeStatus(action.CreatorID, action.Status)
	case ActionApproveContent:
		err = roster.ApproveContent(action.CreatorID)
	case ActionRequestRevision:
		err = roster.RequestRevision(action.CreatorID, action.Comment)
	case ActionMarkAsPosted:
		err = roster.MarkAsPosted(action.CreatorID)
	case ActionSendKudos:
		err = roster.SendKudos(action.CreatorID)
	case ActionUpdateCompensation:
		err = roster.UpdateCompensationType(action.CreatorID, action.CompensationType)
	case ActionUpdateDueDate:
		err = roster.UpdateDueDate(action.CreatorID, action.DueDate)
	default:
		err = ErrUnknownAction
	}
	if err != nil {
		return SessionView{}, err
	}
	return s.view(id, ts.session), nil
}

// CloseSession tears a session down, stopping its matching timer.
func (s *talentService) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	ts, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	ts.cancel()
	ts.session.Close()
	return nil
}

func (s *talentService) get(id string) (*talentSession, error) {
	s.mu.Lock()
	ts, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ts, nil
}

// view assembles the client projection of a session.
func (s *talentService) view(id string, session *discovery.Session) SessionView {
	v := SessionView{
		ID:    id,
		Phase: session.Phase(),
	}

	if run := session.MatchingRun(); run != nil {
		v.Progress = run.Progress()
		v.Stage = run.Stage().Label
	}

	pool := session.Pool()
	v.Pool = make([]models.CreatorCard, len(pool))
	for i := range pool {
		v.Pool[i] = pool[i].ToCard()
	}
	for _, c := range session.Selected() {
		v.SelectedIDs = append(v.SelectedIDs, c.ID)
	}

	if roster := session.Roster(); roster != nil {
		drafts := make(map[string]string)
		for _, mc := range roster.Creators() {
			v.Roster = append(v.Roster, *mc)
			if msg := management.RevisionMessage(mc); msg != "" {
				drafts[mc.Creator.ID] = msg
			}
		}
		if len(drafts) > 0 {
			v.RevisionDraft = drafts
		}
		v.Grouped = make(map[management.Bucket][]string)
		for bucket, creators := range roster.Grouped() {
			for _, mc := range creators {
				v.Grouped[bucket] = append(v.Grouped[bucket], mc.Creator.ID)
			}
		}
	}
	return v
}
