package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/DhavalSuthar-24/crease/internal/broadcast"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

// session is the scorer's state for one match. Its mutex serializes every
// write to that match.
type session struct {
	mu  sync.Mutex
	ctx scoring.Context
	// fresh is set until the context has been derived from a stored document.
	fresh bool
}

// ScoringService applies scoring events to stored matches: one writer per
// match, persist the full next document, then publish it.
type ScoringService struct {
	repo      MatchRepository
	publisher broadcast.Publisher

	mu       sync.Mutex
	sessions map[string]*session
}

func NewScoringService(repo MatchRepository, publisher broadcast.Publisher) *ScoringService {
	if publisher == nil {
		publisher = broadcast.Nop{}
	}
	return &ScoringService{
		repo:      repo,
		publisher: publisher,
		sessions:  make(map[string]*session),
	}
}

func (s *ScoringService) session(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{fresh: true}
		s.sessions[id] = sess
	}
	return sess
}

// load fetches the stored match and, for a new session, seeds the context
// from it. Callers hold sess.mu.
func (s *ScoringService) load(ctx context.Context, id string, sess *session) (*scoring.Match, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.fresh {
		sess.ctx = scoring.ContextFrom(*m)
		sess.fresh = false
	}
	return m, nil
}

// Result is what a scoring call hands back to the admin.
type Result struct {
	Match   scoring.Match    `json:"match"`
	Context scoring.Context  `json:"context"`
	Signals []scoring.Signal `json:"signals"`
}

// Apply runs ev against match id and persists the result. Events that only
// move the run-out state touch no stored data.
func (s *ScoringService) Apply(ctx context.Context, id string, ev scoring.Event) (*Result, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	m, err := s.load(ctx, id, sess)
	if err != nil {
		return nil, err
	}

	out, err := scoring.Apply(*m, ev, sess.ctx)
	if err != nil {
		log.Printf("match: %s rejected for %s: %v", ev.Kind(), id, err)
		return nil, err
	}
	res := &Result{Match: out.Match, Context: out.Context, Signals: out.Signals}
	if res.Signals == nil {
		res.Signals = []scoring.Signal{}
	}

	if stateOnly(ev) {
		sess.ctx = out.Context
		return res, nil
	}

	if err := s.persist(ctx, sess, &res.Match); err != nil {
		return nil, err
	}
	sess.ctx = out.Context
	return res, nil
}

// stateOnly reports events the engine handles without touching the document.
func stateOnly(ev scoring.Event) bool {
	switch ev.(type) {
	case scoring.RunOutStriker, scoring.RunOutNonStriker, scoring.RunOutFielder, scoring.CancelRunOut:
		return true
	}
	return false
}

// Undo restores the previous snapshot of match id.
func (s *ScoringService) Undo(ctx context.Context, id string) (*Result, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	m, err := s.load(ctx, id, sess)
	if err != nil {
		return nil, err
	}
	restored, sc, err := scoring.Undo(*m)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, sess, &restored); err != nil {
		return nil, err
	}
	sess.ctx = sc
	return &Result{Match: restored, Context: sc, Signals: []scoring.Signal{}}, nil
}

// Replace stores a whole document sent by the admin, validating its fixed
// facts first. Completed matches are final. A document sent without history
// keeps the stored undo buffer. The scoring context is rebuilt from the new
// document.
func (s *ScoringService) Replace(ctx context.Context, m *scoring.Match) error {
	if err := scoring.ValidateLineup(*m); err != nil {
		return err
	}
	sess := s.session(m.ID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	stored, err := s.load(ctx, m.ID, sess)
	if err != nil {
		return err
	}
	if stored.Status == scoring.StatusCompleted {
		return scoring.ErrMatchCompleted
	}
	if m.History == nil {
		m.History = stored.History
	}

	if err := s.persist(ctx, sess, m); err != nil {
		return err
	}
	sess.ctx = scoring.ContextFrom(*m)
	sess.fresh = false
	return nil
}

// Create stores a new match and announces it.
func (s *ScoringService) Create(ctx context.Context, m *scoring.Match) error {
	if err := scoring.ValidateLineup(*m); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return fmt.Errorf("storing match: %w", err)
	}
	s.publish(ctx, broadcast.MatchUpdate(*m))
	return nil
}

// Delete removes match id and forgets its session.
func (s *ScoringService) Delete(ctx context.Context, id string) error {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	s.publish(ctx, broadcast.MatchDeleted(id))
	return nil
}

// Context returns the scorer's current session state for match id.
func (s *ScoringService) Context(ctx context.Context, id string) (scoring.Context, error) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, err := s.load(ctx, id, sess); err != nil {
		return scoring.Context{}, err
	}
	return sess.ctx, nil
}

// persist writes next and publishes it. When the write fails the session is
// rebuilt from the stored document and the event is not retried.
func (s *ScoringService) persist(ctx context.Context, sess *session, next *scoring.Match) error {
	if err := s.repo.Replace(ctx, next); err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			return err
		}
		log.Printf("match: persisting %s failed, reloading: %v", next.ID, err)
		if stored, gerr := s.repo.Get(ctx, next.ID); gerr == nil {
			sess.ctx = scoring.ContextFrom(*stored)
		} else {
			sess.fresh = true
		}
		return &PersistError{MatchID: next.ID, Err: err}
	}
	s.publish(ctx, broadcast.MatchUpdate(*next))
	return nil
}

func (s *ScoringService) publish(ctx context.Context, msg broadcast.Message) {
	if err := s.publisher.Publish(ctx, msg); err != nil {
		log.Printf("match: broadcasting %s for %s: %v", msg.Type, msg.MatchID, err)
	}
}

// PersistError reports a scoring change the store did not accept. The
// stored document is unchanged.
type PersistError struct {
	MatchID string
	Err     error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving match %s: %v", e.MatchID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
