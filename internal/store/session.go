package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"homescan/internal/model"
)

// ErrAuth is returned when credential verification fails during login or
// signup.
var ErrAuth = errors.New("invalid credentials")

// Identity is the result of a successful credential verification.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Verifier checks credentials during login and signup. The default
// implementation never rejects non-empty credentials, but the interface
// lets a real backend do so.
type Verifier interface {
	Login(ctx context.Context, email, password string) (Identity, error)
	Signup(ctx context.Context, name, email, password string) (Identity, error)
}

// SessionStore owns the current session and persists it on every
// transition. All transitions are serialized by an internal mutex, so at
// most one is in flight at a time.
type SessionStore struct {
	mu       sync.Mutex
	engine   *Engine
	verifier Verifier
	loaded   bool
	session  model.Session
}

// NewSessionStore creates a session store backed by the given engine and
// verifier. The session starts unauthenticated until Load restores it.
func NewSessionStore(engine *Engine, verifier Verifier) *SessionStore {
	return &SessionStore{engine: engine, verifier: verifier}
}

// Load restores the persisted session. Absent or unreadable data leaves
// the session empty and unauthenticated. Idempotent.
func (s *SessionStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	data, err := s.engine.Load(ctx, AuthStorage)
	if err != nil {
		return err
	}
	if data != nil {
		var session model.Session
		if err := json.Unmarshal(data, &session); err != nil {
			slog.Warn("discarding unreadable session state", "error", err)
		} else {
			s.session = session
		}
	}
	s.loaded = true
	return nil
}

// Login verifies the credentials and transitions to an authenticated
// session. Empty inputs are a caller-side precondition, not enforced here.
func (s *SessionStore) Login(ctx context.Context, email, password string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.verifier.Login(ctx, email, password)
	if err != nil {
		return s.session, err
	}

	s.session = model.Session{
		UserID:          &id.UserID,
		Name:            &id.Name,
		Email:           &id.Email,
		IsAuthenticated: true,
	}
	return s.session, s.persist(ctx)
}

// Signup registers the credentials and transitions to a fresh
// authenticated session with the supplied name and email.
func (s *SessionStore) Signup(ctx context.Context, name, email, password string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.verifier.Signup(ctx, name, email, password)
	if err != nil {
		return s.session, err
	}

	s.session = model.Session{
		UserID:          &id.UserID,
		Name:            &id.Name,
		Email:           &id.Email,
		IsAuthenticated: true,
	}
	return s.session, s.persist(ctx)
}

// LoginAsGuest transitions to a guest session: usable, but with no
// identity and not authenticated.
func (s *SessionStore) LoginAsGuest(ctx context.Context) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Session{IsGuest: true}
	return s.session, s.persist(ctx)
}

// Logout resets to the empty unauthenticated session regardless of the
// prior mode.
func (s *SessionStore) Logout(ctx context.Context) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.Session{}
	return s.session, s.persist(ctx)
}

// Current returns a copy of the session for gating and rendering.
func (s *SessionStore) Current() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// persist writes the session under its storage name. On failure the
// in-memory session keeps the new value; memory and disk may disagree
// until the next successful save. Callers must hold the mutex.
func (s *SessionStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.session)
	if err != nil {
		return &PersistenceError{Collection: AuthStorage, Op: "encoding", Err: err}
	}
	return s.engine.Save(ctx, AuthStorage, data)
}
