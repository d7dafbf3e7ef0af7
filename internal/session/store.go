package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
)

// Store is the single source of truth for "who is signed in". All durable
// session state flows through it: mutations write to Storage first, then
// notify subscribers synchronously in registration order. One Store is
// constructed at application start and shared by reference.
type Store struct {
	storage Storage
	nav     Navigator
	log     *zap.Logger

	mu      sync.Mutex
	token   string
	user    *User
	gen     uint64
	subs    []*subscription
	nextSub int
}

type subscription struct {
	id     int
	fn     func(*User)
	active atomic.Bool
}

// NewStore loads the last persisted session from storage. A malformed stored
// user record degrades to an absent user; it never fails construction. Token
// handling stays independent of the user record.
func NewStore(ctx context.Context, storage Storage, nav Navigator, log *zap.Logger) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{storage: storage, nav: nav, log: log}

	token, err := storage.ReadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored token: %w", err)
	}
	s.token = token

	raw, err := storage.ReadUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored user: %w", err)
	}
	if len(raw) > 0 {
		var u User
		if err := json.Unmarshal(raw, &u); err != nil {
			log.Warn("stored user record is malformed, treating as signed out", zap.Error(err))
		} else {
			s.user = &u
		}
	}

	return s, nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a token is present. It does not imply the
// token is still valid server-side.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Role returns the current user's role, ok=false when no user is present.
func (s *Store) Role() (enums.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return "", false
	}
	return s.user.Role, true
}

// Generation is a monotonic counter bumped on every session create/destroy.
// Callers capture it before a network round-trip and pass it back to
// SaveSessionIfCurrent to fence stale completions.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Subscribe registers an observer invoked synchronously on every user change,
// including the transition to signed-out (nil). The returned cancel func
// removes only this observer. An observer added during a notification round
// does not see that round.
func (s *Store) Subscribe(fn func(*User)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{id: s.nextSub, fn: fn}
	sub.active.Store(true)
	s.nextSub++
	s.subs = append(s.subs, sub)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.active.Store(false)
		for i, candidate := range s.subs {
			if candidate.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// SaveSession persists token and user together, replacing any prior session,
// then notifies subscribers with the new user.
func (s *Store) SaveSession(ctx context.Context, token string, user User) error {
	return s.saveSession(ctx, token, user, nil)
}

// SaveSessionIfCurrent behaves like SaveSession but refuses the write when
// the session generation moved past gen, so a login response arriving after
// a logout cannot resurrect the cleared session.
func (s *Store) SaveSessionIfCurrent(ctx context.Context, token string, user User, gen uint64) error {
	return s.saveSession(ctx, token, user, &gen)
}

func (s *Store) saveSession(ctx context.Context, token string, user User, fence *uint64) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	if fence != nil && *fence != s.gen {
		s.mu.Unlock()
		return ErrStaleGeneration
	}
	if err := s.storage.WriteSession(ctx, token, raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	u := user
	s.user = &u
	s.gen++
	observers := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(observers, &user)
	return nil
}

// UpdateUser persists a refreshed user record without touching the token.
func (s *Store) UpdateUser(ctx context.Context, user User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return ErrNoSession
	}
	if err := s.storage.WriteUser(ctx, raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist user: %w", err)
	}
	u := user
	s.user = &u
	observers := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(observers, &user)
	return nil
}

// ClearSession destroys the session: durable storage first, then a nil
// notification, then the login redirect. Clearing an already-cleared session
// is a no-op, so concurrent 401 reactions collapse into a single clear.
func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	if s.token == "" && s.user == nil {
		s.mu.Unlock()
		return nil
	}
	if err := s.storage.Clear(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("clear session storage: %w", err)
	}
	s.token = ""
	s.user = nil
	s.gen++
	observers := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(observers, nil)
	if s.nav != nil {
		s.nav.NavigateToLogin()
	}
	return nil
}

func (s *Store) snapshotLocked() []*subscription {
	observers := make([]*subscription, len(s.subs))
	copy(observers, s.subs)
	return observers
}

func (s *Store) notify(observers []*subscription, user *User) {
	for _, sub := range observers {
		if sub.active.Load() {
			sub.fn(user)
		}
	}
}
