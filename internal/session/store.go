// Package session keeps the in-memory builder sessions served over HTTP.
package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrSessionNotFound is returned when a session id is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's builder plus bookkeeping.
type Session struct {
	ID        string
	Builder   *builder.Builder
	CreatedAt time.Time

	mu         sync.Mutex
	lastAccess time.Time
}

// LastAccess returns when the session was last fetched.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

// Config controls session expiry.
type Config struct {
	TTL           time.Duration // idle time before a session is dropped; 0 disables expiry
	SweepInterval time.Duration // how often expired sessions are removed; 0 disables the sweeper
}

// Store holds sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      Config
	ids      editor.IDGenerator
	now      func() time.Time

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// NewStore creates a store and starts the sweeper when configured.
// ids is shared by every session's editors; nil means random UUIDs.
func NewStore(cfg Config, ids editor.IDGenerator) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		ids:      ids,
		now:      time.Now,
	}
	if cfg.TTL > 0 && cfg.SweepInterval > 0 {
		s.sweepTicker = time.NewTicker(cfg.SweepInterval)
		s.sweepStop = make(chan struct{})
		go s.sweep()
	}
	return s
}

// Create starts a session on an empty record.
func (s *Store) Create() *Session {
	return s.CreateFrom(types.NewResumeData())
}

// CreateFrom starts a session on a copy of data.
func (s *Store) CreateFrom(data types.ResumeData) *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.NewString(),
		Builder:    builder.NewFrom(data, editor.New(s.ids)),
		CreatedAt:  now,
		lastAccess: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session and refreshes its idle timer.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if s.expired(sess, now) {
		s.Delete(id)
		return nil, ErrSessionNotFound
	}
	sess.touch(now)
	return sess, nil
}

// Exists reports whether id names a live session without refreshing its idle timer.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return ok && !s.expired(sess, s.now())
}

// Delete removes the session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.cfg.TTL > 0 && now.Sub(sess.LastAccess()) > s.cfg.TTL
}

func (s *Store) sweep() {
	for {
		select {
		case <-s.sweepTicker.C:
			if n := s.removeExpired(); n > 0 {
				log.Printf("[session] Removed %d expired session(s)", n)
			}
		case <-s.sweepStop:
			return
		}
	}
}

// removeExpired drops idle sessions and returns how many were removed.
func (s *Store) removeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Stop stops the sweeper. It is safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		if s.sweepTicker != nil {
			s.sweepTicker.Stop()
		}
		if s.sweepStop != nil {
			close(s.sweepStop)
		}
	})
}
