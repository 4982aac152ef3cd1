package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/render"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultMaxSessions caps a Store whose Options leave MaxSessions unset.
const DefaultMaxSessions = 10000

// Options configures a Store. Zero values get defaults.
type Options struct {
	TTL time.Duration
	// MaxSessions bounds the live sessions; starting one more ends the
	// session that has been idle the longest.
	MaxSessions     int
	DefaultTemplate render.TemplateID
	IDs             model.IDGenerator
	Composer        *preview.Composer
	Logger          *slog.Logger
	Now             func() time.Time
}

// Store maps session ids to sessions and ends sessions that sit idle for
// longer than the TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	opts     Options
	log      *slog.Logger
}

func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = 2 * time.Hour
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	opts.DefaultTemplate = render.Resolve(string(opts.DefaultTemplate))
	if opts.IDs == nil {
		opts.IDs = model.NewID
	}
	if opts.Composer == nil {
		opts.Composer = preview.NewComposer(render.MustNew())
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		log:      opts.Logger.With("component", "session_store"),
	}
}

// Get returns the live session with the given id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Acquire returns the session with the given id, starting a fresh one when
// the id is unknown or empty. The returned session's ID may differ from id.
func (s *Store) Acquire(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok && id != "" {
		return sess
	}
	if len(s.sessions) >= s.opts.MaxSessions {
		s.dropOldest()
	}
	sess := newSession(uuid.NewString(), s.opts.DefaultTemplate, s.opts.IDs, s.opts.Composer, s.opts.Now)
	s.sessions[sess.ID] = sess
	s.log.Debug("session started", "session_id", sess.ID)
	return sess
}

// dropOldest ends the least recently used session. s.mu must be held.
func (s *Store) dropOldest() {
	now := s.opts.Now()
	var (
		oldest string
		idle   time.Duration = -1
	)
	for id, sess := range s.sessions {
		if d := sess.idleSince(now); d > idle {
			oldest, idle = id, d
		}
	}
	if idle < 0 {
		return
	}
	delete(s.sessions, oldest)
	s.log.Warn("session limit reached, dropped least recently used session",
		"session_id", oldest, "idle", idle, "max", s.opts.MaxSessions)
}

// End tears a session down. Its record is discarded.
func (s *Store) End(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		s.log.Debug("session ended", "session_id", id)
	}
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict ends every session idle for longer than the TTL and returns how
// many were removed.
func (s *Store) Evict() int {
	now := s.opts.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.opts.TTL {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.Info("evicted idle sessions", "count", n, "remaining", len(s.sessions))
	}
	return n
}

// Run evicts idle sessions periodically until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	interval := s.opts.TTL / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict()
		}
	}
}
