// AngelaMos | 2026
// repository.go

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type Repository interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Len() int
}

type StoreConfig struct {
	Session         Options
	IdleTTL         time.Duration
	MaxSessions     int
	JanitorSchedule string
}

// Store keeps sessions in process memory. Nothing outlives the process.
type Store struct {
	cfg    StoreConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool

	janitor *cron.Cron
}

func NewStore(cfg StoreConfig) *Store {
	cfg.Session = cfg.Session.withDefaults()

	return &Store{
		cfg:      cfg,
		logger:   cfg.Session.Logger,
		sessions: make(map[string]*Session),
	}
}

// StartJanitor schedules idle eviction on the configured cron spec.
func (s *Store) StartJanitor() error {
	if s.cfg.JanitorSchedule == "" {
		return nil
	}

	c := cron.New()
	err := c.AddFunc(s.cfg.JanitorSchedule, func() {
		if n := s.EvictIdle(s.cfg.Session.Clock()); n > 0 {
			s.logger.Info("idle sessions evicted", "count", n)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule session janitor: %w", err)
	}

	c.Start()
	s.janitor = c
	return nil
}

func (s *Store) Create(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("create session: %w", core.ErrUnavailable)
	}

	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		return nil, fmt.Errorf(
			"create session: limit of %d reached: %w",
			s.cfg.MaxSessions,
			core.ErrUnavailable,
		)
	}

	sess := New(uuid.New().String(), s.cfg.Session)
	s.sessions[sess.ID()] = sess

	s.logger.InfoContext(ctx, "session created", "session_id", sess.ID())
	return sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || sess.Closed() {
		return nil, fmt.Errorf("get session %s: %w", id, core.ErrNotFound)
	}

	sess.Touch()
	return sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("delete session %s: %w", id, core.ErrNotFound)
	}

	sess.Close()
	s.logger.InfoContext(ctx, "session closed", "session_id", id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle closes sessions not seen since now minus the idle TTL.
func (s *Store) EvictIdle(now time.Time) int {
	cutoff := now.Add(-s.cfg.IdleTTL)

	var stale []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Close()
		s.logger.Debug("session evicted", "session_id", sess.ID())
	}

	return len(stale)
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("session store closed: %w", core.ErrUnavailable)
	}
	return nil
}

// Close stops the janitor and tears down every live session.
func (s *Store) Close() {
	if s.janitor != nil {
		s.janitor.Stop()
	}

	s.mu.Lock()
	s.closed = true
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

var _ Repository = (*Store)(nil)
