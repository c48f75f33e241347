// AngelaMos | 2026
// session.go

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrClosed = errors.New("session closed")

type Options struct {
	TrialDays        int
	TickInterval     time.Duration
	CopiedResetDelay time.Duration
	Clock            func() time.Time
	Logger           *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = TrialDay
	}
	if o.CopiedResetDelay <= 0 {
		o.CopiedResetDelay = 2 * time.Second
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Session owns one dashboard's state and the timers scoped to it. All state
// changes go through Dispatch, one at a time.
type Session struct {
	id   string
	opts Options

	mu        sync.Mutex
	state     State
	lastSeen  time.Time
	closed    bool
	copyTimer *time.Timer

	countdown *Countdown
}

func New(id string, opts Options) *Session {
	opts = opts.withDefaults()
	now := opts.Clock()

	s := &Session{
		id:       id,
		opts:     opts,
		state:    NewState(opts.TrialDays, now),
		lastSeen: now,
	}

	if s.state.TrialActive() {
		s.countdown = StartCountdown(
			context.Background(),
			opts.TickInterval,
			opts.Clock,
			s.onTrialTick,
		)
	}

	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.opts.Clock()
	s.mu.Unlock()
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies a to the current state and returns the result.
func (s *Session) Dispatch(a Action) (State, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrClosed
	}

	wasActive := s.state.TrialActive()
	s.state = Reduce(s.state, a)
	s.lastSeen = s.opts.Clock()
	next := s.state.clone()
	s.mu.Unlock()

	s.opts.Logger.Debug("session action applied",
		"session_id", s.id,
		"action", a.actionName(),
	)

	if wasActive && !next.TrialActive() && s.countdown != nil {
		s.countdown.Stop()
	}

	return next, nil
}

// MarkCopied raises the copied flag and schedules it to clear after the
// configured delay. A later copy restarts the window.
func (s *Session) MarkCopied() (State, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrClosed
	}

	s.state = Reduce(s.state, MarkCopied{})
	s.lastSeen = s.opts.Clock()
	gen := s.state.UI.CopyGeneration

	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.copyTimer = time.AfterFunc(s.opts.CopiedResetDelay, func() {
		//nolint:errcheck // session may already be closed
		_, _ = s.Dispatch(ClearCopied{Generation: gen})
	})

	next := s.state.clone()
	s.mu.Unlock()

	return next, nil
}

func (s *Session) onTrialTick(at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}

	before := s.state.Subscription.TrialDaysRemaining
	s.state = Reduce(s.state, TrialTick{At: at})

	if after := s.state.Subscription.TrialDaysRemaining; after != before {
		s.opts.Logger.Debug("trial day elapsed",
			"session_id", s.id,
			"days_remaining", after,
		)
	}

	return !s.state.TrialActive()
}

// Close stops every timer the session owns. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.mu.Unlock()

	if s.countdown != nil {
		s.countdown.Stop()
	}
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
