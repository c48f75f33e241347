// AngelaMos | 2026
// session_test.go

package session

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/carterperez-dev/meucorpo/internal/catalog"
)

// stepClock advances by step on every read, so each countdown tick looks like
// a new real-world day.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSession_CountdownReachesZeroAndStops(t *testing.T) {
	clock := &stepClock{now: epoch, step: TrialDay}
	s := New("s1", Options{
		TrialDays:    3,
		TickInterval: time.Millisecond,
		Clock:        clock.Now,
		Logger:       quietLogger(),
	})
	defer s.Close()

	waitFor(t, "trial to expire", func() bool {
		return s.Snapshot().Subscription.TrialDaysRemaining == 0
	})

	select {
	case <-s.countdown.Done():
	case <-time.After(time.Second):
		t.Fatal("countdown still running after trial expired")
	}
}

func TestSession_SubscribeStopsCountdown(t *testing.T) {
	s := New("s1", Options{
		TrialDays:    7,
		TickInterval: time.Hour,
		Logger:       quietLogger(),
	})
	defer s.Close()

	state, err := s.Dispatch(Subscribe{Plan: catalog.PlanMonthly})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !state.Subscription.IsPremium {
		t.Fatal("Subscribe did not set premium")
	}

	select {
	case <-s.countdown.Done():
	default:
		t.Error("countdown still running after Subscribe returned")
	}

	if _, err := s.Dispatch(Subscribe{Plan: catalog.PlanAnnual}); err != nil {
		t.Errorf("second Subscribe error = %v", err)
	}
}

func TestSession_CloseTearsDownTimers(t *testing.T) {
	s := New("s1", Options{
		TrialDays:        7,
		TickInterval:     time.Hour,
		CopiedResetDelay: time.Hour,
		Logger:           quietLogger(),
	})

	if _, err := s.MarkCopied(); err != nil {
		t.Fatalf("MarkCopied() error = %v", err)
	}

	s.Close()
	s.Close()

	select {
	case <-s.countdown.Done():
	default:
		t.Error("countdown still running after Close")
	}

	if _, err := s.Dispatch(DismissTrialBanner{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Dispatch after Close error = %v, want ErrClosed", err)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestSession_NoCountdownWithoutTrial(t *testing.T) {
	s := New("s1", Options{TrialDays: 0, Logger: quietLogger()})
	defer s.Close()

	if s.countdown != nil {
		t.Error("countdown started with no trial days")
	}
}

func TestSession_CopiedFlagAutoClears(t *testing.T) {
	s := New("s1", Options{
		TrialDays:        7,
		CopiedResetDelay: 20 * time.Millisecond,
		Logger:           quietLogger(),
	})
	defer s.Close()

	state, err := s.MarkCopied()
	if err != nil {
		t.Fatalf("MarkCopied() error = %v", err)
	}
	if !state.UI.Copied {
		t.Fatal("MarkCopied did not raise the flag")
	}

	waitFor(t, "copied flag to clear", func() bool {
		return !s.Snapshot().UI.Copied
	})
}

func TestSession_ConcurrentToggles(t *testing.T) {
	s := New("s1", Options{TrialDays: 7, Logger: quietLogger()})
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			//nolint:errcheck // session stays open for the test
			_, _ = s.Dispatch(ToggleWorkout{WorkoutID: 2})
		}()
	}
	wg.Wait()

	if s.Snapshot().Completed.Has(2) {
		t.Error("an even number of toggles left workout 2 complete")
	}
}
