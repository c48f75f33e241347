// AngelaMos | 2026
// countdown.go

package session

import (
	"context"
	"sync"
	"time"
)

// Countdown is a background task that calls tick at a fixed interval until
// tick reports it is finished, the parent context ends, or Stop is called.
type Countdown struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func StartCountdown(
	parent context.Context,
	interval time.Duration,
	clock func() time.Time,
	tick func(at time.Time) (finished bool),
) *Countdown {
	ctx, cancel := context.WithCancel(parent)
	c := &Countdown{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go c.run(ctx, interval, clock, tick)

	return c
}

func (c *Countdown) run(
	ctx context.Context,
	interval time.Duration,
	clock func() time.Time,
	tick func(at time.Time) bool,
) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if tick(clock()) {
				return
			}
		}
	}
}

// Stop cancels the task and waits for it to exit. Safe to call repeatedly,
// but never from inside tick.
func (c *Countdown) Stop() {
	c.once.Do(c.cancel)
	<-c.done
}

func (c *Countdown) Done() <-chan struct{} {
	return c.done
}
