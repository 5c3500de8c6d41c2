package exchange

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Throttler is a token bucket gating requests by cost
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	capacity float64
	tokens   float64
	last     time.Time
}

// NewThrottler returns a Throttler that refills one unit of cost per
// interval up to the burst capacity
func NewThrottler(interval time.Duration, capacity float64) *Throttler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Throttler{
		interval: interval,
		capacity: capacity,
		tokens:   capacity,
		last:     time.Now(),
	}
}

// Wait blocks until the cost can be spent or the context is done
func (t *Throttler) Wait(ctx context.Context, cost float64) error {
	if cost <= 0 {
		cost = 1
	}
	for {
		t.mu.Lock()
		now := time.Now()
		t.tokens += float64(now.Sub(t.last)) / float64(t.interval)
		if t.tokens > t.capacity {
			t.tokens = t.capacity
		}
		t.last = now
		if t.tokens >= cost {
			t.tokens -= cost
			t.mu.Unlock()
			return nil
		}
		wait := time.Duration((cost - t.tokens) * float64(t.interval))
		t.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}
}
