// Package retry provides exponential backoff and a generic retry helper.
//
// The client itself surfaces upstream failures immediately; callers that
// want retries wrap individual operations with Do.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Backoff implements exponential backoff with jitter.
type Backoff struct {
	Initial    time.Duration // first delay (default 1s)
	Max        time.Duration // delay cap (default 30s)
	Multiplier float64       // growth per attempt (default 2.0)
	Jitter     float64       // jitter factor 0-1 (default 0.1)

	attempt int
	mu      sync.Mutex
}

// NewBackoff creates a Backoff with the default schedule: 1s initial, 30s
// cap, doubling per attempt with 10% jitter.
func NewBackoff() *Backoff {
	return &Backoff{
		Initial:    1 * time.Second,
		Max:        30 * time.Second,
		Multiplier: 2.0,
		Jitter:     0.1,
	}
}

// Next returns the next delay and advances the attempt counter.
func (b *Backoff) Next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay := float64(b.Initial) * math.Pow(b.Multiplier, float64(b.attempt))
	if delay > float64(b.Max) {
		delay = float64(b.Max)
	}

	if b.Jitter > 0 {
		jitterRange := delay * b.Jitter
		delay += (rand.Float64()*2 - 1) * jitterRange
	}
	if delay < 0 {
		delay = float64(b.Initial)
	}

	b.attempt++
	return time.Duration(delay)
}

// Reset rewinds the attempt counter so the schedule starts over.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempt = 0
}

// Attempt returns the number of delays handed out since the last Reset.
func (b *Backoff) Attempt() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempt
}

// Do runs fn up to attempts times, sleeping per the backoff schedule
// between failures. It returns the first success, or the last error once
// the attempts are exhausted. Context cancellation aborts the wait and
// returns the context's error.
func Do[T any](ctx context.Context, attempts int, backoff *Backoff, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		return zero, fmt.Errorf("retry: attempts must be at least 1, got %d", attempts)
	}
	if backoff == nil {
		backoff = NewBackoff()
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if i == attempts-1 {
			break
		}

		select {
		case <-time.After(backoff.Next()):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	return zero, fmt.Errorf("retry: %d attempts failed: %w", attempts, lastErr)
}
