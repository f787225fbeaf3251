package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoffNext(t *testing.T) {
	b := NewBackoff()

	// First delay is around Initial (1s) +/- jitter.
	d1 := b.Next()
	if d1 < 800*time.Millisecond || d1 > 1200*time.Millisecond {
		t.Errorf("first delay %v not within [800ms, 1200ms]", d1)
	}

	// Second delay is around 2s +/- jitter.
	d2 := b.Next()
	if d2 < 1600*time.Millisecond || d2 > 2400*time.Millisecond {
		t.Errorf("second delay %v not within [1.6s, 2.4s]", d2)
	}
}

func TestBackoffMax(t *testing.T) {
	b := &Backoff{Initial: time.Second, Max: 5 * time.Second, Multiplier: 2.0}

	for i := 0; i < 10; i++ {
		if d := b.Next(); d > 5*time.Second {
			t.Errorf("delay %v exceeded max 5s", d)
		}
	}
}

func TestBackoffReset(t *testing.T) {
	b := NewBackoff()

	b.Next()
	b.Next()
	if b.Attempt() != 2 {
		t.Errorf("expected attempt 2, got %d", b.Attempt())
	}

	b.Reset()
	if b.Attempt() != 0 {
		t.Errorf("expected attempt 0 after reset, got %d", b.Attempt())
	}
}

func fastBackoff() *Backoff {
	return &Backoff{Initial: time.Millisecond, Max: 5 * time.Millisecond, Multiplier: 2.0}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), 3, fastBackoff(), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("expected ok, got %q", result)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), 5, fastBackoff(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	persistent := errors.New("persistent")
	calls := 0
	_, err := Do(context.Background(), 3, fastBackoff(), func(ctx context.Context) (int, error) {
		calls++
		return 0, persistent
	})
	if !errors.Is(err, persistent) {
		t.Fatalf("expected the last error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDoHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, 10, &Backoff{Initial: time.Hour, Max: time.Hour, Multiplier: 1.0}, func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected the cancellation to stop the loop after 1 call, got %d", calls)
	}
}

func TestDoRejectsZeroAttempts(t *testing.T) {
	_, err := Do(context.Background(), 0, nil, func(ctx context.Context) (int, error) {
		return 0, nil
	})
	if err == nil {
		t.Fatal("expected an error for zero attempts")
	}
}
