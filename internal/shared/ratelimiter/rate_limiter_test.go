package ratelimiter

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"
)

func TestIntervalLimiter_SpacesConcurrentCallers(t *testing.T) {
	t.Parallel()

	const (
		interval = 20 * time.Millisecond
		callers  = 5
	)
	limiter := NewIntervalLimiter(interval)

	var (
		mu    sync.Mutex
		times []time.Time
		wg    sync.WaitGroup
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := limiter.Wait(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			times = append(times, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(times) != callers {
		t.Fatalf("expected %d grants, got %d", callers, len(times))
	}

	// Grants are recorded after the sleep, so sorting by time reflects the
	// slot order. Consecutive grants must be at least one interval apart,
	// with a small tolerance for timer jitter.
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	const tolerance = 5 * time.Millisecond
	for i := 1; i < len(times); i++ {
		if gap := times[i].Sub(times[i-1]); gap < interval-tolerance {
			t.Errorf("grants %d and %d only %v apart, want at least %v", i-1, i, gap, interval)
		}
	}
}

func TestIntervalLimiter_ZeroIntervalIsNoop(t *testing.T) {
	t.Parallel()

	limiter := NewIntervalLimiter(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("expected no throttling, 100 waits took %v", elapsed)
	}
}

func TestIntervalLimiter_ContextCancel(t *testing.T) {
	t.Parallel()

	limiter := NewIntervalLimiter(time.Hour)

	// First caller takes the immediate slot.
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second caller would sleep an hour; cancellation must release it.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.Wait(ctx)
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Wait did not return promptly after cancellation: %v", elapsed)
	}
}

func TestIntervalLimiter_CanceledContextFailsFast(t *testing.T) {
	t.Parallel()

	limiter := NewIntervalLimiter(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Fatal("expected context error, got nil")
	}
}
