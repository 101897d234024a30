// Package ratelimiter throttles calls against rate-limited external services.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter blocks a caller until it is allowed to issue the next request.
type Limiter interface {
	// Wait blocks until the caller owns the next request slot or the
	// context is done.
	Wait(ctx context.Context) error
}

// IntervalLimiter enforces a minimum interval between consecutive requests,
// shared across all goroutines that hold the same instance. Slots are handed
// out in call order: each Wait reserves the next slot under the lock and then
// sleeps outside it, so concurrent workers still end up spaced by interval.
type IntervalLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

var _ Limiter = (*IntervalLimiter)(nil)

// NewIntervalLimiter creates a limiter enforcing the given minimum spacing.
// A non-positive interval disables throttling.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{interval: interval}
}

// Wait blocks until the minimum interval since the previous granted slot has
// elapsed. It returns early with the context error when ctx is done.
func (l *IntervalLimiter) Wait(ctx context.Context) error {
	if l.interval <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	at := l.next
	if at.Before(now) {
		at = now
	}
	l.next = at.Add(l.interval)
	l.mu.Unlock()

	delay := time.Until(at)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
