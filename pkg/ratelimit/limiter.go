package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter paces consecutive requests
type Limiter interface {
	// Wait blocks until the next request may start. It returns ctx.Err()
	// when the context is done first.
	Wait(ctx context.Context) error
}

// FixedDelay sleeps a constant interval on every Wait
type FixedDelay struct {
	delay time.Duration
	mu    sync.Mutex
	waits int
}

// NewFixedDelay creates a limiter pausing for delay. A zero delay never blocks.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay}
}

// Wait sleeps for the configured delay
func (f *FixedDelay) Wait(ctx context.Context) error {
	f.mu.Lock()
	f.waits++
	f.mu.Unlock()

	if f.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Delay returns the configured interval
func (f *FixedDelay) Delay() time.Duration {
	return f.delay
}

// Waits returns how many times Wait was called
func (f *FixedDelay) Waits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.waits
}
