package backoff

import (
	"context"
	"time"
)

// Backoff sleeps for doubling durations, capped by limit when limit > 0
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Backoff blocks for NextDuration, it returns early with the ctx error
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
	return nil
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := b.start << uint(b.count)
	if b.limit > 0 && (backoff > b.limit || backoff <= 0) {
		backoff = b.limit
	}
	return backoff
}
