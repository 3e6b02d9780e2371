package indexer

import (
	"context"
	"time"
)

// Policy bounds retries of a single upstream request. A zero Backoff retries
// immediately, matching the upstream API's observed tolerance.
type Policy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultPolicy is the per-page retry budget.
var DefaultPolicy = Policy{MaxAttempts: 3}

// Do runs fn until it succeeds or the attempt budget is exhausted.
func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.Backoff
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			delay *= 2
		}
	}
	return err
}
