package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/lleva/internal/pkg/logger"
)

// Policy holds retry configuration
type Policy struct {
	Attempts   int           // total attempts including the first one
	BaseDelay  time.Duration // delay before the second attempt
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool             // add up to 10% random delay
	Retryable  func(error) bool // nil retries every error
}

// DefaultPolicy returns a short policy suited to fire-and-forget publishing
func DefaultPolicy() Policy {
	return Policy{
		Attempts:   3,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2,
		Jitter:     true,
	}
}

// Retrier runs an operation again with exponential backoff when it fails
type Retrier struct {
	policy Policy
	logger *logger.ZapLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given policy
func New(policy Policy, l *logger.ZapLogger) *Retrier {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = 1
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{policy: policy, logger: l, sleep: sleepContext}
}

// Do runs fn until it succeeds, returns a non-retryable error, runs out of
// attempts or ctx is done
func (r *Retrier) Do(ctx context.Context, operation string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < r.policy.Attempts; attempt++ {
		if attempt > 0 {
			delay := r.Backoff(attempt - 1)
			r.logger.Debug("Retrying operation",
				logger.String("operation", operation),
				logger.Int("attempt", attempt+1),
				logger.Duration("delay", delay),
				logger.Err(lastErr))
			if err := r.sleep(ctx, delay); err != nil {
				return err
			}
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries",
					logger.String("operation", operation),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.policy.Retryable != nil && !r.policy.Retryable(err) {
			return err
		}
	}

	if r.policy.Attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("%s failed after %d attempts: %w", operation, r.policy.Attempts, lastErr)
}

// Backoff returns the delay after the given zero-based failed attempt
func (r *Retrier) Backoff(attempt int) time.Duration {
	delay := float64(r.policy.BaseDelay) * math.Pow(r.policy.Multiplier, float64(attempt))
	if r.policy.MaxDelay > 0 && delay > float64(r.policy.MaxDelay) {
		delay = float64(r.policy.MaxDelay)
	}
	if r.policy.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
