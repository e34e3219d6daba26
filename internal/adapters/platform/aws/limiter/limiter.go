package limiter

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/olusolaa/teardown-verifier/internal/core/ports"
)

const (
	DefaultRequestsPerSecond = 20
	minRequestsPerSecond     = 1
	maxRequestsPerSecond     = 100
)

// DefaultRateLimiter is a token bucket shared by every AWS call of one
// capture. The zero value uses DefaultRequestsPerSecond.
type DefaultRateLimiter struct {
	once    sync.Once
	rps     int
	limiter *rate.Limiter
}

// NewRateLimiter returns a limiter for rps requests per second. Values
// outside 1..100 fall back to the default; 0 means "use the default" and is
// not warned about.
func NewRateLimiter(rps int, logger ports.Logger) *DefaultRateLimiter {
	limitValue := DefaultRequestsPerSecond
	if rps >= minRequestsPerSecond && rps <= maxRequestsPerSecond {
		limitValue = rps
	} else if rps != 0 && logger != nil {
		logger.Warnf(context.Background(), "Invalid AWS API RPS configured (%d), using default %d RPS. Valid range: %d-%d.",
			rps, DefaultRequestsPerSecond, minRequestsPerSecond, maxRequestsPerSecond)
	}
	l := &DefaultRateLimiter{rps: limitValue}
	l.init()
	return l
}

func (l *DefaultRateLimiter) init() {
	l.once.Do(func() {
		if l.rps == 0 {
			l.rps = DefaultRequestsPerSecond
		}
		l.limiter = rate.NewLimiter(rate.Limit(l.rps), l.rps)
	})
}

// RPS returns the effective rate.
func (l *DefaultRateLimiter) RPS() int {
	l.init()
	return l.rps
}

func (l *DefaultRateLimiter) Wait(ctx context.Context, logger ports.Logger) error {
	l.init()
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil && logger != nil {
			logger.Warnf(ctx, "Error waiting for AWS API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
