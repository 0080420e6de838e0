// Package middle decorates guard lockers.
package middle

import (
	"context"

	"github.com/feynman-go/guard"
	"golang.org/x/time/rate"
)

// RateLimitLocker bounds how often a contested locker may be attacked.
// Attempts over the limit fail acquisition immediately, the same
// observable outcome as a timeout, so callers need no extra handling.
type RateLimitLocker struct {
	limiter *rate.Limiter
	inner   guard.Locker
}

func NewRateLimitLocker(inner guard.Locker, limit float64, burst int) *RateLimitLocker {
	return &RateLimitLocker{
		limiter: rate.NewLimiter(rate.Limit(limit), burst),
		inner:   inner,
	}
}

func (l *RateLimitLocker) Acquire(ctx context.Context) bool {
	if !l.limiter.Allow() {
		return false
	}
	return l.inner.Acquire(ctx)
}

func (l *RateLimitLocker) Release() {
	l.inner.Release()
}
