// Package guard provides scope guards over timed mutual exclusion
// primitives. A Guard binds to a Locker when created, attempts one
// acquisition bounded by a timeout, and guarantees release through an
// idempotent Unlock, usually deferred:
//
//	g := guard.Hold(ctx, mx, 100*time.Millisecond)
//	defer g.Unlock()
//	if !g.HasLock() {
//		return // contended, critical section not entered
//	}
//	// critical section
//
// Acquisition failure is a normal outcome, never a panic or an error
// return: callers must check HasLock before touching the protected
// state. Guards refuse to operate on contexts marked by package isr.
package guard

import (
	"context"
	"time"

	"github.com/feynman-go/guard/isr"
	"github.com/feynman-go/guard/logger"
	"github.com/feynman-go/guard/record"
	"go.uber.org/zap"
)

// DefaultTimeout bounds acquisition when Hold is given a non-positive
// timeout.
const DefaultTimeout = 100 * time.Millisecond

var log = logger.NewNamed("guard")

// Locker is the mutex primitive a guard binds to. The guard never
// creates or frees one, it only transiently holds it; the caller owns
// the locker and must outlive every guard referencing it.
//
// Acquire blocks until the lock is held or ctx expires, reporting
// success. Release frees one hold and must not block.
type Locker interface {
	Acquire(ctx context.Context) bool
	Release()
}

// noCopy trips go vet on copies. A guard is a single-owner relation
// between one stack frame and one acquisition.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard holds the outcome of a single timed acquisition over a Locker.
// Exactly one Guard instance governs one acquisition: guards must not
// be copied or shared between goroutines.
type Guard struct {
	noCopy noCopy

	locker Locker
	held   bool
	ctx    context.Context

	name     string
	logger   *zap.Logger
	recorder record.Factory
}

// Hold binds a new Guard to locker and attempts a single acquisition,
// waiting at most timeout. The attempt is never re-tried by the guard;
// a caller wanting retries constructs a new one.
//
// A nil locker yields an invalid, unlocked guard. A context marked by
// isr.Mark forces the guard invalid without touching the locker, since
// blocking on a lock is unsafe there. Both are caller bugs, absorbed
// with a log entry rather than escalated.
func Hold(ctx context.Context, locker Locker, timeout time.Duration, opts ...Option) *Guard {
	g := &Guard{}
	hold(ctx, g, locker, timeout, "guard", opts)
	return g
}

func hold(ctx context.Context, g *Guard, locker Locker, timeout time.Duration, defaultName string, opts []Option) {
	g.locker = locker
	g.ctx = ctx
	g.name = defaultName
	g.logger = log
	for _, opt := range opts {
		opt(g)
	}

	if g.locker == nil {
		g.logger.Warn("hold with nil locker", zap.String("name", g.name))
		g.commit(ctx, ErrNilLocker, 0)
		return
	}

	if isr.Within(ctx) {
		g.logger.Error("lock refused in interrupt context", zap.String("name", g.name))
		g.locker = nil
		g.commit(ctx, ErrInterruptContext, 0)
		return
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	g.held = g.locker.Acquire(acquireCtx)
	wait := time.Since(start)

	if g.held {
		g.logger.Debug("locked", zap.String("name", g.name), zap.Duration("wait", wait))
		g.commit(ctx, nil, wait)
	} else {
		g.logger.Debug("lock timed out", zap.String("name", g.name), zap.Duration("wait", wait))
		g.commit(ctx, ErrAcquireTimeout, wait)
	}
}

func (g *Guard) commit(ctx context.Context, err error, wait time.Duration) {
	if g.recorder == nil {
		return
	}
	rec, _ := g.recorder.ActionRecorder(ctx, g.name)
	rec.Commit(err, record.DurationField("wait", wait))
}

// HasLock reports whether this guard currently holds the lock.
func (g *Guard) HasLock() bool {
	return g.held
}

// Valid reports whether the guard is bound to a locker. A bound guard
// whose timed acquire failed is still valid.
func (g *Guard) Valid() bool {
	return g.locker != nil
}

// Unlock releases the lock if this guard holds it. Safe to call any
// number of times from any exit path; calls when not held are no-ops.
// Deferring Unlock right after Hold guarantees release however the
// governing scope exits.
//
// Unlock checks the context captured at construction. Code unlocking
// from a different call chain, such as a callback that may run under
// an isr.Mark'ed context, should use UnlockCtx with its own context.
func (g *Guard) Unlock() {
	g.UnlockCtx(g.ctx)
}

// UnlockCtx is Unlock with the caller's own context: the release is
// refused when ctx is flagged as non-preemptible, leaving the guard
// held. Same idempotency as Unlock.
func (g *Guard) UnlockCtx(ctx context.Context) {
	if !g.held || g.locker == nil {
		return
	}
	if isr.Within(ctx) {
		g.logger.Error("unlock refused in interrupt context", zap.String("name", g.name))
		return
	}

	g.locker.Release()
	g.held = false
	g.logger.Debug("unlocked", zap.String("name", g.name))
}
