package mutex

import (
	"context"
	"sync"

	"github.com/feynman-go/guard/logger"
)

var log = logger.NewNamed("mutex")

type ownerKey struct{}

type ownerToken struct{}

// NewOwner derives a context carrying a fresh owner identity. Every
// call chain sharing the derived context counts as one execution
// context for RecursiveMutex re-entrancy, the way a task handle does
// on a hosted scheduler. Contexts without an owner are each treated
// as a distinct anonymous owner per acquisition.
func NewOwner(ctx context.Context) context.Context {
	return context.WithValue(ctx, ownerKey{}, &ownerToken{})
}

func ownerOf(ctx context.Context) *ownerToken {
	tk, _ := ctx.Value(ownerKey{}).(*ownerToken)
	return tk
}

// RecursiveMutex is a Mutex variant the same owner may acquire
// multiple times without deadlocking itself. Each nested acquire
// increments a depth counter and must be balanced by a Release; the
// mutex becomes available to other owners only at depth zero.
// The zero value is ready for use.
type RecursiveMutex struct {
	mu         sync.Mutex
	owner      *ownerToken
	depth      int
	releasedCn chan struct{}
}

// Acquire blocks until the mutex is held or ctx expires. An acquire
// from the context chain already owning the mutex succeeds
// immediately, deepening the hold by one.
func (mx *RecursiveMutex) Acquire(ctx context.Context) bool {
	tk := ownerOf(ctx)
	if tk == nil {
		tk = &ownerToken{}
	}
	for ctx.Err() == nil {
		if mx.occupy(tk) {
			return true
		}
		if !mx.waitRelease(ctx) {
			return false
		}
	}
	return false
}

// TryAcquire acquires without blocking, honoring re-entrancy.
func (mx *RecursiveMutex) TryAcquire(ctx context.Context) bool {
	tk := ownerOf(ctx)
	if tk == nil {
		tk = &ownerToken{}
	}
	return mx.occupy(tk)
}

// Depth returns the current nesting depth, zero when free.
func (mx *RecursiveMutex) Depth() int {
	mx.mu.Lock()
	defer mx.mu.Unlock()
	return mx.depth
}

func (mx *RecursiveMutex) occupy(tk *ownerToken) bool {
	mx.mu.Lock()
	defer mx.mu.Unlock()

	switch {
	case mx.owner == nil:
		mx.owner = tk
		mx.depth = 1
		mx.releasedCn = make(chan struct{})
		return true
	case mx.owner == tk:
		mx.depth++
		return true
	}
	return false
}

func (mx *RecursiveMutex) waitRelease(ctx context.Context) bool {
	mx.mu.Lock()
	cn := mx.releasedCn
	mx.mu.Unlock()

	if cn == nil {
		return ctx.Err() == nil
	}
	select {
	case <-cn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Release undoes one acquisition. The mutex is handed to other owners
// once releases balance acquires. An unbalanced release below depth
// zero is a no-op with a warning.
func (mx *RecursiveMutex) Release() {
	mx.mu.Lock()
	defer mx.mu.Unlock()

	if mx.owner == nil {
		log.Warn("release of a free recursive mutex")
		return
	}
	mx.depth--
	if mx.depth > 0 {
		return
	}
	mx.owner = nil
	mx.depth = 0
	close(mx.releasedCn)
	mx.releasedCn = nil
}
