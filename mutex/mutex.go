package mutex

import (
	"context"
	"sync"
)

// Mutex is a context aware mutual exclusion lock. The zero value is an
// unlocked mutex ready for use. Acquire blocks until the lock is free
// or ctx expires; Release wakes every waiter through a broadcast
// channel so contenders re-race for occupancy.
type Mutex struct {
	rwm        sync.RWMutex
	releasedCn chan struct{}
}

// Acquire blocks until the mutex is held by the caller or ctx expires.
// It returns true iff the mutex was acquired.
func (mx *Mutex) Acquire(ctx context.Context) bool {
	for ctx.Err() == nil {
		if mx.wait(ctx) && mx.occupy() {
			return true
		}
	}
	return false
}

// TryAcquire acquires the mutex without blocking.
func (mx *Mutex) TryAcquire() bool {
	return mx.occupy()
}

func (mx *Mutex) wait(ctx context.Context) bool {
	mx.rwm.RLock()
	cn := mx.releasedCn
	mx.rwm.RUnlock()

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

func (mx *Mutex) occupy() bool {
	mx.rwm.Lock()
	defer mx.rwm.Unlock()

	if mx.releasedCn == nil {
		mx.releasedCn = make(chan struct{})
		return true
	}
	return false
}

// Release frees the mutex. Releasing an unheld mutex is a no-op.
func (mx *Mutex) Release() {
	mx.rwm.Lock()
	defer mx.rwm.Unlock()

	if mx.releasedCn == nil {
		return
	}
	close(mx.releasedCn)
	mx.releasedCn = nil
}
