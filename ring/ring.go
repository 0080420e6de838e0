// Package ring is a fixed-capacity ring buffer whose operations enter
// through a scope guard with a per-operation lock timeout, showing the
// check-then-enter discipline: a contended buffer reports ErrBusy
// instead of blocking its caller indefinitely.
package ring

import (
	"context"
	"time"

	"github.com/feynman-go/guard"
	"github.com/feynman-go/guard/mutex"
	"github.com/pkg/errors"
)

var (
	ErrBusy  = errors.New("ring: lock busy")
	ErrFull  = errors.New("ring: buffer full")
	ErrEmpty = errors.New("ring: buffer empty")
)

type Buffer[T any] struct {
	mx        mutex.Mutex
	buf       []T
	head      int
	tail      int
	size      int
	opTimeout time.Duration
}

// NewBuffer returns a buffer holding at most capacity elements. Each
// operation waits at most opTimeout for the buffer lock.
func NewBuffer[T any](capacity int, opTimeout time.Duration) *Buffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer[T]{
		buf:       make([]T, capacity),
		opTimeout: opTimeout,
	}
}

// Push appends v. It returns ErrBusy when the buffer lock cannot be
// obtained in time and ErrFull when the buffer is at capacity.
func (b *Buffer[T]) Push(ctx context.Context, v T) error {
	g := guard.Hold(ctx, &b.mx, b.opTimeout, guard.WithName("ring"))
	defer g.Unlock()
	if !g.HasLock() {
		return ErrBusy
	}

	if b.size == len(b.buf) {
		return ErrFull
	}
	b.buf[b.tail] = v
	b.tail = (b.tail + 1) % len(b.buf)
	b.size++
	return nil
}

// Pop removes and returns the oldest element.
func (b *Buffer[T]) Pop(ctx context.Context) (T, error) {
	var zero T

	g := guard.Hold(ctx, &b.mx, b.opTimeout, guard.WithName("ring"))
	defer g.Unlock()
	if !g.HasLock() {
		return zero, ErrBusy
	}

	if b.size == 0 {
		return zero, ErrEmpty
	}
	v := b.buf[b.head]
	b.buf[b.head] = zero
	b.head = (b.head + 1) % len(b.buf)
	b.size--
	return v, nil
}

// Len reports the current element count.
func (b *Buffer[T]) Len(ctx context.Context) (int, error) {
	g := guard.Hold(ctx, &b.mx, b.opTimeout, guard.WithName("ring"))
	defer g.Unlock()
	if !g.HasLock() {
		return 0, ErrBusy
	}
	return b.size, nil
}

// Cap reports the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}
