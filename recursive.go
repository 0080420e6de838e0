package guard

import (
	"context"
	"time"
)

// RecursiveGuard is a Guard over a re-entrant locker such as
// mutex.RecursiveMutex: the owning context may nest multiple guards
// over one locker, each nested acquire succeeding immediately and each
// guard releasing exactly its own hold. The locker keeps the nesting
// depth; the guard tracks only whether its own acquisition succeeded.
type RecursiveGuard struct {
	Guard
}

// HoldRecursive binds a new RecursiveGuard to locker with the same
// contract as Hold. Pass a context derived with mutex.NewOwner so that
// nested holds are recognized as the same execution context.
func HoldRecursive(ctx context.Context, locker Locker, timeout time.Duration, opts ...Option) *RecursiveGuard {
	g := &RecursiveGuard{}
	hold(ctx, &g.Guard, locker, timeout, "recursive-guard", opts)
	return g
}
