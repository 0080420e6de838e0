// Package isr marks execution contexts as interrupt-like: code running
// under a marked context must not block, so lock operations are refused
// there. It is the portable stand-in for a host scheduler's
// "in interrupt handler" query, expressed as a context value the way
// Go carries per-call-chain state.
//
// Typical marked call chains are signal handlers, finalizers and
// callbacks that a runtime invokes on a thread that must not park.
package isr

import "context"

type ctxKey struct{}

// Mark derives a context flagged as non-preemptible.
// Everything invoked with the derived context counts as running
// inside an interrupt-like section.
func Mark(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, true)
}

// Within reports whether ctx is flagged as non-preemptible.
func Within(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	flagged, _ := ctx.Value(ctxKey{}).(bool)
	return flagged
}
