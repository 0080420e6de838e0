package guard

import "github.com/pkg/errors"

// Sentinel outcomes of an acquisition attempt. They are never returned
// by the API: a failed attempt is observed through HasLock and Valid.
// They surface in logs and committed records.
var (
	// ErrNilLocker marks a guard bound to no locker at all.
	ErrNilLocker = errors.New("guard: nil locker")

	// ErrInterruptContext marks a lock operation refused because the
	// calling context is flagged as non-preemptible.
	ErrInterruptContext = errors.New("guard: lock operation in interrupt context")

	// ErrAcquireTimeout marks an acquisition that did not obtain the
	// lock within its timeout. A normal outcome under contention.
	ErrAcquireTimeout = errors.New("guard: acquire timed out")
)
