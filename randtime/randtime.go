package randtime

import (
	"math"
	"time"

	"github.com/valyala/fastrand"
)

// RandDuration returns a duration in [minDuration, maxDuration),
// quantized to microseconds. Used for contention jitter and backoff.
func RandDuration(minDuration, maxDuration time.Duration) time.Duration {
	if minDuration >= maxDuration {
		return maxDuration
	}
	span := uint64((maxDuration - minDuration) / time.Microsecond)
	if span == 0 {
		return minDuration
	}
	if span > math.MaxUint32 {
		// spans past ~71 minutes overflow a single 32-bit draw
		draw := (uint64(fastrand.Uint32())<<32 | uint64(fastrand.Uint32())) % span
		return minDuration + time.Duration(draw)*time.Microsecond
	}
	return minDuration + time.Duration(fastrand.Uint32n(uint32(span)))*time.Microsecond
}
