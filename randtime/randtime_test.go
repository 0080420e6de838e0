package randtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandDurationRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := RandDuration(10*time.Millisecond, 20*time.Millisecond)
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.Less(t, d, 20*time.Millisecond)
	}
}

func TestRandDurationLargeSpan(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := RandDuration(time.Hour, 4*time.Hour)
		assert.GreaterOrEqual(t, d, time.Hour)
		assert.Less(t, d, 4*time.Hour)
	}
}

func TestRandDurationDegenerate(t *testing.T) {
	assert.Equal(t, time.Second, RandDuration(time.Second, time.Second))
	assert.Equal(t, time.Millisecond, RandDuration(2*time.Millisecond, time.Millisecond))
	assert.Equal(t, time.Duration(0), RandDuration(0, 500*time.Nanosecond))
}
