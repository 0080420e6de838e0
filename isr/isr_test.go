package isr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithin(t *testing.T) {
	ctx := context.Background()
	assert.False(t, Within(ctx))
	assert.False(t, Within(nil))

	marked := Mark(ctx)
	assert.True(t, Within(marked))
	assert.False(t, Within(ctx))
}

func TestMarkPropagates(t *testing.T) {
	marked := Mark(context.Background())
	derived := context.WithValue(marked, struct{}{}, "x")
	assert.True(t, Within(derived))

	cancelable, cancel := context.WithCancel(marked)
	defer cancel()
	assert.True(t, Within(cancelable))
}
