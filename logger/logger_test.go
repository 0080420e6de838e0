package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewNamedReturnsSameInstance(t *testing.T) {
	a := NewNamed("test-same")
	b := NewNamed("test-same")
	assert.Same(t, a, b)
}

func TestNamedLevelSuppression(t *testing.T) {
	SetNamedLevels([]NamedLevel{
		{Name: "test-quiet", Level: "error"},
	})

	quiet := NewNamed("test-quiet")
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.ErrorLevel))
}

func TestNamedLevelGlobMatch(t *testing.T) {
	SetNamedLevels([]NamedLevel{
		{Name: "glob-*", Level: "warn"},
	})

	l := NewNamed("glob-worker")
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNamedLevelUpdatesExistingLogger(t *testing.T) {
	l := NewNamed("test-late-level")
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	SetNamedLevels([]NamedLevel{
		{Name: "test-late-level", Level: "error"},
	})
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestConfigApplyGlobal(t *testing.T) {
	Config{
		Production:   true,
		DefaultLevel: "info",
		Format:       JSONOutput,
		Levels: []NamedLevel{
			{Name: "test-config-*", Level: "debug"},
		},
	}.ApplyGlobal()

	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))

	// restore the development default for other tests
	Config{DefaultLevel: "debug"}.ApplyGlobal()
	require.True(t, Default().Core().Enabled(zapcore.DebugLevel))
}

func TestSetDefault(t *testing.T) {
	Config{DefaultLevel: "debug"}.ApplyGlobal()
	SetDefault(zap.NewNop())
	assert.NotNil(t, Default())
	Config{DefaultLevel: "debug"}.ApplyGlobal()
}
