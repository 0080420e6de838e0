package guard

import (
	"github.com/feynman-go/guard/record"
	"go.uber.org/zap"
)

type Option func(*Guard)

// WithName tags the guard's log entries and records. Defaults to
// "guard" or "recursive-guard".
func WithName(name string) Option {
	return func(g *Guard) {
		g.name = name
	}
}

// WithLogger replaces the package logger for this guard.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRecorder commits one record per acquisition attempt, carrying
// the wait duration and the outcome error, if any.
func WithRecorder(factory record.Factory) Option {
	return func(g *Guard) {
		g.recorder = factory
	}
}
