// Package record collects lock acquisition attempts into pluggable
// backends: structured logs, prometheus histograms and tracing spans.
// A Factory opens one Recorder per attempt; the recorder is committed
// exactly once with the attempt outcome.
package record

import (
	"context"
	"strconv"
	"time"
)

type Recorder interface {
	Commit(err error, fields ...Field)
}

type Factory interface {
	ActionRecorder(ctx context.Context, name string, fields ...Field) (Recorder, context.Context)
}

type Field struct {
	Name  string
	value string
}

func (f Field) StringValue() string {
	return f.value
}

func StringField(name, value string) Field {
	return Field{Name: name, value: value}
}

func BoolField(name string, value bool) Field {
	return Field{Name: name, value: strconv.FormatBool(value)}
}

func DurationField(name string, d time.Duration) Field {
	return Field{Name: name, value: d.String()}
}

// ChainFactory fans one attempt out to each factory in order.
func ChainFactory(factories ...Factory) Factory {
	return chainFactory(factories)
}

type chainFactory []Factory

func (cf chainFactory) ActionRecorder(ctx context.Context, name string, fields ...Field) (Recorder, context.Context) {
	records := make([]Recorder, 0, len(cf))
	for _, f := range cf {
		var rd Recorder
		rd, ctx = f.ActionRecorder(ctx, name, fields...)
		records = append(records, rd)
	}
	return chainRecorder(records), ctx
}

type chainRecorder []Recorder

func (cr chainRecorder) Commit(err error, fields ...Field) {
	for _, rd := range cr {
		rd.Commit(err, fields...)
	}
}

// Skip returns a recorder that drops everything.
func Skip() Recorder {
	return skipRecorder{}
}

type skipRecorder struct{}

func (recorder skipRecorder) Commit(err error, fields ...Field) {}
