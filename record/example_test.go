package record

import (
	"context"
)

func ExampleEasyRecorders() {
	factory := EasyRecorders("lock-acquire")

	func(ctx context.Context) {
		var err error
		recorder, ctx := factory.ActionRecorder(ctx, "shared-state")
		defer func() {
			recorder.Commit(err, BoolField("held", err == nil))
		}()
		// err = acquireAndWork(ctx)
		_ = ctx
	}(context.Background())
}
