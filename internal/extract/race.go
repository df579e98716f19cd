package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

// WithTimeout races a unit of work against a deadline. The work receives a
// context that is cancelled when the deadline fires, so context-aware work
// (notably anything going through exec.CommandContext) is actively stopped
// rather than abandoned. Callers that hold resources needing release beyond
// cancellation must still release them on the error path.
func WithTimeout[T any](ctx context.Context, d time.Duration, op string, work func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		v   T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := work(ctx)
		done <- outcome{v: v, err: err}
	}()

	select {
	case out := <-done:
		return out.v, out.err
	case <-ctx.Done():
		var zero T
		return zero, common.NewAppError(common.ErrOperationTimedOut,
			fmt.Sprintf("%s exceeded %s", op, d), ctx.Err())
	}
}
