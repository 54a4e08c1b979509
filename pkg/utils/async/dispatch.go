package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Go runs fn in a new goroutine and returns a channel that receives fn's
// result exactly once, then is closed.
//
// Behavior:
//   - fn gets a background context carrying the logger of ctx, so that
//     cancelling ctx does not cancel fn
//   - a panic in fn is recovered, logged with its stack and delivered as an
//     error
func Go(ctx context.Context, fn func(ctx context.Context) error) <-chan error {
	newCtx := newBackgroundContext(ctx)
	result := make(chan error, 1)

	go func() {
		defer close(result)
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("panic in goroutine",
					"recover", r,
					"stack", string(stack))
				result <- goerr.New("panic in goroutine", goerr.V("recover", fmt.Sprint(r)))
			}
		}()

		result <- fn(newCtx)
	}()

	return result
}

// newBackgroundContext creates a new background context preserving the
// ctxlog logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	return newCtx
}
