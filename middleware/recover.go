package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/hezhis/dispatch"
	"github.com/rs/zerolog"
)

// ErrHandlerPanic wraps the value recovered from a panicking handler.
var ErrHandlerPanic = errors.New("handler panicked")

// Recover turns a handler panic into an error wrapping ErrHandlerPanic and
// logs the stack.
func Recover(logger zerolog.Logger) dispatch.Middleware {
	return func(v dispatch.Variant, next dispatch.HandlerFunc) dispatch.HandlerFunc {
		return func(ctx context.Context, msg any) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Str("variant", v.String()).
						Interface("panic", r).
						Bytes("stack", debug.Stack()).
						Msg("process msg panic")
					err = fmt.Errorf("%w: %s: %v", ErrHandlerPanic, v, r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
