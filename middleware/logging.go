package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hezhis/dispatch"
	"github.com/rs/zerolog"
)

// Logging writes one debug line per dispatch, or an error line when the
// handler fails. Each dispatch gets its own dispatch_id.
func Logging(logger zerolog.Logger) dispatch.Middleware {
	return func(v dispatch.Variant, next dispatch.HandlerFunc) dispatch.HandlerFunc {
		return func(ctx context.Context, msg any) error {
			start := time.Now()
			id := uuid.NewString()

			err := next(ctx, msg)

			var event *zerolog.Event
			if err != nil {
				event = logger.Error().Err(err)
			} else {
				event = logger.Debug()
			}
			event.
				Str("dispatch_id", id).
				Str("variant", v.String()).
				Dur("duration", time.Since(start)).
				Msg("dispatch")
			return err
		}
	}
}
