package middleware

import (
	"context"
	"time"

	"github.com/hezhis/dispatch"
	"github.com/rs/zerolog"
)

const DefaultSlowTime = 20 * time.Millisecond

// SlowLog warns when a handler runs longer than threshold. A non-positive
// threshold falls back to DefaultSlowTime.
func SlowLog(logger zerolog.Logger, threshold time.Duration) dispatch.Middleware {
	if threshold <= 0 {
		threshold = DefaultSlowTime
	}
	return func(v dispatch.Variant, next dispatch.HandlerFunc) dispatch.HandlerFunc {
		return func(ctx context.Context, msg any) error {
			t := time.Now()
			err := next(ctx, msg)
			if since := time.Since(t); since > threshold {
				logger.Warn().
					Str("variant", v.String()).
					Dur("cost", since).
					Dur("threshold", threshold).
					Msg("process msg slow")
			}
			return err
		}
	}
}
