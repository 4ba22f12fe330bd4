package middleware

import (
	"context"

	"github.com/hezhis/dispatch"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "github.com/hezhis/dispatch"

// Tracing starts a span named "dispatch <variant>" around every handler call.
// The span context is passed on, so nested Dispatch calls become child spans.
func Tracing(tracer trace.Tracer) dispatch.Middleware {
	return func(v dispatch.Variant, next dispatch.HandlerFunc) dispatch.HandlerFunc {
		name := "dispatch " + v.String()
		return func(ctx context.Context, msg any) error {
			ctx, span := tracer.Start(ctx, name,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attribute.String("dispatch.variant", v.String())),
			)
			defer span.End()

			err := next(ctx, msg)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
