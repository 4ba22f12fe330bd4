package dispatch

import "context"

// Apply fixes the first argument of fn.
func Apply[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Bind fixes the context argument of a handler so the result can be passed
// to Register. The fixed value is captured once and reused on every dispatch.
func Bind[C, V any](fn func(ctx context.Context, fixed C, msg V) error, fixed C) func(ctx context.Context, msg V) error {
	return func(ctx context.Context, msg V) error {
		return fn(ctx, fixed, msg)
	}
}
