// Package middleware provides handler decorators for dispatch.Dispatcher.
//
// Middleware is attached with dispatch.WithMiddleware and wraps each handler
// once, when it is registered. The dispatcher itself never logs, traces or
// recovers; everything observable about a dispatch happens here.
package middleware
