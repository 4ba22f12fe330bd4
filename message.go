package dispatch

import (
	"context"
	"reflect"
)

// Variant identifies one concrete message type in a dispatcher's registry.
// The zero Variant stands for a nil message.
type Variant struct {
	typ reflect.Type
}

// VariantOf returns the variant key for the static type V.
func VariantOf[V any]() Variant {
	return Variant{typ: reflect.TypeFor[V]()}
}

func variantOf(msg any) Variant {
	return Variant{typ: reflect.TypeOf(msg)}
}

func (v Variant) String() string {
	if v.typ == nil {
		return "<nil>"
	}
	return v.typ.String()
}

// HandlerFunc is the type-erased form every registered handler is stored as.
type HandlerFunc func(ctx context.Context, msg any) error

// Middleware decorates the handler of a single variant. It runs once per
// Register call, so v is fixed for the lifetime of the returned handler.
type Middleware func(v Variant, next HandlerFunc) HandlerFunc

func chain(v Variant, h HandlerFunc, middlewares []Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](v, h)
	}
	return h
}
