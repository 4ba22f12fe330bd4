package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"sort"
)

// Dispatcher routes a message to the single handler registered for its
// concrete type. M is the message capability shared by every variant,
// typically a marker interface.
//
// A Dispatcher is not safe for concurrent mutation. Populate it with
// Register, optionally Freeze it, and only then share it with goroutines
// that call Dispatch.
type Dispatcher[M any] struct {
	name     string
	opts     *Option
	handlers map[Variant]HandlerFunc
	frozen   bool
}

func New[M any](name string, opts ...OptionFunc) *Dispatcher[M] {
	return &Dispatcher[M]{
		name:     name,
		opts:     NewOption(opts...),
		handlers: make(map[Variant]HandlerFunc),
	}
}

// Register stores handler as the only handler for messages of type V.
// V must be a concrete type assignable to M.
func Register[V any, M any](d *Dispatcher[M], handler func(ctx context.Context, msg V) error) error {
	v := VariantOf[V]()
	if handler == nil {
		return fmt.Errorf("dispatcher[%s] register %s: %w", d.name, v, ErrNilHandler)
	}
	if err := checkVariant[M](v); err != nil {
		return fmt.Errorf("dispatcher[%s] register %s: %w", d.name, v, err)
	}
	if d.frozen {
		return fmt.Errorf("dispatcher[%s] register %s: %w", d.name, v, ErrFrozen)
	}
	if _, ok := d.handlers[v]; ok {
		return &DuplicateHandlerError{Dispatcher: d.name, Variant: v}
	}

	erased := func(ctx context.Context, msg any) error {
		// Lookup is keyed by V, so this only fails if the registry is corrupted.
		typed, ok := msg.(V)
		if !ok {
			return fmt.Errorf("dispatcher[%s] handler for %s received %T", d.name, v, msg)
		}
		return handler(ctx, typed)
	}
	d.handlers[v] = chain(v, erased, d.opts.middlewares)
	return nil
}

// Unregister removes the handler for V. It reports whether a handler was
// removed; a frozen dispatcher is never modified.
func Unregister[V any, M any](d *Dispatcher[M]) bool {
	if d.frozen {
		return false
	}
	v := VariantOf[V]()
	if _, ok := d.handlers[v]; !ok {
		return false
	}
	delete(d.handlers, v)
	return true
}

func checkVariant[M any](v Variant) error {
	if v.typ.Kind() == reflect.Interface {
		return fmt.Errorf("%w: %s is an interface type", ErrInvalidVariant, v)
	}
	if mt := reflect.TypeFor[M](); !v.typ.AssignableTo(mt) {
		return fmt.Errorf("%w: %s does not implement %s", ErrInvalidVariant, v, mt)
	}
	return nil
}

// Dispatch invokes the handler registered for msg's concrete type and
// returns its error unchanged. Handlers may call Dispatch again.
func (d *Dispatcher[M]) Dispatch(ctx context.Context, msg M) error {
	v := variantOf(msg)
	handler, ok := d.handlers[v]
	if !ok {
		return &UnroutableMessageError{Dispatcher: d.name, Variant: v}
	}
	return handler(ctx, msg)
}

func (d *Dispatcher[M]) Handles(msg M) bool {
	_, ok := d.handlers[variantOf(msg)]
	return ok
}

// Variants returns the registered variants sorted by name.
func (d *Dispatcher[M]) Variants() []Variant {
	variants := make([]Variant, 0, len(d.handlers))
	for v := range d.handlers {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].String() < variants[j].String()
	})
	return variants
}

func (d *Dispatcher[M]) Len() int {
	return len(d.handlers)
}

func (d *Dispatcher[M]) Name() string {
	return d.name
}

// Freeze ends the populate phase. Later Register calls fail with ErrFrozen
// and Unregister becomes a no-op.
func (d *Dispatcher[M]) Freeze() {
	d.frozen = true
}

func (d *Dispatcher[M]) Frozen() bool {
	return d.frozen
}
