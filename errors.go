package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateHandler matches every *DuplicateHandlerError.
	ErrDuplicateHandler = errors.New("handler already registered")
	// ErrUnroutable matches every *UnroutableMessageError.
	ErrUnroutable = errors.New("no handler registered")
	// ErrNilHandler indicates Register was called with a nil handler.
	ErrNilHandler = errors.New("handler is required")
	// ErrInvalidVariant indicates a handler type that cannot be a message variant.
	ErrInvalidVariant = errors.New("invalid message variant")
	// ErrFrozen indicates the registry no longer accepts changes.
	ErrFrozen = errors.New("dispatcher is frozen")
)

// DuplicateHandlerError is returned by Register when the variant already has
// a handler. The existing handler is left in place.
type DuplicateHandlerError struct {
	Dispatcher string
	Variant    Variant
}

func (e *DuplicateHandlerError) Error() string {
	return fmt.Sprintf("dispatcher[%s] handler for message type %s already exists", e.Dispatcher, e.Variant)
}

func (e *DuplicateHandlerError) Is(target error) bool {
	return target == ErrDuplicateHandler
}

// UnroutableMessageError is returned by Dispatch when no handler is
// registered for the message's variant.
type UnroutableMessageError struct {
	Dispatcher string
	Variant    Variant
}

func (e *UnroutableMessageError) Error() string {
	return fmt.Sprintf("dispatcher[%s] no handler for message type: %s", e.Dispatcher, e.Variant)
}

func (e *UnroutableMessageError) Is(target error) bool {
	return target == ErrUnroutable
}
