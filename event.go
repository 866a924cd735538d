package ripple

import "fmt"

// EventKind discriminates the three Event variants.
type EventKind uint8

const (
	KindPush EventKind = iota
	KindThrow
	KindEnd
)

func (k EventKind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindThrow:
		return "throw"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// Event is one item of stream traffic: a pushed value, a terminal error, or
// terminal completion. Throw and End are terminal; a well-behaved source
// emits nothing after either.
type Event[T any] struct {
	kind  EventKind
	value T
	err   error
}

// Push wraps a value into a Push event.
func Push[T any](value T) Event[T] {
	return Event[T]{kind: KindPush, value: value}
}

// Throw wraps an error into a terminal Throw event.
func Throw[T any](err error) Event[T] {
	return Event[T]{kind: KindThrow, err: err}
}

// End is the terminal completion event.
func End[T any]() Event[T] {
	return Event[T]{kind: KindEnd}
}

func (e Event[T]) Kind() EventKind { return e.kind }

// Value returns the pushed value; the zero value for non-Push events.
func (e Event[T]) Value() T { return e.value }

// Err returns the error carried by a Throw event; nil otherwise.
func (e Event[T]) Err() error { return e.err }

func (e Event[T]) String() string {
	switch e.kind {
	case KindPush:
		return fmt.Sprintf("push(%v)", e.value)
	case KindThrow:
		return fmt.Sprintf("throw(%v)", e.err)
	}
	return "end"
}
