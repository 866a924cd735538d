package rippletest

import (
	"math"

	"github.com/ripplekit/ripple"
)

// Forever marks a subscription window that was never closed.
const Forever = math.MaxInt

// FrameEvent pairs an event with the logical frame at which it fires (for
// the replay sources) or at which it arrived (for recordings).
type FrameEvent[T any] struct {
	Event ripple.Event[T]
	Frame int
}

// P declares a value pushed at the given frame.
func P[T any](value T, frame int) FrameEvent[T] {
	return FrameEvent[T]{Event: ripple.Push(value), Frame: frame}
}

// T declares a terminal error at the given frame.
func T[V any](err error, frame int) FrameEvent[V] {
	return FrameEvent[V]{Event: ripple.Throw[V](err), Frame: frame}
}

// E declares terminal completion at the given frame.
func E[T any](frame int) FrameEvent[T] {
	return FrameEvent[T]{Event: ripple.End[T](), Frame: frame}
}

// Window records the frames between which a subscription was held. End stays
// Forever until the owning subscription is disposed.
type Window struct {
	Start int
	End   int
}

func NewWindow(start, end int) Window {
	return Window{Start: start, End: end}
}
