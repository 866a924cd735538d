package rippletest

import (
	"slices"

	"github.com/ripplekit/ripple"
)

// Recording accumulates the events a watched source delivered, each tagged
// with the frame it arrived on. It fills in as the schedule is flushed.
type Recording[T any] struct {
	events []FrameEvent[T]
}

// Events returns a snapshot copy of the recorded timeline.
func (r *Recording[T]) Events() []FrameEvent[T] {
	return slices.Clone(r.events)
}

// Watch subscribes to source at the current frame and records every event it
// delivers, never unsubscribing.
func Watch[T any](source ripple.Source[T], sched *Schedule) *Recording[T] {
	return WatchBetween(source, sched, Window{Start: sched.Frame(), End: Forever})
}

// WatchBetween subscribes to source at window.Start, disposes the
// subscription at window.End (never, when End is Forever), and records every
// event delivered in between tagged with its arrival frame.
func WatchBetween[T any](source ripple.Source[T], sched *Schedule, window Window) *Recording[T] {
	rec := &Recording[T]{}
	sub := ripple.NewDisposable()
	sink := ripple.NewSink(func(ev ripple.Event[T]) {
		rec.events = append(rec.events, FrameEvent[T]{Event: ev, Frame: sched.Frame()})
	}, sub)

	sched.Schedule(func() { source.Subscribe(sink) }, window.Start-sched.Frame(), nil)
	if window.End != Forever {
		sched.Schedule(sub.Dispose, window.End-sched.Frame(), nil)
	}

	return rec
}
