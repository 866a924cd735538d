package rippletest

import (
	"slices"

	"github.com/ripplekit/ripple"
)

// ColdSource replays a pre-declared timeline to each subscriber
// independently: every subscription schedules the full timeline again,
// relative to the frame the subscription was made on.
type ColdSource[T any] struct {
	events        []FrameEvent[T]
	sched         *Schedule
	subscriptions []Window
}

func NewColdSource[T any](sched *Schedule, events ...FrameEvent[T]) *ColdSource[T] {
	return &ColdSource[T]{events: events, sched: sched}
}

var _ ripple.Source[int] = (*ColdSource[int])(nil)

// Subscribe records the subscription window and schedules every declared
// event for this sink. Disposing the sink's subscription fixes the window's
// end frame and cancels the not-yet-fired remainder of the timeline.
func (c *ColdSource[T]) Subscribe(sink *ripple.Sink[T]) {
	i := len(c.subscriptions)
	c.subscriptions = append(c.subscriptions, Window{Start: c.sched.Frame(), End: Forever})
	sink.Subscription().Add(func() {
		c.subscriptions[i].End = c.sched.Frame()
	})

	for _, ev := range c.events {
		c.sched.Schedule(func() { sink.Notify(ev.Event) }, ev.Frame, sink.Subscription())
	}
}

// Subscriptions returns a snapshot of every subscription window seen so far,
// in subscription order.
func (c *ColdSource[T]) Subscriptions() []Window {
	return slices.Clone(c.subscriptions)
}

// HotSource multicasts one shared playback of a pre-declared timeline
// through a Subject. Subscribing never triggers playback by itself; Play
// schedules the timeline into the subject exactly once, no matter how many
// sinks are subscribed. Sinks only see events pushed from the frame they
// subscribed on.
type HotSource[T any] struct {
	events        []FrameEvent[T]
	sched         *Schedule
	subject       *ripple.Subject[T]
	subscriptions []Window
}

func NewHotSource[T any](sched *Schedule, events ...FrameEvent[T]) *HotSource[T] {
	return NewHotSourceSubject(sched, ripple.NewSubject[T](), events...)
}

// NewHotSourceSubject uses a caller-supplied subject as the multicast bridge.
func NewHotSourceSubject[T any](sched *Schedule, subject *ripple.Subject[T], events ...FrameEvent[T]) *HotSource[T] {
	return &HotSource[T]{events: events, sched: sched, subject: subject}
}

var _ ripple.Source[int] = (*HotSource[int])(nil)

// Subscribe records the subscription window and registers the sink against
// the underlying subject; it does not schedule playback.
func (h *HotSource[T]) Subscribe(sink *ripple.Sink[T]) {
	i := len(h.subscriptions)
	h.subscriptions = append(h.subscriptions, Window{Start: h.sched.Frame(), End: Forever})
	sink.Subscription().Add(func() {
		h.subscriptions[i].End = h.sched.Frame()
	})

	h.subject.Subscribe(sink)
}

// Play schedules the timeline to be pushed into the underlying subject, and
// so to every sink subscribed at each event's frame. sub may be nil; when
// given, disposing it cancels whatever has not fired yet.
func (h *HotSource[T]) Play(sub *ripple.Disposable) {
	for _, ev := range h.events {
		h.sched.Schedule(func() { h.subject.Notify(ev.Event) }, ev.Frame, sub)
	}
}

// Subscriptions returns a snapshot of every subscription window seen so far,
// in subscription order.
func (h *HotSource[T]) Subscriptions() []Window {
	return slices.Clone(h.subscriptions)
}
