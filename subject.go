package ripple

import "slices"

// Subject is a hot, multicast Source and Sink pair: every event pushed into
// it is forwarded synchronously to every sink subscribed at that moment, in
// subscription order. There is no replay buffer; a sink subscribing after an
// event was pushed never sees it.
type Subject[T any] struct {
	sinks []*Sink[T]
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers the sink, removing it automatically when its
// subscription is disposed.
func (s *Subject[T]) Subscribe(sink *Sink[T]) {
	s.sinks = append(s.sinks, sink)
	sink.Subscription().Add(func() {
		if i := slices.Index(s.sinks, sink); i >= 0 {
			s.sinks = slices.Delete(s.sinks, i, i+1)
		}
	})
}

// Notify forwards the event over a frozen snapshot of the current
// subscribers: a sink that subscribes as a result of delivering this event
// does not itself receive it.
func (s *Subject[T]) Notify(ev Event[T]) {
	for _, sink := range slices.Clone(s.sinks) {
		sink.Notify(ev)
	}
}

// Push pushes a value event into the subject.
func (s *Subject[T]) Push(value T) { s.Notify(Push(value)) }

// Throw pushes a terminal error event into the subject.
func (s *Subject[T]) Throw(err error) { s.Notify(Throw[T](err)) }

// End pushes the terminal completion event into the subject.
func (s *Subject[T]) End() { s.Notify(End[T]()) }
