package ripple

// Sink consumes Events on behalf of exactly one subscription. Delivery stops
// permanently once its Disposable becomes inactive.
type Sink[T any] struct {
	deliver func(Event[T])
	sub     *Disposable
}

// NewSink binds a delivery callback to its subscription.
func NewSink[T any](deliver func(Event[T]), sub *Disposable) *Sink[T] {
	return &Sink[T]{deliver: deliver, sub: sub}
}

// Notify forwards the event to the sink's callback, unless the bound
// subscription has been disposed.
func (s *Sink[T]) Notify(ev Event[T]) {
	if !s.sub.Active() {
		return
	}
	s.deliver(ev)
}

// Subscription returns the Disposable the sink is bound to.
func (s *Sink[T]) Subscription() *Disposable {
	return s.sub
}

// Source begins delivering Events, synchronously or deferred through a
// Scheduler, when subscribed with a sink. There is no unsubscribe call:
// a subscription is undone exclusively by disposing the sink's Disposable,
// which the source (or the scheduler it delegated to) observes.
//
// A Source is re-subscribable: each Subscribe is an independent subscription
// unless the source is explicitly multicast (a Subject).
type Source[T any] interface {
	Subscribe(sink *Sink[T])
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T any] func(*Sink[T])

func (f SourceFunc[T]) Subscribe(sink *Sink[T]) { f(sink) }
