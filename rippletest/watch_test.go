package rippletest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ripplekit/ripple"
)

func TestWatch(t *testing.T) {
	t.Run("defaults to the current frame and never unsubscribes", func(t *testing.T) {
		sched := NewSchedule()
		cold := NewColdSource(sched, P(1, 0), P(2, 100), E[int](200))

		rec := Watch[int](cold, sched)
		sched.Flush()

		assert.Equal(t, []FrameEvent[int]{P(1, 0), P(2, 100), E[int](200)}, rec.Events())
		assert.Equal(t, []Window{{Start: 0, End: Forever}}, cold.Subscriptions())
	})

	t.Run("tags each event with its arrival frame", func(t *testing.T) {
		boom := errors.New("boom")
		sched := NewSchedule()
		cold := NewColdSource(sched, P("a", 3), T[string](boom, 7))

		rec := Watch[string](cold, sched)
		sched.Flush()

		assert.Equal(t, []FrameEvent[string]{P("a", 3), T[string](boom, 7)}, rec.Events())
	})

	t.Run("stops recording at the window end", func(t *testing.T) {
		sched := NewSchedule()
		cold := NewColdSource(sched, P(1, 0), P(2, 10), P(3, 20))

		rec := WatchBetween[int](cold, sched, NewWindow(0, 15))
		sched.Flush()

		assert.Equal(t, []FrameEvent[int]{P(1, 0), P(2, 10)}, rec.Events())
	})

	t.Run("watches a plain source", func(t *testing.T) {
		sched := NewSchedule()
		source := ripple.SourceFunc[int](func(sink *ripple.Sink[int]) {
			sched.Schedule(func() { sink.Notify(ripple.Push(7)) }, 4, sink.Subscription())
			sched.Schedule(func() { sink.Notify(ripple.End[int]()) }, 8, sink.Subscription())
		})

		rec := Watch[int](source, sched)
		sched.Flush()

		assert.Equal(t, []FrameEvent[int]{P(7, 4), E[int](8)}, rec.Events())
	})

	t.Run("events returns a snapshot", func(t *testing.T) {
		sched := NewSchedule()
		cold := NewColdSource(sched, P(1, 0), P(2, 10))

		rec := Watch[int](cold, sched)
		sched.Flush()

		got := rec.Events()
		got[0] = P(99, 0)

		assert.Equal(t, []FrameEvent[int]{P(1, 0), P(2, 10)}, rec.Events())
	})
}
