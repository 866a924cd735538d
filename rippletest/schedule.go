package rippletest

import (
	"fmt"

	"github.com/petermattis/goid"

	"github.com/ripplekit/ripple"
	"github.com/ripplekit/ripple/internal/frameq"
)

// Schedule is a virtual-time ripple.Scheduler. Time advances only during
// Flush, in whole frames, draining queued actions in frame order with FIFO
// order among actions sharing a frame.
//
// A Schedule belongs to the goroutine that created it. The execution model
// is single-threaded and cooperative; using the schedule from another
// goroutine would corrupt frame ordering, so it panics instead.
type Schedule struct {
	queue    frameq.Queue
	frame    int
	flushing bool
	gid      int64
}

func NewSchedule() *Schedule {
	return &Schedule{gid: goid.Get()}
}

var _ ripple.Scheduler = (*Schedule)(nil)

// Schedule queues fn to run delayFrames after the current frame. If sub is
// already inactive nothing is queued. Otherwise, when sub is non-nil,
// disposing it before the frame is reached cancels the action; the queue
// entry stays in place and is skipped at dequeue time.
func (s *Schedule) Schedule(fn func(), delayFrames int, sub *ripple.Disposable) {
	s.checkGoroutine()

	if sub != nil && !sub.Active() {
		return
	}

	a := &frameq.Action{Fn: fn, Frame: s.frame + delayFrames, ShouldCall: true}
	s.queue.Insert(a)

	if sub != nil {
		sub.Add(func() { a.ShouldCall = false })
	}
}

// Frame returns the frame of the action currently executing, or of the last
// one executed.
func (s *Schedule) Frame() int {
	return s.frame
}

// Flush drains the queue: it pops the earliest action, advances the frame to
// that action's execution frame, and invokes it unless it was canceled,
// until the queue is empty. A nested Flush from inside a running action is a
// no-op. If an action panics, the schedule is reset and the panic is
// re-raised to the Flush caller; no further actions run.
func (s *Schedule) Flush() {
	s.checkGoroutine()

	if s.flushing {
		return
	}
	s.flushing = true
	defer func() {
		s.flushing = false
		if r := recover(); r != nil {
			s.Reset()
			panic(r)
		}
	}()

	for a := s.queue.Pop(); a != nil; a = s.queue.Pop() {
		s.frame = a.Frame
		if a.ShouldCall {
			a.Fn()
		}
	}
}

// Reset clears the queue, zeroes the frame, and clears the flushing guard.
// It is safe to call from inside an action that is itself mid-flush: the
// interrupted flush stops (its queue is empty) and the schedule is usable
// again afterwards.
func (s *Schedule) Reset() {
	s.queue.Clear()
	s.frame = 0
	s.flushing = false
}

func (s *Schedule) checkGoroutine() {
	if gid := goid.Get(); gid != s.gid {
		panic(fmt.Sprintf("rippletest: schedule used from goroutine %d, created on goroutine %d", gid, s.gid))
	}
}
