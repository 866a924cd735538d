// Package frameq implements the frame-ordered action queue behind the
// virtual-time schedule.
package frameq

import (
	"slices"
	"sort"
)

// Action is one queued callback. ShouldCall is flipped false on cancellation
// instead of removing the entry, so canceling costs O(1).
type Action struct {
	Fn         func()
	Frame      int
	ShouldCall bool
}

// Queue holds actions sorted by Frame, FIFO within a frame.
type Queue struct {
	actions []*Action
}

// Insert places the action after every queued action whose frame is less
// than or equal to its own, preserving issue order among same-frame actions.
func (q *Queue) Insert(a *Action) {
	i := sort.Search(len(q.actions), func(i int) bool {
		return q.actions[i].Frame > a.Frame
	})
	q.actions = slices.Insert(q.actions, i, a)
}

// Pop removes and returns the earliest action, or nil when the queue is empty.
func (q *Queue) Pop() *Action {
	if len(q.actions) == 0 {
		return nil
	}
	a := q.actions[0]
	q.actions[0] = nil
	q.actions = q.actions[1:]
	return a
}

func (q *Queue) Len() int {
	return len(q.actions)
}

func (q *Queue) Clear() {
	q.actions = nil
}
