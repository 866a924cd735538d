package frameq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	frames := func(q *Queue) []int {
		var out []int
		for a := q.Pop(); a != nil; a = q.Pop() {
			out = append(out, a.Frame)
		}
		return out
	}

	t.Run("pops in frame order", func(t *testing.T) {
		q := &Queue{}
		q.Insert(&Action{Frame: 5})
		q.Insert(&Action{Frame: 2})
		q.Insert(&Action{Frame: 8})
		q.Insert(&Action{Frame: 0})

		assert.Equal(t, []int{0, 2, 5, 8}, frames(q))
	})

	t.Run("equal frames keep insertion order", func(t *testing.T) {
		q := &Queue{}
		order := []string{}
		q.Insert(&Action{Frame: 3, Fn: func() { order = append(order, "a") }})
		q.Insert(&Action{Frame: 3, Fn: func() { order = append(order, "b") }})
		q.Insert(&Action{Frame: 3, Fn: func() { order = append(order, "c") }})

		for a := q.Pop(); a != nil; a = q.Pop() {
			a.Fn()
		}

		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("insert below and above all queued frames", func(t *testing.T) {
		q := &Queue{}
		q.Insert(&Action{Frame: 4})
		q.Insert(&Action{Frame: 6})
		q.Insert(&Action{Frame: 1})
		q.Insert(&Action{Frame: 9})

		assert.Equal(t, []int{1, 4, 6, 9}, frames(q))
	})

	t.Run("pop on empty returns nil", func(t *testing.T) {
		q := &Queue{}
		assert.Nil(t, q.Pop())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("clear empties the queue", func(t *testing.T) {
		q := &Queue{}
		q.Insert(&Action{Frame: 1})
		q.Insert(&Action{Frame: 2})
		q.Clear()

		assert.Equal(t, 0, q.Len())
		assert.Nil(t, q.Pop())
	})
}
