package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueuePopsInPriorityOrder(t *testing.T) {
	pq := New[string](0)
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("b", 2)

	var order []string
	for pq.Len() > 0 {
		item, ok := pq.Pop()
		assert.True(t, ok)
		order = append(order, item.Value)
	}

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestPriorityQueueTopDoesNotRemove(t *testing.T) {
	pq := New[int](0)
	pq.Push(42, 1.0)

	top, ok := pq.Top()
	assert.True(t, ok)
	assert.Equal(t, 42, top.Value)
	assert.Equal(t, 1, pq.Len())
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := New[int](0)
	_, ok := pq.Top()
	assert.False(t, ok)
	_, ok = pq.Pop()
	assert.False(t, ok)
}

func TestPriorityQueueReset(t *testing.T) {
	pq := New[int](0)
	pq.Push(1, 1)
	pq.Push(2, 2)
	pq.Reset()
	assert.Equal(t, 0, pq.Len())
}

func TestPriorityQueueManyItemsStayOrdered(t *testing.T) {
	pq := New[int](0)
	priorities := []float64{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	for _, p := range priorities {
		pq.Push(int(p), p)
	}

	prev := -1.0
	for pq.Len() > 0 {
		item, _ := pq.Pop()
		assert.GreaterOrEqual(t, item.Priority, prev)
		prev = item.Priority
	}
}
