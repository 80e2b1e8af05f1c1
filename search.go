package mtree

import (
	"iter"
	"math"

	"github.com/hupe1980/mtree/internal/queue"
)

// QueryResult pairs a found item with its distance to the query's target.
type QueryResult[T any] struct {
	Item     T
	Distance float64
}

// Query is a lazy, incremental best-first search over a Tree, producing
// results in non-decreasing distance order as Next is called. It holds two
// priority queues, mirroring the node-pruning and entry-ranking queues of
// the algorithm it implements: pending, a min-heap of unexpanded nodes
// keyed by the triangle-inequality lower bound on the distance from the
// target to anything in that node's subtree, and nearest, a min-heap of
// found-but-not-yet-returned items keyed by their actual distance to the
// target. A result is safe to return as soon as its distance is no larger
// than the smallest lower bound still pending, since nothing left unseen
// could possibly be closer.
//
// A Tree must not be mutated while a Query constructed from it is in use.
type Query[T any] struct {
	tree     *Tree[T]
	target   T
	radius   float64
	hasLimit bool
	limit    int
	returned int
	kind     string
	logged   bool

	pending *queue.PriorityQueue[*node[T]]
	nearest *queue.PriorityQueue[T]
}

func (t *Tree[T]) newQuery(target T, radius float64, limit int, hasLimit bool) *Query[T] {
	kind := "range"
	if hasLimit {
		kind = "limit"
	}
	q := &Query[T]{
		tree:     t,
		target:   target,
		radius:   radius,
		hasLimit: hasLimit,
		limit:    limit,
		kind:     kind,
		pending:  queue.New[*node[T]](8),
		nearest:  queue.New[T](8),
	}
	if t.root != nil {
		lb := lowerBound(t.distance(target, t.root.pivot), t.root.radius)
		if lb <= radius {
			q.pending.Push(t.root, lb)
		}
	}
	return q
}

func lowerBound(dist, radius float64) float64 {
	lb := dist - radius
	if lb < 0 {
		return 0
	}
	return lb
}

// Next advances the query, returning the next-nearest result in
// non-decreasing distance order. ok is false once the query is exhausted
// (range queries) or the requested limit has been reached (limit
// queries).
func (q *Query[T]) Next() (QueryResult[T], bool) {
	if q.hasLimit && q.returned >= q.limit {
		q.logExhausted()
		return QueryResult[T]{}, false
	}

	for {
		nearestTop, hasNearest := q.nearest.Top()
		pendingTop, hasPending := q.pending.Top()

		if hasNearest && (!hasPending || nearestTop.Priority <= pendingTop.Priority) {
			item, _ := q.nearest.Pop()
			q.returned++
			return QueryResult[T]{Item: item.Value, Distance: item.Priority}, true
		}

		if !hasPending {
			q.logExhausted()
			return QueryResult[T]{}, false
		}

		popped, _ := q.pending.Pop()
		q.expand(popped.Value)
	}
}

func (q *Query[T]) logExhausted() {
	if q.logged || q.tree.opts.logger == nil {
		return
	}
	q.logged = true
	q.tree.opts.logger.LogSearch(q.kind, q.returned)
}

func (q *Query[T]) expand(n *node[T]) {
	dParent := q.tree.distance(q.target, n.pivot)
	for _, it := range n.children.all() {
		// Triangle-inequality precheck: c cannot hold anything within range
		// of the target unless abs(dParent - c.distParent()) - c's own
		// covering radius is within range, so computing d(target, c)
		// outright can be skipped. dParent is shared across all of n's
		// children, so this is cheap relative to the distance call it
		// avoids.
		if absF(dParent-it.distParent())-childRadius(it) > q.radius {
			continue
		}
		switch v := it.(type) {
		case *entry[T]:
			d := q.tree.distance(q.target, v.item)
			if d <= q.radius {
				q.nearest.Push(v.item, d)
			}
		case *node[T]:
			d := q.tree.distance(q.target, v.pivot)
			lb := lowerBound(d, v.radius)
			if lb <= q.radius {
				q.pending.Push(v, lb)
			}
		}
	}
}

// childRadius returns the covering radius of a child being considered for
// the triangle-inequality precheck: a subnode's own radius, or zero for a
// leaf entry, which covers nothing beyond itself.
func childRadius[T any](it indexItem[T]) float64 {
	if cn, ok := it.(*node[T]); ok {
		return cn.radius
	}
	return 0
}

// Seq adapts the query to a range-over-func iterator, for use with a plain
// Go for range loop.
func (q *Query[T]) Seq() iter.Seq[QueryResult[T]] {
	return func(yield func(QueryResult[T]) bool) {
		for {
			r, ok := q.Next()
			if !ok {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// NearestByRange returns every indexed item within radius of target, in
// non-decreasing distance order.
func (t *Tree[T]) NearestByRange(target T, radius float64) *Query[T] {
	return t.newQuery(target, radius, 0, false)
}

// NearestByLimit returns the limit items closest to target, in
// non-decreasing distance order.
func (t *Tree[T]) NearestByLimit(target T, limit int) *Query[T] {
	return t.newQuery(target, math.Inf(1), limit, true)
}

// Nearest returns the single closest item to target, if the tree is
// non-empty.
func (t *Tree[T]) Nearest(target T) (QueryResult[T], bool) {
	return t.NearestByLimit(target, 1).Next()
}
