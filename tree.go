package mtree

import "fmt"

// DistanceFunc computes the distance between two items of type T. It must
// satisfy the metric axioms: d(a, a) == 0, d(a, b) == d(b, a) >= 0, and
// d(a, c) <= d(a, b) + d(b, c). See package metric for ready-made
// implementations.
type DistanceFunc[T any] func(a, b T) float64

// Tree is an in-memory M-Tree indexing values of type T under a
// caller-supplied DistanceFunc. T need not be comparable: item identity is
// defined by the metric itself (distance zero), not by Go's ==, so Tree
// can index slice- and map-shaped values such as []float64 vectors. The
// zero value is not usable; construct a Tree with New.
//
// A Tree is not safe for concurrent mutation, nor for a mutation running
// concurrently with a Query.
type Tree[T any] struct {
	distance    DistanceFunc[T]
	minCapacity int
	root        *node[T]
	size        int
	opts        options[T]
}

// New constructs a Tree with the given minimum node capacity (every
// non-root node holds at least minCapacity children or entries) and
// distance function.
func New[T any](minCapacity int, distanceFn DistanceFunc[T], optFns ...Option[T]) (*Tree[T], error) {
	if distanceFn == nil {
		return nil, ErrNilDistanceFunc
	}
	if minCapacity < 2 {
		return nil, fmt.Errorf("%w: min capacity %d must be at least 2", ErrInvalidCapacity, minCapacity)
	}

	o := applyOptions(minCapacity, optFns)
	if o.maxCapacity < 2*minCapacity-1 {
		return nil, fmt.Errorf("%w: max capacity %d too small for min capacity %d (need at least %d)", ErrInvalidCapacity, o.maxCapacity, minCapacity, 2*minCapacity-1)
	}

	return &Tree[T]{
		distance:    distanceFn,
		minCapacity: minCapacity,
		opts:        o,
	}, nil
}

// Len returns the number of items currently indexed.
func (t *Tree[T]) Len() int { return t.size }

// minCapacityFor returns the minimum child/entry count a node of kind k
// must maintain. Root and RootLeaf have no minimum: the root may be
// arbitrarily small, down to a single item.
func (t *Tree[T]) minCapacityFor(k nodeKind) int {
	if k == kindRoot || k == kindRootLeaf {
		return 0
	}
	return t.minCapacity
}

func (t *Tree[T]) maybeCheck() {
	if t.opts.debugChecks {
		t.Check()
	}
}
