package mtree

import "fmt"

// Check walks the tree verifying its structural invariants: capacity
// bounds, parent pointers, covering-radius consistency, and
// distance-to-parent correctness. It panics on the first violation found.
//
// Check is expensive (a full tree traversal) and is intended for tests and
// for WithDebugChecks, not routine production use.
func (t *Tree[T]) Check() {
	if t.root == nil {
		return
	}
	if t.root.parent != nil {
		panic(&ErrInvariantViolation{Invariant: "root has no parent", Detail: "root.parent != nil"})
	}
	t.checkNode(t.root, true)
}

func (t *Tree[T]) checkNode(n *node[T], isRoot bool) {
	if !isRoot {
		min := t.minCapacityFor(n.kind)
		if n.children.len() < min {
			panic(&ErrInvariantViolation{
				Invariant: "minimum capacity",
				Detail:    fmt.Sprintf("%s node has %d children, want >= %d", n.kind, n.children.len(), min),
			})
		}
	}
	if n.children.len() > t.opts.maxCapacity {
		panic(&ErrInvariantViolation{
			Invariant: "maximum capacity",
			Detail:    fmt.Sprintf("%s node has %d children, want <= %d", n.kind, n.children.len(), t.opts.maxCapacity),
		})
	}

	leafChildren, nodeChildren := 0, 0
	for _, it := range n.children.all() {
		switch v := it.(type) {
		case *entry[T]:
			leafChildren++
			want := t.distance(n.pivot, v.item)
			if !floatsEqual(want, v.distToParent) {
				panic(&ErrInvariantViolation{
					Invariant: "distance to parent",
					Detail:    fmt.Sprintf("entry: got %v, want %v", v.distToParent, want),
				})
			}
			if want > n.radius+epsilon {
				panic(&ErrInvariantViolation{
					Invariant: "covering radius",
					Detail:    fmt.Sprintf("entry distance %v exceeds radius %v", want, n.radius),
				})
			}
		case *node[T]:
			nodeChildren++
			if v.parent != n {
				panic(&ErrInvariantViolation{Invariant: "parent pointer", Detail: "child.parent != n"})
			}
			want := t.distance(n.pivot, v.pivot)
			if !floatsEqual(want, v.distToParent) {
				panic(&ErrInvariantViolation{
					Invariant: "distance to parent",
					Detail:    fmt.Sprintf("node: got %v, want %v", v.distToParent, want),
				})
			}
			if want+v.radius > n.radius+epsilon {
				panic(&ErrInvariantViolation{
					Invariant: "covering radius",
					Detail:    fmt.Sprintf("child coverage %v exceeds radius %v", want+v.radius, n.radius),
				})
			}
			t.checkNode(v, false)
		}
	}

	if leafChildren > 0 && !n.kind.isLeaf() {
		panic(&ErrInvariantViolation{Invariant: "entry under non-leaf node"})
	}
	if nodeChildren > 0 && n.kind.isLeaf() {
		panic(&ErrInvariantViolation{Invariant: "node child under leaf node"})
	}
}
