// Package mtree implements an in-memory M-Tree: a dynamic, balanced index
// over any metric space.
//
// An M-Tree indexes values of an arbitrary type T, using only a
// caller-supplied distance function d(a, b T) float64 satisfying the metric
// axioms (non-negativity, identity of indiscernibles, symmetry, triangle
// inequality). It accelerates two query shapes:
//
//   - range queries: every indexed item within distance r of a query point
//   - k-nearest queries: the k items with smallest distance to a query
//     point, in non-decreasing order
//
// # Quick Start
//
//	tree, err := mtree.New(2, metric.Euclidean)
//	if err != nil {
//	    panic(err)
//	}
//	tree.Add([]float64{1, 2, 3})
//	tree.Add([]float64{4, 5, 6})
//
//	query := tree.NearestByLimit([]float64{0, 0, 0}, 5)
//	for r, ok := query.Next(); ok; r, ok = query.Next() {
//	    fmt.Println(r.Item, r.Distance)
//	}
//
// # Node Variants
//
// Internally the tree is built from four node shapes (RootLeaf, Root,
// Internal, Leaf), distinguished by whether they sit at the root and
// whether their children are leaf Entries or further Nodes. See node.go.
//
// # Concurrency
//
// A Tree is not safe for concurrent mutation, nor for a mutation running
// concurrently with a Query. Concurrent read-only Query use over a Tree
// that is not being mutated is safe.
//
// # Non-goals
//
// No on-disk persistence, no concurrent mutation, no exact-match secondary
// index, no bulk loading. The tree indexes distinct items: Add on an item
// already present is undefined behavior.
package mtree
