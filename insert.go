package mtree

import "fmt"

// splitResult communicates an overflow split back up the insertion
// recursion: the node that just overflowed has been replaced by two new
// nodes, which the caller must splice into its own children in its place.
type splitResult[T any] struct {
	first, second *node[T]
}

// Add inserts item into the tree. Add on an item already present in the
// tree is undefined behavior: the tree assumes distinct items.
func (t *Tree[T]) Add(item T) {
	if t.root == nil {
		t.root = &node[T]{kind: kindRootLeaf, pivot: item}
		t.root.children.add(&entry[T]{item: item})
		t.size++
		if t.opts.logger != nil {
			t.opts.logger.LogInsert(0, false)
		}
		t.maybeCheck()
		return
	}

	sr := t.addData(t.root, item)
	if sr != nil {
		newRoot := &node[T]{kind: kindRoot, pivot: t.root.pivot}
		t.attachChild(newRoot, sr.first)
		t.attachChild(newRoot, sr.second)
		t.root = newRoot
	}
	t.size++
	if t.opts.logger != nil {
		t.opts.logger.LogInsert(0, sr != nil)
	}
	t.maybeCheck()
}

func (t *Tree[T]) attachChild(parent, child *node[T]) {
	child.parent = parent
	child.distToParent = t.distance(parent.pivot, child.pivot)
	parent.children.add(child)
	parent.bumpRadius(coverage[T](child))
}

// chooseRoute picks the child of n that item should descend into: the
// covering child (item already within its radius) closest to item if one
// exists, otherwise the child needing the smallest radius increase to
// cover item. It also returns the true distance from item to the chosen
// child's pivot.
func (t *Tree[T]) chooseRoute(n *node[T], item T) (*node[T], float64) {
	var covering, cheapest *node[T]
	var coveringDist, cheapestExpand float64

	for _, it := range n.children.all() {
		c := it.(*node[T])
		d := t.distance(item, c.pivot)
		if d <= c.radius {
			if covering == nil || d < coveringDist {
				covering, coveringDist = c, d
			}
			continue
		}
		expand := d - c.radius
		if cheapest == nil || expand < cheapestExpand {
			cheapest, cheapestExpand = c, expand
		}
	}
	if covering != nil {
		return covering, coveringDist
	}
	return cheapest, cheapestExpand + cheapest.radius
}

func (t *Tree[T]) addData(n *node[T], item T) *splitResult[T] {
	if n.kind.isLeaf() {
		e := &entry[T]{item: item, distToParent: t.distance(n.pivot, item)}
		n.children.add(e)
		n.bumpRadius(e.distToParent)
		if n.children.len() <= t.opts.maxCapacity {
			return nil
		}
		return t.split(n)
	}

	child, dist := t.chooseRoute(n, item)
	if dist > child.radius {
		child.radius = dist
		n.bumpRadius(coverage[T](child))
	}

	sr := t.addData(child, item)
	if sr == nil {
		n.bumpRadius(coverage[T](child))
		return nil
	}

	n.children.removeItem(child)
	var out *splitResult[T]
	if s := t.addChildToNode(n, sr.first); s != nil {
		out = s
	}
	if s := t.addChildToNode(n, sr.second); s != nil {
		out = s
	}
	return out
}

// addChildToNode attaches newChild as a routing child of parent, returning
// a splitResult if parent itself overflows as a result.
//
// The original M-Tree keeps a node's children in a map keyed by pivot
// value, which forces two children promoted to the same pivot to be
// merged rather than stored side by side. childSlot is a linear-scan slice
// instead, so two children sharing a pivot value route just as correctly
// as distinct ones would. addChildToNode still absorbs the common,
// non-cascading case of a pivot collision by transplanting the colliding
// child's own items into the existing sibling, matching the original's
// intent, but falls back to a plain sibling attachment when that
// transplant would itself overflow the sibling, rather than chase an
// arbitrarily deep cascade of splits the slice container doesn't need.
func (t *Tree[T]) addChildToNode(parent, newChild *node[T]) *splitResult[T] {
	if existing, ok := parent.children.findNode(newChild.pivot, t.distance); ok {
		items := collectItems(newChild)
		if existing.children.len()+len(items) <= t.opts.maxCapacity {
			for _, v := range items {
				t.addData(existing, v)
			}
			parent.bumpRadius(coverage[T](existing))
			if parent.children.len() <= t.opts.maxCapacity {
				return nil
			}
			return t.split(parent)
		}
	}

	t.attachChild(parent, newChild)
	if parent.children.len() <= t.opts.maxCapacity {
		return nil
	}
	return t.split(parent)
}

// split divides an overflowing node's children between two new sibling
// nodes using the tree's promotion and partition strategies, memoizing
// every distance computed along the way since promotion and partition both
// repeatedly measure distances between the same candidate pairs.
func (t *Tree[T]) split(n *node[T]) *splitResult[T] {
	items := n.children.all()
	values := make([]T, len(items))
	for i, it := range items {
		values[i] = it.routingValue()
	}

	cache := newSplitCache(values, t.distance)
	pi, pj := t.opts.promotion(len(values), cache.distance)

	remaining := make([]int, 0, len(values)-2)
	for i := range values {
		if i == pi || i == pj {
			continue
		}
		remaining = append(remaining, i)
	}

	part1, part2 := t.opts.partition(pi, pj, remaining, cache.distance)

	childKind := childKindAfterSplit(n.kind)
	first := &node[T]{kind: childKind, pivot: values[pi]}
	second := &node[T]{kind: childKind, pivot: values[pj]}

	t.attachSplitItem(first, items[pi], t.distance)
	for _, i := range part1 {
		t.attachSplitItem(first, items[i], t.distance)
	}
	t.attachSplitItem(second, items[pj], t.distance)
	for _, i := range part2 {
		t.attachSplitItem(second, items[i], t.distance)
	}

	if t.opts.logger != nil {
		t.opts.logger.LogSplit(n.kind, len(items))
	}

	return &splitResult[T]{first: first, second: second}
}

func (t *Tree[T]) attachSplitItem(owner *node[T], it indexItem[T], distance DistanceFunc[T]) {
	switch v := it.(type) {
	case *entry[T]:
		v.distToParent = distance(owner.pivot, v.item)
		owner.children.add(v)
		owner.bumpRadius(v.distToParent)
	case *node[T]:
		v.parent = owner
		v.distToParent = distance(owner.pivot, v.pivot)
		owner.children.add(v)
		owner.bumpRadius(coverage[T](v))
	default:
		panic(fmt.Sprintf("mtree: unknown index item type %T", it))
	}
}
