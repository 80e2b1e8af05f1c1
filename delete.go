package mtree

// Remove deletes item from the tree if present, reporting whether it was
// found. Equality is defined by the metric: a child whose routing value is
// at distance zero from item is treated as the same item, after pruning
// subtrees the triangle inequality proves cannot contain it.
func (t *Tree[T]) Remove(item T) bool {
	if t.root == nil {
		return false
	}

	removed := t.removeData(t.root, item)
	if removed {
		t.size--
		switch {
		case t.root.children.len() == 0:
			t.root = nil
		case t.root.kind == kindRoot && t.root.children.len() == 1:
			t.collapseRoot()
		}
	}
	if t.opts.logger != nil {
		t.opts.logger.LogRemove(removed, false)
	}
	t.maybeCheck()
	return removed
}

// removeData wraps doRemoveData with the capacity check every node in the
// path from root to the removed item must undergo: after a deletion
// anywhere in n's subtree, n itself may have dropped below its minimum
// capacity, independent of whether the immediate child it recursed into
// did.
func (t *Tree[T]) removeData(n *node[T], item T) bool {
	found := t.doRemoveData(n, item)
	if found && n.parent != nil && n.children.len() < t.minCapacityFor(n.kind) {
		t.balanceChildren(n)
	}
	return found
}

func (t *Tree[T]) doRemoveData(n *node[T], item T) bool {
	if n.kind.isLeaf() {
		if idx, ok := n.children.findEntryIndex(item, t.distance); ok {
			n.children.removeAt(idx)
			return true
		}
		return false
	}

	distToPivot := t.distance(item, n.pivot)
	for _, it := range n.children.all() {
		c := it.(*node[T])
		// Triangle-inequality lower bound: item cannot be covered by c
		// unless abs(distToPivot - c.distToParent) <= c.radius.
		if absF(distToPivot-c.distToParent) > c.radius {
			continue
		}
		if t.distance(item, c.pivot) > c.radius {
			continue
		}
		if t.removeData(c, item) {
			if c.children.len() == 0 {
				n.children.removeItem(c)
			} else {
				n.bumpRadius(coverage[T](c))
			}
			return true
		}
	}
	return false
}

// balanceChildren repairs n's under-capacity children list by donating one
// item from the nearest sibling with spare capacity, or merging n entirely
// into the nearest sibling overall if no sibling has anything to spare.
// Nearness is by distance between pivots, matching the donor/merge-target
// selection described for deletion.
func (t *Tree[T]) balanceChildren(n *node[T]) {
	parent := n.parent
	if parent == nil {
		return
	}

	var donor, nearest *node[T]
	var donorDist, nearestDist float64
	for _, it := range parent.children.all() {
		c := it.(*node[T])
		if c == n {
			continue
		}
		d := t.distance(n.pivot, c.pivot)
		if nearest == nil || d < nearestDist {
			nearest, nearestDist = c, d
		}
		if c.children.len() > t.minCapacityFor(c.kind) && (donor == nil || d < donorDist) {
			donor, donorDist = c, d
		}
	}
	if nearest == nil {
		return
	}

	if donor != nil {
		t.donate(parent, donor, n)
		if t.opts.logger != nil {
			t.opts.logger.LogUnderflow(false)
		}
		return
	}

	t.merge(nearest, n)
	if t.opts.logger != nil {
		t.opts.logger.LogUnderflow(true)
	}
}

// donate moves the one item of from closest to to's pivot over to to, so
// that the donated item fits as naturally as possible into its new
// subtree.
func (t *Tree[T]) donate(parent, from, to *node[T]) {
	items := from.children.all()
	var best indexItem[T]
	var bestDist float64
	for i, it := range items {
		d := t.distance(to.pivot, it.routingValue())
		if i == 0 || d < bestDist {
			best, bestDist = it, d
		}
	}
	from.children.removeItem(best)
	t.reattach(to, best)
	parent.bumpRadius(coverage[T](to))
}

// merge drains every item out of from into into, leaving from empty so the
// caller's existing empty-child cleanup (in doRemoveData) removes it from
// its parent. Every grandchild reattached to into can grow into's coverage
// radius past what into's own parent currently records, so the parent's
// radius must be bumped too, mirroring donate.
func (t *Tree[T]) merge(into, from *node[T]) {
	items := append([]indexItem[T](nil), from.children.all()...)
	for _, it := range items {
		from.children.removeItem(it)
		t.reattach(into, it)
	}
	if into.parent != nil {
		into.parent.bumpRadius(coverage[T](into))
	}
}

func (t *Tree[T]) reattach(owner *node[T], it indexItem[T]) {
	switch v := it.(type) {
	case *entry[T]:
		v.distToParent = t.distance(owner.pivot, v.item)
		owner.children.add(v)
		owner.bumpRadius(v.distToParent)
	case *node[T]:
		v.parent = owner
		v.distToParent = t.distance(owner.pivot, v.pivot)
		owner.children.add(v)
		owner.bumpRadius(coverage[T](v))
	}
}

// collapseRoot drops one level of the tree when the root's only remaining
// child subsumes it, promoting that child to be the new root in place.
func (t *Tree[T]) collapseRoot() {
	only := t.root.children.all()[0].(*node[T])
	if only.kind.isLeaf() {
		only.kind = kindRootLeaf
	} else {
		only.kind = kindRoot
	}
	only.parent = nil
	t.root = only
}
