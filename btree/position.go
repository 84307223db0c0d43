package btree

// locateLeaf descends by global position and returns the leaf holding it
// together with the local offset. The position must be normalized and in
// range; callers gate on normalize.
func (t *Tree[T]) locateLeaf(index int) (*leaf[T], int) {
	assert(index >= 0 && index < t.Len(), "locateLeaf called with out-of-range position")
	n := t.root
	for !n.isLeaf() {
		b := n.(*branch[T])
		slot := 0
		for b.sizes[slot] <= index {
			slot++
		}
		if slot > 0 {
			index -= b.sizes[slot-1]
		}
		n = b.children[slot]
	}
	return n.(*leaf[T]), index
}

// At returns the entry at a global position. Negative positions count from
// the end; out-of-range positions are a not-found result, never a fault.
func (t *Tree[T]) At(index int) (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	index, ok := t.normalize(index)
	if !ok {
		return zero, false
	}
	l, offset := t.locateLeaf(index)
	return l.entries[offset], true
}

// ReplaceAt overwrites the entry at a global position and returns the
// previous entry. The tree shape and all sizes are unchanged; for keyed
// flavors the caller must ensure the replacement preserves ordering.
func (t *Tree[T]) ReplaceAt(index int, item T) (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	index, ok := t.normalize(index)
	if !ok {
		return zero, false
	}
	return replaceIn(t.root, index, item), true
}

// replaceIn recurses by position so that pivots along the descent path can
// be re-derived when the replacement lands on a subtree's first entry.
func replaceIn[T any](n node[T], index int, item T) T {
	if n.isLeaf() {
		l := n.(*leaf[T])
		prev := l.entries[index]
		l.entries[index] = item
		return prev
	}
	b := n.(*branch[T])
	slot := 0
	for b.sizes[slot] <= index {
		slot++
	}
	if slot > 0 {
		index -= b.sizes[slot-1]
	}
	prev := replaceIn(b.children[slot], index, item)
	b.fixPivot(slot)
	return prev
}
