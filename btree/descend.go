package btree

// NotFound decodes a negative result of IndexOf (or of the in-leaf search)
// into the insertion index where the missing key would be placed.
func NotFound(encoded int) int {
	assert(encoded < 0, "NotFound called with a non-negative index")
	return -encoded - 1
}

// searchEntries scans entries left to right for key. A hit returns the
// non-negative entry index; a miss returns -(insertion index) - 1, so the
// encoded not-found value for an empty slice is -1.
func searchEntries[T any](entries []T, key T, cmp Cmp[T]) int {
	for i, e := range entries {
		c := cmp(e, key)
		if c == 0 {
			return i
		}
		if c > 0 {
			return -i - 1
		}
	}
	return -len(entries) - 1
}

// childSlot picks the last child whose pivot is <= key. The first pivot is
// definitionally <= any key routed into this branch (it is the subtree
// minimum), so descent for smaller keys lands in child 0.
func (b *branch[T]) childSlot(key T, cmp Cmp[T]) int {
	slot := 0
	for slot+1 < len(b.items) && cmp(b.items[slot+1], key) <= 0 {
		slot++
	}
	return slot
}

// findLeaf locates the leaf that does or would contain key, plus the encoded
// in-leaf position (see searchEntries).
func (t *Tree[T]) findLeaf(key T, cmp Cmp[T]) (*leaf[T], int) {
	n := t.root
	for !n.isLeaf() {
		b := n.(*branch[T])
		n = b.children[b.childSlot(key, cmp)]
	}
	l := n.(*leaf[T])
	return l, searchEntries(l.entries, key, cmp)
}

// Has reports whether an entry equal to key is present.
func (t *Tree[T]) Has(key T, cmp Cmp[T]) bool {
	if t == nil || t.root == nil {
		return false
	}
	_, pos := t.findLeaf(key, cmp)
	return pos >= 0
}

// Get returns the entry equal to key, if present.
func (t *Tree[T]) Get(key T, cmp Cmp[T]) (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	l, pos := t.findLeaf(key, cmp)
	if pos < 0 {
		return zero, false
	}
	return l.entries[pos], true
}

// IndexOf translates a key into its global position. Present keys yield a
// non-negative index; absent keys yield -(insertion point) - 1. The descent
// mirrors findLeaf but accumulates the sizes of the sibling subtrees it
// passes over.
func (t *Tree[T]) IndexOf(key T, cmp Cmp[T]) int {
	if t == nil || t.root == nil {
		return -1
	}
	offset := 0
	n := t.root
	for !n.isLeaf() {
		b := n.(*branch[T])
		slot := b.childSlot(key, cmp)
		if slot > 0 {
			offset += b.sizes[slot-1]
		}
		n = b.children[slot]
	}
	l := n.(*leaf[T])
	pos := searchEntries(l.entries, key, cmp)
	if pos < 0 {
		return -(offset + NotFound(pos)) - 1
	}
	return offset + pos
}
