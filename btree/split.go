package btree

// The split engine resolves overflow after insertion. An overfull node keeps
// entries/children [0, MinWidth) and hands the remainder to a freshly
// allocated right sibling, which the caller splices in immediately after the
// original child. Splitting the root grows the tree by one level (growRoot).

// split carves off the right sibling of an overfull leaf and splices it into
// the leaf chain directly after l.
func (l *leaf[T]) split() *leaf[T] {
	w := len(l.entries)
	assert(w > MaxWidth, "leaf split without overflow")
	right := make([]T, w-MinWidth)
	copy(right, l.entries[MinWidth:])
	var zero T
	for i := MinWidth; i < w; i++ {
		l.entries[i] = zero // for gc
	}
	l.entries = l.entries[:MinWidth]
	sibling := &leaf[T]{entries: right, prev: l, next: l.next}
	if sibling.next != nil {
		sibling.next.prev = sibling
	}
	l.next = sibling
	return sibling
}

// split carves off the right sibling of an overfull branch. The retained
// prefix keeps its cumulative sizes; the sibling computes its own.
func (b *branch[T]) split() *branch[T] {
	w := len(b.children)
	assert(w > MaxWidth, "branch split without overflow")
	items := make([]T, w-MinWidth)
	copy(items, b.items[MinWidth:])
	children := make([]node[T], w-MinWidth)
	copy(children, b.children[MinWidth:])
	sibling := &branch[T]{items: items, sizes: make([]int, w-MinWidth), children: children}
	sibling.refreshSizes(0)
	var zero T
	for i := MinWidth; i < w; i++ {
		b.items[i] = zero
		b.children[i] = nil // for gc
	}
	b.items = b.items[:MinWidth]
	b.children = b.children[:MinWidth]
	b.sizes = b.sizes[:MinWidth]
	return sibling
}

// insertEntryAt splices an entry into a leaf at a local offset.
func (l *leaf[T]) insertEntryAt(offset int, item T) {
	var zero T
	l.entries = append(l.entries, zero)
	copy(l.entries[offset+1:], l.entries[offset:])
	l.entries[offset] = item
}

// Insert adds item at its sorted position per cmp. If an equal entry already
// exists it is replaced and returned; otherwise the tree grows by one entry.
// The root reference may change.
func (t *Tree[T]) Insert(item T, cmp Cmp[T]) (prev T, replaced bool) {
	assert(t != nil && t.root != nil, "Insert called on uninitialized tree")
	prev, replaced, sibling := t.insertEntry(t.root, item, cmp)
	if sibling != nil {
		t.growRoot(sibling)
	}
	return prev, replaced
}

// insertEntry descends by key, inserts into the target leaf, and propagates
// a split sibling upward. The returned sibling is non-nil only if n split.
func (t *Tree[T]) insertEntry(n node[T], item T, cmp Cmp[T]) (prev T, replaced bool, sibling node[T]) {
	if n.isLeaf() {
		l := n.(*leaf[T])
		pos := searchEntries(l.entries, item, cmp)
		if pos >= 0 {
			prev = l.entries[pos]
			l.entries[pos] = item
			return prev, true, nil
		}
		l.insertEntryAt(NotFound(pos), item)
		if len(l.entries) > MaxWidth {
			sibling = l.split()
		}
		return prev, false, sibling
	}
	b := n.(*branch[T])
	slot := b.childSlot(item, cmp)
	prev, replaced, childSibling := t.insertEntry(b.children[slot], item, cmp)
	if childSibling != nil {
		b.insertChild(slot+1, childSibling)
	}
	b.fixPivot(slot)
	b.refreshSizes(slot)
	if len(b.children) > MaxWidth {
		sibling = b.split()
	}
	return prev, replaced, sibling
}

// InsertAt splices item in before the entry at a global position, so that it
// ends up at that position. index may equal the tree size (append) and may
// be negative (from the end). This is the sequence-flavor insertion; for
// keyed flavors it would violate the sorted-order invariant unless the
// position matches the decoded IndexOf insertion point.
func (t *Tree[T]) InsertAt(index int, item T) bool {
	assert(t != nil && t.root != nil, "InsertAt called on uninitialized tree")
	size := t.Len()
	if index < 0 {
		index += size
	}
	if index < 0 || index > size {
		return false
	}
	sibling := t.insertNodeAt(t.root, index, item)
	if sibling != nil {
		t.growRoot(sibling)
	}
	return true
}

// insertNodeAt is the positional mirror of insertEntry, descending by
// cumulative sizes instead of pivots. Boundary positions land in the left
// child, so appending descends the rightmost spine.
func (t *Tree[T]) insertNodeAt(n node[T], index int, item T) (sibling node[T]) {
	if n.isLeaf() {
		l := n.(*leaf[T])
		l.insertEntryAt(index, item)
		if len(l.entries) > MaxWidth {
			sibling = l.split()
		}
		return sibling
	}
	b := n.(*branch[T])
	slot := 0
	for slot+1 < len(b.children) && b.sizes[slot] < index {
		slot++
	}
	if slot > 0 {
		index -= b.sizes[slot-1]
	}
	childSibling := t.insertNodeAt(b.children[slot], index, item)
	if childSibling != nil {
		b.insertChild(slot+1, childSibling)
	}
	b.fixPivot(slot)
	b.refreshSizes(slot)
	if len(b.children) > MaxWidth {
		sibling = b.split()
	}
	return sibling
}
