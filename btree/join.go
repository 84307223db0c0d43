package btree

// The join engine restores the minimum-width invariant after a deletion
// leaves a non-root child underfull. Exactly one adjacent sibling takes part:
// the successor if the underfull child is its parent's first child, otherwise
// the predecessor. A sibling with spare capacity donates a single entry or
// child (steal), a sibling at minimum width absorbs the whole node (merge).
// Leaf and branch shapes each have both mirrored directions, giving eight
// cases in total. A merge shrinks the parent, which may leave the parent
// itself underfull; that propagates upward through the delete recursion the
// same way splits propagate on insert.

// removeEntryAt splices out the entry at a local leaf offset.
func (l *leaf[T]) removeEntryAt(offset int) T {
	var zero T
	removed := l.entries[offset]
	copy(l.entries[offset:], l.entries[offset+1:])
	l.entries[len(l.entries)-1] = zero // for gc
	l.entries = l.entries[:len(l.entries)-1]
	return removed
}

// unlink detaches a leaf from the leaf chain and drops its contents.
func (l *leaf[T]) unlink() {
	if l.prev != nil {
		l.prev.next = l.next
	}
	if l.next != nil {
		l.next.prev = l.prev
	}
	l.prev, l.next, l.entries = nil, nil, nil
}

// Delete removes the entry equal to key per cmp, if present. The root
// reference may change.
func (t *Tree[T]) Delete(key T, cmp Cmp[T]) (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	removed, ok := t.deleteEntry(t.root, key, cmp)
	if ok {
		t.shrinkRoot()
	}
	return removed, ok
}

func (t *Tree[T]) deleteEntry(n node[T], key T, cmp Cmp[T]) (T, bool) {
	if n.isLeaf() {
		l := n.(*leaf[T])
		pos := searchEntries(l.entries, key, cmp)
		if pos < 0 {
			var zero T
			return zero, false
		}
		return l.removeEntryAt(pos), true
	}
	b := n.(*branch[T])
	slot := b.childSlot(key, cmp)
	removed, ok := t.deleteEntry(b.children[slot], key, cmp)
	if !ok {
		return removed, false
	}
	b.fixPivot(slot)
	b.refreshSizes(slot)
	if b.children[slot].width() < MinWidth {
		t.joinChild(b, slot)
	}
	return removed, true
}

// RemoveAt removes the entry at a global position. Negative positions count
// from the end; out-of-range positions are a not-found result.
func (t *Tree[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	index, ok := t.normalize(index)
	if !ok {
		return zero, false
	}
	removed := t.removeNodeAt(t.root, index)
	t.shrinkRoot()
	return removed, true
}

// removeNodeAt is the positional mirror of deleteEntry. The position is
// known to be in range, so the descent cannot miss.
func (t *Tree[T]) removeNodeAt(n node[T], index int) T {
	if n.isLeaf() {
		return n.(*leaf[T]).removeEntryAt(index)
	}
	b := n.(*branch[T])
	slot := 0
	for b.sizes[slot] <= index {
		slot++
	}
	if slot > 0 {
		index -= b.sizes[slot-1]
	}
	removed := t.removeNodeAt(b.children[slot], index)
	b.fixPivot(slot)
	b.refreshSizes(slot)
	if b.children[slot].width() < MinWidth {
		t.joinChild(b, slot)
	}
	return removed
}

// joinChild repairs the underfull child at slot by stealing from or merging
// with its designated sibling.
func (t *Tree[T]) joinChild(p *branch[T], slot int) {
	assert(len(p.children) >= 2, "join requires a sibling")
	from := slot - 1
	if slot == 0 {
		from = 1
	}
	child, sibling := p.children[slot], p.children[from]
	if child.isLeaf() {
		l, s := child.(*leaf[T]), sibling.(*leaf[T])
		if s.width() > MinWidth {
			t.stealLeaf(p, slot, from, l, s)
		} else {
			t.mergeLeaves(p, slot, from, l, s)
		}
		return
	}
	c, s := child.(*branch[T]), sibling.(*branch[T])
	if s.width() > MinWidth {
		t.stealBranch(p, slot, from, c, s)
	} else {
		t.mergeBranches(p, slot, from, c, s)
	}
}

// stealLeaf moves one entry from the spare-capacity sibling into the
// underfull leaf, from whichever end keeps order.
func (t *Tree[T]) stealLeaf(p *branch[T], slot, from int, l, s *leaf[T]) {
	if from > slot {
		l.entries = append(l.entries, s.removeEntryAt(0))
	} else {
		l.insertEntryAt(0, s.removeEntryAt(len(s.entries)-1))
	}
	p.fixPivot(slot)
	p.fixPivot(from)
	p.refreshSizes(min(slot, from))
}

// mergeLeaves folds the pair into the order-preserving survivor, detaches
// the emptied leaf from the chain, and removes its slot from the parent.
func (t *Tree[T]) mergeLeaves(p *branch[T], slot, from int, l, s *leaf[T]) {
	if from > slot {
		l.entries = append(l.entries, s.entries...)
		s.unlink()
		p.removeChild(from)
		p.fixPivot(slot)
		p.refreshSizes(slot)
		return
	}
	s.entries = append(s.entries, l.entries...)
	l.unlink()
	p.removeChild(slot)
	p.fixPivot(from)
	p.refreshSizes(from)
}

// stealBranch moves one child (and its pivot) across from the
// spare-capacity sibling, recomputing cumulative sizes on both nodes.
func (t *Tree[T]) stealBranch(p *branch[T], slot, from int, c, s *branch[T]) {
	if from > slot {
		moved := s.children[0]
		s.removeChild(0)
		s.refreshSizes(0)
		c.insertChild(len(c.children), moved)
		c.refreshSizes(len(c.children) - 1)
	} else {
		moved := s.children[len(s.children)-1]
		s.removeChild(len(s.children) - 1)
		c.insertChild(0, moved)
		c.refreshSizes(0)
	}
	p.fixPivot(slot)
	p.fixPivot(from)
	p.refreshSizes(min(slot, from))
}

// mergeBranches concatenates children and pivots into the order-preserving
// survivor, recomputes its sizes, and removes the emptied branch's slot.
func (t *Tree[T]) mergeBranches(p *branch[T], slot, from int, c, s *branch[T]) {
	if from > slot {
		w := len(c.children)
		c.items = append(c.items, s.items...)
		c.children = append(c.children, s.children...)
		c.sizes = append(c.sizes, s.sizes...)
		c.refreshSizes(w)
		s.items, s.sizes, s.children = nil, nil, nil
		p.removeChild(from)
		p.fixPivot(slot)
		p.refreshSizes(slot)
		return
	}
	w := len(s.children)
	s.items = append(s.items, c.items...)
	s.children = append(s.children, c.children...)
	s.sizes = append(s.sizes, c.sizes...)
	s.refreshSizes(w)
	c.items, c.sizes, c.children = nil, nil, nil
	p.removeChild(slot)
	p.fixPivot(from)
	p.refreshSizes(from)
}
