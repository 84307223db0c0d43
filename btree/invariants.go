package btree

import "fmt"

// Check validates the structural tree invariants:
//
//   - non-root nodes have width within [MinWidth, MaxWidth], the root has no
//     minimum,
//   - all leaves sit at equal depth,
//   - every cumulative size equals the sum of the child-prefix subtree sizes,
//   - the leaf chain is symmetric, gapless, and enumerates the same leaves as
//     an in-order walk,
//   - with a non-nil cmp: every pivot equals the first entry of its child's
//     subtree and forward iteration yields strictly increasing entries.
//
// This checker is intentionally strict and meant for tests; it is never
// called on hot paths.
func (t *Tree[T]) Check(cmp Cmp[T]) error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariant)
	}
	var ordered []*leaf[T]
	count, _, err := t.checkNode(t.root, true, cmp, &ordered)
	if err != nil {
		return err
	}
	if count != t.Len() {
		return fmt.Errorf("%w: walked %d entries, tree reports %d", ErrInvariant, count, t.Len())
	}
	if err := checkChain(ordered); err != nil {
		return err
	}
	if cmp != nil {
		if err := t.checkSorted(cmp); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[T]) checkNode(n node[T], isRoot bool, cmp Cmp[T], ordered *[]*leaf[T]) (count int, depth int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	w := n.width()
	if w > MaxWidth {
		return 0, 0, fmt.Errorf("%w: width %d exceeds maximum %d", ErrInvariant, w, MaxWidth)
	}
	if !isRoot && w < MinWidth {
		return 0, 0, fmt.Errorf("%w: non-root width %d below minimum %d", ErrInvariant, w, MinWidth)
	}
	if n.isLeaf() {
		*ordered = append(*ordered, n.(*leaf[T]))
		return w, 1, nil
	}
	b := n.(*branch[T])
	if len(b.items) != w || len(b.sizes) != w {
		return 0, 0, fmt.Errorf("%w: branch arrays out of step (%d items, %d sizes, %d children)",
			ErrInvariant, len(b.items), len(b.sizes), w)
	}
	if w == 0 {
		return 0, 0, fmt.Errorf("%w: branch without children", ErrInvariant)
	}
	var childDepth int
	for i, child := range b.children {
		cCount, cDepth, cErr := t.checkNode(child, false, cmp, ordered)
		if cErr != nil {
			return 0, 0, cErr
		}
		if i == 0 {
			childDepth = cDepth
		} else if cDepth != childDepth {
			return 0, 0, fmt.Errorf("%w: leaves at unequal depth", ErrInvariant)
		}
		count += cCount
		if b.sizes[i] != count {
			return 0, 0, fmt.Errorf("%w: cumulative size[%d] = %d, want %d", ErrInvariant, i, b.sizes[i], count)
		}
		if cmp != nil && cmp(b.items[i], subtreeFirst[T](child)) != 0 {
			return 0, 0, fmt.Errorf("%w: pivot %d does not match child subtree minimum", ErrInvariant, i)
		}
	}
	return count, childDepth + 1, nil
}

// checkChain verifies that the prev/next links of the in-order leaf sequence
// form exactly one gapless doubly linked chain.
func checkChain[T any](ordered []*leaf[T]) error {
	for i, l := range ordered {
		var wantPrev, wantNext *leaf[T]
		if i > 0 {
			wantPrev = ordered[i-1]
		}
		if i+1 < len(ordered) {
			wantNext = ordered[i+1]
		}
		if l.prev != wantPrev || l.next != wantNext {
			return fmt.Errorf("%w: leaf chain broken at leaf %d of %d", ErrInvariant, i, len(ordered))
		}
	}
	return nil
}

// checkSorted verifies strictly increasing forward iteration order.
func (t *Tree[T]) checkSorted(cmp Cmp[T]) error {
	it := t.Iter()
	prev, ok := it.Next()
	if !ok {
		return nil
	}
	pos := 1
	for item, more := it.Next(); more; item, more = it.Next() {
		if cmp(prev, item) >= 0 {
			return fmt.Errorf("%w: entries out of order at position %d", ErrInvariant, pos)
		}
		prev = item
		pos++
	}
	return nil
}
