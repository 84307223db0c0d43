package btree

// Iterator is a lazy cursor over the leaf chain. It produces entries one at
// a time through Next; exhaustion is signaled out of band by the second
// return value, so any entry value is valid in-band.
//
// An iterator is a live view, not a snapshot: mutating the tree while an
// iterator is outstanding invalidates its future results. Clone is the only
// supported way to fan out read access to the same position.
type Iterator[T any] struct {
	leaf      *leaf[T]
	index     int
	remaining int // -1 means unbounded
	reverse   bool
}

// Next produces the next entry, or ok == false once the cursor is exhausted.
func (it *Iterator[T]) Next() (item T, ok bool) {
	var zero T
	for {
		if it == nil || it.remaining == 0 || it.leaf == nil {
			return zero, false
		}
		if it.reverse {
			if it.index < 0 {
				it.leaf = it.leaf.prev
				if it.leaf != nil {
					it.index = len(it.leaf.entries) - 1
				}
				continue
			}
		} else if it.index >= len(it.leaf.entries) {
			it.leaf = it.leaf.next
			it.index = 0
			continue
		}
		item = it.leaf.entries[it.index]
		if it.reverse {
			it.index--
		} else {
			it.index++
		}
		if it.remaining > 0 {
			it.remaining--
		}
		return item, true
	}
}

// Clone copies the cursor state; the two cursors advance independently and
// neither affects the tree.
func (it *Iterator[T]) Clone() *Iterator[T] {
	if it == nil {
		return nil
	}
	clone := *it
	return &clone
}

// Each invokes fn for every remaining entry, stopping early if fn returns
// false. The cursor is consumed.
func (it *Iterator[T]) Each(fn func(item T) bool) {
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if !fn(item) {
			return
		}
	}
}

// Collect drains the cursor into a slice.
func (it *Iterator[T]) Collect() []T {
	var out []T
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		out = append(out, item)
	}
	return out
}

// Iter returns an unbounded forward cursor over the whole tree.
func (t *Tree[T]) Iter() *Iterator[T] {
	if t == nil || t.root == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{leaf: firstLeaf[T](t.root), index: 0, remaining: -1}
}

// Retro returns an unbounded backward cursor over the whole tree.
func (t *Tree[T]) Retro() *Iterator[T] {
	if t == nil || t.root == nil {
		return &Iterator[T]{reverse: true}
	}
	l := lastLeaf[T](t.root)
	return &Iterator[T]{leaf: l, index: len(l.entries) - 1, remaining: -1, reverse: true}
}

// Slice returns a forward cursor over positions [start, stop). Bounds may be
// negative (from the end) and are clamped into [0, size]; an empty range
// yields an immediately exhausted cursor without descending.
func (t *Tree[T]) Slice(start, stop int) *Iterator[T] {
	start, stop = t.clampRange(start, stop)
	count := stop - start
	if count <= 0 {
		return &Iterator[T]{}
	}
	l, offset := t.locateLeaf(start)
	return &Iterator[T]{leaf: l, index: offset, remaining: count}
}

// RetroSlice is the backward counterpart of Slice: it produces the entries
// of positions [stop, start) in reverse, beginning at position start-1. A
// full backward traversal is RetroSlice(size, 0).
func (t *Tree[T]) RetroSlice(start, stop int) *Iterator[T] {
	start, stop = t.clampRange(start, stop)
	count := start - stop
	if count <= 0 {
		return &Iterator[T]{reverse: true}
	}
	l, offset := t.locateLeaf(start - 1)
	return &Iterator[T]{leaf: l, index: offset, remaining: count, reverse: true}
}

// clampRange normalizes two slice bounds by the offset-from-end convention
// and clamps them into [0, size].
func (t *Tree[T]) clampRange(start, stop int) (int, int) {
	size := t.Len()
	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	start = max(0, min(start, size))
	stop = max(0, min(stop, size))
	return start, stop
}
