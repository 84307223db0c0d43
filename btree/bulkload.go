package btree

// Assign discards the current tree and rebuilds it from a batch of items.
//
// For the sequence flavor cmp is nil and entries are chunked in their given
// order. For keyed flavors, normalized asserts that the batch is already
// sorted by comparison key and de-duplicated; under that assertion the tree
// is built bottom-up in linear time. Passing normalized == true for a batch
// that is not actually normalized produces a tree that violates the sorted
// order invariant. An un-normalized keyed batch falls back to incremental
// insertion at O(n log n).
func (t *Tree[T]) Assign(items []T, cmp Cmp[T], normalized bool) {
	assert(t != nil, "Assign called on nil tree")
	t.Clear()
	if len(items) == 0 {
		return
	}
	if cmp != nil && !normalized {
		for _, item := range items {
			t.Insert(item, cmp)
		}
		return
	}
	t.root = bulkLoad(items)
}

// bulkLoad builds a fully balanced tree for a batch in one bottom-up pass:
// leaf-sized chunks first, then branch levels over the previous level until
// a single root remains. Every chunk stays within [MinWidth, MaxWidth]
// except a sole root-level node, which may be narrower.
func bulkLoad[T any](items []T) node[T] {
	assert(len(items) > 0, "bulkLoad called with empty batch")
	counts := chunkCounts(len(items))
	level := make([]node[T], len(counts))
	var prev *leaf[T]
	offset := 0
	for i, n := range counts {
		entries := make([]T, n)
		copy(entries, items[offset:offset+n])
		offset += n
		l := &leaf[T]{entries: entries, prev: prev}
		if prev != nil {
			prev.next = l
		}
		prev = l
		level[i] = l
	}
	for len(level) > 1 {
		counts = chunkCounts(len(level))
		parents := make([]node[T], len(counts))
		offset = 0
		for i, n := range counts {
			children := make([]node[T], n)
			copy(children, level[offset:offset+n])
			offset += n
			b := &branch[T]{
				items:    make([]T, n),
				sizes:    make([]int, n),
				children: children,
			}
			for j, child := range children {
				b.items[j] = subtreeFirst[T](child)
			}
			b.refreshSizes(0)
			parents[i] = b
		}
		level = parents
	}
	return level[0]
}

// chunkCounts partitions n into the fewest chunks of at most MaxWidth,
// spread evenly so that no chunk (other than a singleton total) drops below
// MinWidth.
func chunkCounts(n int) []int {
	k := (n + MaxWidth - 1) / MaxWidth
	base, rem := n/k, n%k
	counts := make([]int, k)
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}
