package btree

// Tree is a mutable order-statistic B+ tree over entries of type T.
//
// The zero value is not usable; create trees with New. A fresh tree consists
// of a single empty leaf; the root reference is rebound (never mutated in
// place) whenever the tree grows a level after a root split or shrinks one
// after a root-level merge.
type Tree[T any] struct {
	root node[T]
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: &leaf[T]{}}
}

// Len returns the number of entries in the tree.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.count()
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// First returns the smallest (leftmost) entry.
func (t *Tree[T]) First() (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	l := firstLeaf[T](t.root)
	if len(l.entries) == 0 {
		return zero, false
	}
	return l.entries[0], true
}

// Last returns the greatest (rightmost) entry.
func (t *Tree[T]) Last() (T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, false
	}
	l := lastLeaf[T](t.root)
	if len(l.entries) == 0 {
		return zero, false
	}
	return l.entries[len(l.entries)-1], true
}

// Clear detaches all nodes and resets the tree to a single empty leaf.
func (t *Tree[T]) Clear() {
	if t == nil || t.root == nil {
		return
	}
	teardown[T](t.root)
	t.root = &leaf[T]{}
}

// teardown recursively unlinks a subtree so that no detached node keeps
// another one reachable.
func teardown[T any](n node[T]) {
	if n.isLeaf() {
		l := n.(*leaf[T])
		l.entries = nil
		l.prev, l.next = nil, nil
		return
	}
	b := n.(*branch[T])
	for i, child := range b.children {
		teardown[T](child)
		b.children[i] = nil // for gc
	}
	b.items, b.sizes, b.children = nil, nil, nil
}

// firstLeaf descends along the leftmost spine.
func firstLeaf[T any](n node[T]) *leaf[T] {
	for !n.isLeaf() {
		b := n.(*branch[T])
		assert(len(b.children) > 0, "firstLeaf reached branch without children")
		n = b.children[0]
	}
	return n.(*leaf[T])
}

// lastLeaf descends along the rightmost spine.
func lastLeaf[T any](n node[T]) *leaf[T] {
	for !n.isLeaf() {
		b := n.(*branch[T])
		assert(len(b.children) > 0, "lastLeaf reached branch without children")
		n = b.children[len(b.children)-1]
	}
	return n.(*leaf[T])
}

// growRoot binds a new root branch over the former root and its split-off
// sibling. This is the only way tree depth increases.
func (t *Tree[T]) growRoot(right node[T]) {
	old := t.root
	b := &branch[T]{
		items:    []T{subtreeFirst[T](old), subtreeFirst[T](right)},
		sizes:    make([]int, 2),
		children: []node[T]{old, right},
	}
	b.refreshSizes(0)
	t.root = b
}

// shrinkRoot promotes the sole remaining child of a root branch. A root
// branch with two or more children is exempt from the minimum-width rule and
// stays as it is.
func (t *Tree[T]) shrinkRoot() {
	for {
		b, ok := t.root.(*branch[T])
		if !ok || len(b.children) != 1 {
			return
		}
		t.root = b.children[0]
		b.items, b.sizes, b.children = nil, nil, nil
	}
}

// normalize maps a position that may be negative (counting from the end)
// into [0, size); ok is false if the result is out of range.
func (t *Tree[T]) normalize(index int) (int, bool) {
	size := t.Len()
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return 0, false
	}
	return index, true
}
