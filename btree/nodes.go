package btree

const (
	// MinWidth is the lower occupancy bound for non-root nodes.
	MinWidth = 16
	// MaxWidth is the branching factor: the upper occupancy bound for all nodes.
	MaxWidth = 2 * MinWidth
)

// Cmp compares two entries by their comparison key and returns a value
// <0, 0, or >0 in the manner of strings.Compare. For key lookups the search
// key is passed as a probe entry in the second argument position.
type Cmp[T any] func(a, b T) int

// node is the tagged union of the two node shapes. Every node is owned by
// exactly one parent branch, or by the tree handle if it is the root.
type node[T any] interface {
	isLeaf() bool
	// width is the number of entries (leaf) or children (branch).
	width() int
	// count is the total number of entries in the subtree.
	count() int
}

// leaf holds entries in order and links sideways to its neighbors. The
// prev/next chain, read first to last, enumerates all entries of the tree.
type leaf[T any] struct {
	entries []T
	prev    *leaf[T]
	next    *leaf[T]
}

func (l *leaf[T]) isLeaf() bool { return true }
func (l *leaf[T]) width() int   { return len(l.entries) }
func (l *leaf[T]) count() int   { return len(l.entries) }

// branch routes descent. Invariants, holding at every call boundary:
//
//	items[i]    == first entry of children[i]'s subtree (the pivot)
//	sizes[i]    == total entry count of children[0..i]
//	len(items) == len(sizes) == len(children)
type branch[T any] struct {
	items    []T
	sizes    []int
	children []node[T]
}

func (b *branch[T]) isLeaf() bool { return false }
func (b *branch[T]) width() int   { return len(b.children) }

func (b *branch[T]) count() int {
	if len(b.sizes) == 0 {
		return 0
	}
	return b.sizes[len(b.sizes)-1]
}

// subtreeFirst returns the first entry of n's subtree in O(1): a branch
// already caches it as its leftmost pivot.
func subtreeFirst[T any](n node[T]) T {
	if n.isLeaf() {
		l := n.(*leaf[T])
		assert(len(l.entries) > 0, "subtreeFirst called on empty leaf")
		return l.entries[0]
	}
	b := n.(*branch[T])
	assert(len(b.items) > 0, "subtreeFirst called on empty branch")
	return b.items[0]
}

// refreshSizes recomputes the cumulative size suffix starting at child slot.
func (b *branch[T]) refreshSizes(from int) {
	assert(from >= 0, "refreshSizes called with negative slot")
	running := 0
	if from > 0 {
		running = b.sizes[from-1]
	}
	for i := from; i < len(b.children); i++ {
		running += b.children[i].count()
		b.sizes[i] = running
	}
}

// fixPivot re-derives the pivot for child slot after a mutation that may
// have changed the child subtree's first entry.
func (b *branch[T]) fixPivot(slot int) {
	b.items[slot] = subtreeFirst[T](b.children[slot])
}

// insertChild splices a child (with its pivot) in at slot. Cumulative sizes
// are only grown, not recomputed: the caller must follow up with
// refreshSizes from the lowest affected slot.
func (b *branch[T]) insertChild(slot int, child node[T]) {
	var zero T
	b.items = append(b.items, zero)
	copy(b.items[slot+1:], b.items[slot:])
	b.items[slot] = subtreeFirst[T](child)
	b.children = append(b.children, nil)
	copy(b.children[slot+1:], b.children[slot:])
	b.children[slot] = child
	b.sizes = append(b.sizes, 0)
}

// removeChild drops the child at slot together with its pivot. As with
// insertChild, the caller must refresh sizes afterwards and is responsible
// for detaching the removed node's contents.
func (b *branch[T]) removeChild(slot int) {
	var zero T
	copy(b.items[slot:], b.items[slot+1:])
	b.items[len(b.items)-1] = zero
	b.items = b.items[:len(b.items)-1]
	copy(b.children[slot:], b.children[slot+1:])
	b.children[len(b.children)-1] = nil // for gc
	b.children = b.children[:len(b.children)-1]
	b.sizes = b.sizes[:len(b.sizes)-1]
}
