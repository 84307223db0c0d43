package ordered

import (
	"github.com/npillmayer/ordered/btree"
)

// List is an indexable sequence backed by the shared tree engine. Entries
// are addressed purely by position; there is no comparison key.
//
// All positional arguments accept the negative offset-from-end convention.
type List[T any] struct {
	tree *btree.Tree[T]
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{tree: btree.New[T]()}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return l.tree.Len()
}

// Push appends an item.
func (l *List[T]) Push(item T) {
	ok := l.tree.InsertAt(l.tree.Len(), item)
	assertThat(ok, "list push: append position rejected")
}

// Pop removes and returns the last item.
func (l *List[T]) Pop() (T, bool) {
	return l.tree.RemoveAt(-1)
}

// Shift removes and returns the first item.
func (l *List[T]) Shift() (T, bool) {
	return l.tree.RemoveAt(0)
}

// Unshift prepends an item.
func (l *List[T]) Unshift(item T) {
	ok := l.tree.InsertAt(0, item)
	assertThat(ok, "list unshift: front position rejected")
}

// Insert splices item in before position index, so it ends up at that
// position. index may equal Len (append). Out-of-range positions are
// rejected with a false return.
func (l *List[T]) Insert(index int, item T) bool {
	return l.tree.InsertAt(index, item)
}

// At returns the item at a position.
func (l *List[T]) At(index int) (T, bool) {
	return l.tree.At(index)
}

// Set overwrites the item at a position and returns the previous item.
func (l *List[T]) Set(index int, item T) (T, bool) {
	return l.tree.ReplaceAt(index, item)
}

// RemoveAt removes and returns the item at a position.
func (l *List[T]) RemoveAt(index int) (T, bool) {
	return l.tree.RemoveAt(index)
}

// First returns the first item.
func (l *List[T]) First() (T, bool) {
	return l.tree.First()
}

// Last returns the last item.
func (l *List[T]) Last() (T, bool) {
	return l.tree.Last()
}

// Values collects all items front to back.
func (l *List[T]) Values() []T {
	return l.tree.Iter().Collect()
}

// Each walks the items front to back, stopping early if fn returns false.
func (l *List[T]) Each(fn func(item T) bool) {
	l.tree.Iter().Each(fn)
}

// Iter returns an unbounded forward cursor.
func (l *List[T]) Iter() *btree.Iterator[T] {
	return l.tree.Iter()
}

// Retro returns an unbounded backward cursor.
func (l *List[T]) Retro() *btree.Iterator[T] {
	return l.tree.Retro()
}

// Slice returns a forward cursor over [start, stop). Both bounds are
// optional: Slice() iterates everything, Slice(start) iterates to the end.
func (l *List[T]) Slice(bounds ...int) *btree.Iterator[T] {
	start, stop := sliceBounds(bounds, l.tree.Len())
	return l.tree.Slice(start, stop)
}

// RetroSlice returns a backward cursor producing the items of [stop, start)
// in reverse. RetroSlice() iterates everything back to front.
func (l *List[T]) RetroSlice(bounds ...int) *btree.Iterator[T] {
	start, stop := retroBounds(bounds, l.tree.Len())
	return l.tree.RetroSlice(start, stop)
}

// Assign replaces the list contents with the given items, building the new
// tree in one linear pass.
func (l *List[T]) Assign(items []T) {
	tracer().Debugf("list assign of %d items", len(items))
	l.tree.Assign(items, nil, false)
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.tree.Clear()
}

// sliceBounds fills in defaults for optional forward slice bounds.
func sliceBounds(bounds []int, size int) (start, stop int) {
	start, stop = 0, size
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		stop = bounds[1]
	}
	return start, stop
}

// retroBounds fills in defaults for optional backward slice bounds: the
// default full range is (size, 0).
func retroBounds(bounds []int, size int) (start, stop int) {
	start, stop = size, 0
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		stop = bounds[1]
	}
	return start, stop
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
