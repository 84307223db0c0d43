package ordered

import (
	"github.com/npillmayer/ordered/btree"
)

// Set is an ordered key set. Keys are kept sorted by the comparator supplied
// at construction; every key occurs at most once.
type Set[T any] struct {
	tree *btree.Tree[T]
	cmp  btree.Cmp[T]
}

// NewSet creates an empty set ordered by cmp.
func NewSet[T any](cmp btree.Cmp[T]) *Set[T] {
	assertThat(cmp != nil, "set requires a comparator")
	return &Set[T]{tree: btree.New[T](), cmp: cmp}
}

// Len returns the number of keys.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Add inserts key and reports whether it was not present before.
func (s *Set[T]) Add(key T) bool {
	_, replaced := s.tree.Insert(key, s.cmp)
	return !replaced
}

// Delete removes key and reports whether it was present.
func (s *Set[T]) Delete(key T) bool {
	_, ok := s.tree.Delete(key, s.cmp)
	return ok
}

// Has reports whether key is present.
func (s *Set[T]) Has(key T) bool {
	return s.tree.Has(key, s.cmp)
}

// IndexOf returns the rank of key: its position in sorted order if present,
// otherwise -(insertion point) - 1 (decode with btree.NotFound).
func (s *Set[T]) IndexOf(key T) int {
	return s.tree.IndexOf(key, s.cmp)
}

// At returns the key at a rank; negative ranks count from the end.
func (s *Set[T]) At(index int) (T, bool) {
	return s.tree.At(index)
}

// RemoveAt removes and returns the key at a rank.
func (s *Set[T]) RemoveAt(index int) (T, bool) {
	return s.tree.RemoveAt(index)
}

// First returns the smallest key.
func (s *Set[T]) First() (T, bool) {
	return s.tree.First()
}

// Last returns the greatest key.
func (s *Set[T]) Last() (T, bool) {
	return s.tree.Last()
}

// Values collects all keys in sorted order.
func (s *Set[T]) Values() []T {
	return s.tree.Iter().Collect()
}

// Each walks the keys in sorted order, stopping early if fn returns false.
func (s *Set[T]) Each(fn func(key T) bool) {
	s.tree.Iter().Each(fn)
}

// Iter returns an unbounded forward cursor.
func (s *Set[T]) Iter() *btree.Iterator[T] {
	return s.tree.Iter()
}

// Retro returns an unbounded backward cursor.
func (s *Set[T]) Retro() *btree.Iterator[T] {
	return s.tree.Retro()
}

// Slice returns a forward cursor over the ranks [start, stop); see
// List.Slice for the bounds conventions.
func (s *Set[T]) Slice(bounds ...int) *btree.Iterator[T] {
	start, stop := sliceBounds(bounds, s.tree.Len())
	return s.tree.Slice(start, stop)
}

// RetroSlice returns a backward cursor over the ranks [stop, start).
func (s *Set[T]) RetroSlice(bounds ...int) *btree.Iterator[T] {
	start, stop := retroBounds(bounds, s.tree.Len())
	return s.tree.RetroSlice(start, stop)
}

// Assign replaces the set contents with a batch of keys. If normalized is
// true the caller asserts the batch is sorted by cmp and free of duplicates,
// enabling a linear-time bulk load; otherwise the keys are inserted one by
// one at O(n log n).
func (s *Set[T]) Assign(keys []T, normalized bool) {
	tracer().Debugf("set assign of %d keys (normalized=%v)", len(keys), normalized)
	s.tree.Assign(keys, s.cmp, normalized)
}

// Clear removes all keys.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}
