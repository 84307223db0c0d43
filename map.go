package ordered

import (
	"github.com/npillmayer/ordered/btree"
)

// Pair is a key/value entry of a Map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered key→value map. Pairs are kept sorted by key per the
// comparator supplied at construction; every key occurs at most once.
type Map[K, V any] struct {
	tree *btree.Tree[Pair[K, V]]
	cmp  btree.Cmp[Pair[K, V]]
}

// NewMap creates an empty map ordered by the key comparator cmp.
func NewMap[K, V any](cmp func(a, b K) int) *Map[K, V] {
	assertThat(cmp != nil, "map requires a key comparator")
	return &Map[K, V]{
		tree: btree.New[Pair[K, V]](),
		cmp: func(a, b Pair[K, V]) int {
			return cmp(a.Key, b.Key)
		},
	}
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Set stores value under key, returning the previously stored value if the
// key was already present (replace semantics: size is unchanged then).
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	p, replaced := m.tree.Insert(Pair[K, V]{Key: key, Value: value}, m.cmp)
	return p.Value, replaced
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, ok := m.tree.Get(Pair[K, V]{Key: key}, m.cmp)
	return p.Value, ok
}

// GetDefault returns the value stored under key, or def if key is absent.
func (m *Map[K, V]) GetDefault(key K, def V) V {
	if p, ok := m.tree.Get(Pair[K, V]{Key: key}, m.cmp); ok {
		return p.Value
	}
	return def
}

// Delete removes key and returns the value that was stored under it.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	p, ok := m.tree.Delete(Pair[K, V]{Key: key}, m.cmp)
	return p.Value, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(Pair[K, V]{Key: key}, m.cmp)
}

// IndexOf returns the rank of key among the sorted keys, or the encoded
// insertion point -(index) - 1 if absent.
func (m *Map[K, V]) IndexOf(key K) int {
	return m.tree.IndexOf(Pair[K, V]{Key: key}, m.cmp)
}

// At returns the pair at a rank; negative ranks count from the end.
func (m *Map[K, V]) At(index int) (Pair[K, V], bool) {
	return m.tree.At(index)
}

// RemoveAt removes and returns the pair at a rank.
func (m *Map[K, V]) RemoveAt(index int) (Pair[K, V], bool) {
	return m.tree.RemoveAt(index)
}

// First returns the pair with the smallest key.
func (m *Map[K, V]) First() (Pair[K, V], bool) {
	return m.tree.First()
}

// Last returns the pair with the greatest key.
func (m *Map[K, V]) Last() (Pair[K, V], bool) {
	return m.tree.Last()
}

// Keys collects all keys in sorted order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Iter().Each(func(p Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	})
	return keys
}

// Values collects all values in key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.Len())
	m.tree.Iter().Each(func(p Pair[K, V]) bool {
		values = append(values, p.Value)
		return true
	})
	return values
}

// Each walks the pairs in key order, stopping early if fn returns false.
func (m *Map[K, V]) Each(fn func(key K, value V) bool) {
	m.tree.Iter().Each(func(p Pair[K, V]) bool {
		return fn(p.Key, p.Value)
	})
}

// Iter returns an unbounded forward cursor over pairs.
func (m *Map[K, V]) Iter() *btree.Iterator[Pair[K, V]] {
	return m.tree.Iter()
}

// Retro returns an unbounded backward cursor over pairs.
func (m *Map[K, V]) Retro() *btree.Iterator[Pair[K, V]] {
	return m.tree.Retro()
}

// Slice returns a forward cursor over the ranks [start, stop); see
// List.Slice for the bounds conventions.
func (m *Map[K, V]) Slice(bounds ...int) *btree.Iterator[Pair[K, V]] {
	start, stop := sliceBounds(bounds, m.tree.Len())
	return m.tree.Slice(start, stop)
}

// RetroSlice returns a backward cursor over the ranks [stop, start).
func (m *Map[K, V]) RetroSlice(bounds ...int) *btree.Iterator[Pair[K, V]] {
	start, stop := retroBounds(bounds, m.tree.Len())
	return m.tree.RetroSlice(start, stop)
}

// Assign replaces the map contents with a batch of pairs. If normalized is
// true the caller asserts the batch is sorted by key and free of duplicate
// keys, enabling a linear-time bulk load; otherwise pairs are inserted one
// by one and later pairs win over earlier ones with the same key.
func (m *Map[K, V]) Assign(pairs []Pair[K, V], normalized bool) {
	tracer().Debugf("map assign of %d pairs (normalized=%v)", len(pairs), normalized)
	m.tree.Assign(pairs, m.cmp, normalized)
}

// Clear removes all pairs.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}
