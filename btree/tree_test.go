package btree

import (
	"math/rand"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmpInt(a, b int) int { return a - b }

type pair struct {
	key int
	val string
}

func cmpPair(a, b pair) int { return a.key - b.key }

func collect[T any](t *testing.T, tree *Tree[T]) []T {
	t.Helper()
	return tree.Iter().Collect()
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check(cmpInt))

	_, ok := tree.At(0)
	tassert.False(t, ok)
	_, ok = tree.At(-1)
	tassert.False(t, ok)
	_, ok = tree.RemoveAt(0)
	tassert.False(t, ok)
	_, ok = tree.Delete(7, cmpInt)
	tassert.False(t, ok)
	tassert.False(t, tree.Has(7, cmpInt))

	// The encoded not-found value for an empty node is -1.
	tassert.Equal(t, -1, tree.IndexOf(7, cmpInt))
	tassert.Equal(t, 0, NotFound(tree.IndexOf(7, cmpInt)))

	_, ok = tree.Iter().Next()
	tassert.False(t, ok)
	_, ok = tree.Retro().Next()
	tassert.False(t, ok)
}

func TestInsertSortsEntries(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 1, 9, 3} {
		_, replaced := tree.Insert(k, cmpInt)
		require.False(t, replaced)
	}
	require.NoError(t, tree.Check(cmpInt))
	tassert.Equal(t, []int{1, 3, 5, 9}, collect(t, tree))
}

func TestInsertReplaceSemantics(t *testing.T) {
	tree := New[pair]()
	_, replaced := tree.Insert(pair{1, "one"}, cmpPair)
	require.False(t, replaced)
	_, replaced = tree.Insert(pair{2, "two"}, cmpPair)
	require.False(t, replaced)

	prev, replaced := tree.Insert(pair{1, "uno"}, cmpPair)
	require.True(t, replaced)
	tassert.Equal(t, pair{1, "one"}, prev)
	tassert.Equal(t, 2, tree.Len())

	got, ok := tree.Get(pair{key: 1}, cmpPair)
	require.True(t, ok)
	tassert.Equal(t, "uno", got.val)
}

func TestGetAndHas(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 100; k += 2 {
		tree.Insert(k, cmpInt)
	}
	for k := 0; k < 100; k++ {
		if k%2 == 0 {
			tassert.True(t, tree.Has(k, cmpInt), "key %d", k)
			got, ok := tree.Get(k, cmpInt)
			require.True(t, ok)
			tassert.Equal(t, k, got)
		} else {
			tassert.False(t, tree.Has(k, cmpInt), "key %d", k)
			_, ok := tree.Get(k, cmpInt)
			tassert.False(t, ok)
		}
	}
}

func TestIndexOfPresentAndAbsent(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{1, 2, 3, 5, 6} {
		tree.Insert(k, cmpInt)
	}
	tassert.Equal(t, 0, tree.IndexOf(1, cmpInt))
	tassert.Equal(t, 3, tree.IndexOf(5, cmpInt))
	tassert.Equal(t, 4, tree.IndexOf(6, cmpInt))

	// 4 is absent; its insertion point is 3.
	enc := tree.IndexOf(4, cmpInt)
	tassert.Equal(t, -4, enc)
	tassert.Equal(t, 3, NotFound(enc))

	tassert.Equal(t, -1, tree.IndexOf(0, cmpInt))
	tassert.Equal(t, -6, tree.IndexOf(9, cmpInt))
}

func TestIndexOfSpansLeaves(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 2000; k++ {
		tree.Insert(2*k, cmpInt)
	}
	require.NoError(t, tree.Check(cmpInt))
	for k := 0; k < 2000; k++ {
		require.Equal(t, k, tree.IndexOf(2*k, cmpInt))
		enc := tree.IndexOf(2*k+1, cmpInt)
		require.Negative(t, enc)
		require.Equal(t, k+1, NotFound(enc))
	}
}

func TestOrderStatisticsRoundTrip(t *testing.T) {
	tree := New[int]()
	for k := 999; k >= 0; k-- {
		tree.Insert(k, cmpInt)
	}
	require.NoError(t, tree.Check(cmpInt))
	require.Equal(t, 1000, tree.Len())

	i := 0
	tree.Iter().Each(func(item int) bool {
		got, ok := tree.At(i)
		require.True(t, ok)
		require.Equal(t, item, got, "position %d", i)
		i++
		return true
	})
	require.Equal(t, 1000, i)

	last, ok := tree.At(-1)
	require.True(t, ok)
	tassert.Equal(t, 999, last)
	first, ok := tree.At(-1000)
	require.True(t, ok)
	tassert.Equal(t, 0, first)
	_, ok = tree.At(-1001)
	tassert.False(t, ok)
	_, ok = tree.At(1000)
	tassert.False(t, ok)
}

func TestDeleteEveryEven(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 1000; k++ {
		tree.Insert(k, cmpInt)
	}
	for k := 0; k < 1000; k += 2 {
		removed, ok := tree.Delete(k, cmpInt)
		require.True(t, ok, "key %d", k)
		require.Equal(t, k, removed)
	}
	require.NoError(t, tree.Check(cmpInt))
	require.Equal(t, 500, tree.Len())

	want := make([]int, 0, 500)
	for k := 1; k < 1000; k += 2 {
		want = append(want, k)
	}
	tassert.Equal(t, want, collect(t, tree))
}

func TestInsertDeleteChurnEndsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := rng.Perm(500)
	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k, cmpInt)
	}
	require.NoError(t, tree.Check(cmpInt))
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		_, ok := tree.Delete(k, cmpInt)
		require.True(t, ok, "key %d", k)
		if i%50 == 0 {
			require.NoError(t, tree.Check(cmpInt))
		}
	}
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check(cmpInt))
	l, ok := tree.root.(*leaf[int])
	require.True(t, ok, "drained tree must collapse to a single leaf root")
	tassert.Empty(t, l.entries)
}

func TestRemoveAt(t *testing.T) {
	tree := New[string]()
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		require.True(t, tree.InsertAt(i, s))
	}
	removed, ok := tree.RemoveAt(-1)
	require.True(t, ok)
	tassert.Equal(t, "e", removed)
	got, ok := tree.At(-1)
	require.True(t, ok)
	tassert.Equal(t, "d", got)

	removed, ok = tree.RemoveAt(0)
	require.True(t, ok)
	tassert.Equal(t, "a", removed)
	tassert.Equal(t, []string{"b", "c", "d"}, collect(t, tree))

	_, ok = tree.RemoveAt(3)
	tassert.False(t, ok)
	_, ok = tree.RemoveAt(-4)
	tassert.False(t, ok)
}

func TestInsertAtPositions(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 100; i++ {
		require.True(t, tree.InsertAt(i, i)) // append
	}
	require.True(t, tree.InsertAt(0, -1))  // prepend
	require.True(t, tree.InsertAt(50, 77)) // middle
	require.True(t, tree.InsertAt(-1, 88)) // before the last entry
	require.NoError(t, tree.Check(nil))
	require.Equal(t, 103, tree.Len())

	got, _ := tree.At(0)
	tassert.Equal(t, -1, got)
	got, _ = tree.At(50)
	tassert.Equal(t, 77, got)
	got, _ = tree.At(101)
	tassert.Equal(t, 88, got)
	got, _ = tree.At(102)
	tassert.Equal(t, 99, got)

	tassert.False(t, tree.InsertAt(104, 0))
	tassert.False(t, tree.InsertAt(-105, 0))
	require.True(t, tree.InsertAt(tree.Len(), 100))
	got, _ = tree.At(-1)
	tassert.Equal(t, 100, got)
}

func TestReplaceAt(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 200; i++ {
		tree.InsertAt(i, i)
	}
	prev, ok := tree.ReplaceAt(0, 1000)
	require.True(t, ok)
	tassert.Equal(t, 0, prev)
	prev, ok = tree.ReplaceAt(-1, 2000)
	require.True(t, ok)
	tassert.Equal(t, 199, prev)
	require.NoError(t, tree.Check(nil))

	got, _ := tree.At(0)
	tassert.Equal(t, 1000, got)
	got, _ = tree.At(199)
	tassert.Equal(t, 2000, got)
	_, ok = tree.ReplaceAt(200, 0)
	tassert.False(t, ok)
}

func TestFirstLast(t *testing.T) {
	tree := New[int]()
	_, ok := tree.First()
	tassert.False(t, ok)
	_, ok = tree.Last()
	tassert.False(t, ok)

	for k := 0; k < 500; k++ {
		tree.Insert(k, cmpInt)
	}
	first, ok := tree.First()
	require.True(t, ok)
	tassert.Equal(t, 0, first)
	last, ok := tree.Last()
	require.True(t, ok)
	tassert.Equal(t, 499, last)
}

func TestClear(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 1000; k++ {
		tree.Insert(k, cmpInt)
	}
	tree.Clear()
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check(cmpInt))
	_, ok := tree.Iter().Next()
	tassert.False(t, ok)

	tree.Insert(1, cmpInt)
	tassert.Equal(t, 1, tree.Len())
}

func TestSizeMatchesLeafChain(t *testing.T) {
	tree := New[int]()
	for k := 0; k < 3000; k++ {
		tree.Insert(k, cmpInt)
	}
	sum := 0
	for l := firstLeaf[int](tree.root); l != nil; l = l.next {
		sum += len(l.entries)
	}
	tassert.Equal(t, tree.Len(), sum)
}
