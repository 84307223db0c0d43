package btree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// sortedTree bulk-loads the keys 0..n-1.
func sortedTree(n int) *Tree[int] {
	tree := New[int]()
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	tree.Assign(keys, cmpInt, true)
	return tree
}

// Draining from the front keeps the underfull child at slot 0, so every
// rebalance pairs it with its successor sibling (the steal-from-successor
// and merge-with-successor cases, for leaves and, on deep trees, branches).
func TestDrainFromFront(t *testing.T) {
	tree := sortedTree(5000)
	for k := 0; k < 5000; k++ {
		removed, ok := tree.Delete(k, cmpInt)
		require.True(t, ok, "key %d", k)
		require.Equal(t, k, removed)
		if k%97 == 0 {
			require.NoError(t, tree.Check(cmpInt))
		}
	}
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check(cmpInt))
}

// Draining from the back pairs underfull children with their predecessor
// siblings (the mirrored four cases).
func TestDrainFromBack(t *testing.T) {
	tree := sortedTree(5000)
	for k := 4999; k >= 0; k-- {
		removed, ok := tree.Delete(k, cmpInt)
		require.True(t, ok, "key %d", k)
		require.Equal(t, k, removed)
		if k%97 == 0 {
			require.NoError(t, tree.Check(cmpInt))
		}
	}
	require.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Check(cmpInt))
}

func TestDrainFromMiddle(t *testing.T) {
	tree := sortedTree(5000)
	for n := 5000; n > 0; n-- {
		removed, ok := tree.RemoveAt(n / 2)
		require.True(t, ok)
		_ = removed
		if n%97 == 0 {
			require.NoError(t, tree.Check(cmpInt))
		}
	}
	require.Equal(t, 0, tree.Len())
}

// Alternating deletions leave many nodes hovering at minimum width, which
// flushes out steal/merge decisions on both leaf and branch levels.
func TestAlternatingDeletions(t *testing.T) {
	tree := sortedTree(4096)
	for k := 0; k < 4096; k += 2 {
		_, ok := tree.Delete(k, cmpInt)
		require.True(t, ok)
	}
	require.NoError(t, tree.Check(cmpInt))
	for k := 1; k < 4096; k += 4 {
		_, ok := tree.Delete(k, cmpInt)
		require.True(t, ok)
	}
	require.NoError(t, tree.Check(cmpInt))
	require.Equal(t, 1024, tree.Len())
}

func TestRootShrinksByOneLevel(t *testing.T) {
	tree := sortedTree(MaxWidth + 1) // just past a single leaf
	_, isBranch := tree.root.(*branch[int])
	require.True(t, isBranch)
	for k := 0; k <= MaxWidth; k++ {
		tree.Delete(k, cmpInt)
	}
	_, isLeaf := tree.root.(*leaf[int])
	require.True(t, isLeaf, "drained root must collapse back to a leaf")
}

func TestMixedInsertDeleteChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := New[int]()
	present := map[int]bool{}
	for op := 0; op < 20000; op++ {
		k := rng.Intn(3000)
		if rng.Intn(3) == 0 {
			_, ok := tree.Delete(k, cmpInt)
			require.Equal(t, present[k], ok, "delete %d at op %d", k, op)
			delete(present, k)
		} else {
			_, replaced := tree.Insert(k, cmpInt)
			require.Equal(t, present[k], replaced, "insert %d at op %d", k, op)
			present[k] = true
		}
		if op%500 == 0 {
			require.NoError(t, tree.Check(cmpInt))
		}
	}
	require.Equal(t, len(present), tree.Len())
	require.NoError(t, tree.Check(cmpInt))
	for k := range present {
		require.True(t, tree.Has(k, cmpInt))
	}
}
