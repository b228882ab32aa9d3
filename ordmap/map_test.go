package ordmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntMap[V any]() *Map[int, V] {
	return NewOrdered[int, V]()
}

func TestMap_InsertGet(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(1, "one"))
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestMap_Overwrite(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(10, "x"))
	require.NoError(t, m.Insert(10, "y"))
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(10)
	require.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestMap_RemoveThenContainsFalse(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(5, "five"))
	require.NoError(t, m.Remove(5))
	assert.False(t, m.Contains(5))
}

func TestMap_RemoveAbsentKeyIsNoOp(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(1, "one"))

	err := m.Remove(999)
	require.Error(t, err)

	f, ok := m.Errors().Last()
	require.True(t, ok)
	assert.Equal(t, "ErrKeyNotFound", f.Code.String())

	// map left unchanged
	assert.Equal(t, 1, m.Len())
	v, found := m.Get(1)
	require.True(t, found)
	assert.Equal(t, "one", v)
}

func TestMap_InsertIntoEmpty(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(1, "one"))
	assert.Equal(t, 1, m.Len())
}

func TestMap_RemoveOnlyNode(t *testing.T) {
	m := newIntMap[string]()
	require.NoError(t, m.Insert(1, "one"))
	require.NoError(t, m.Remove(1))
	assert.Equal(t, 0, m.Len())
	_, found := m.FirstKey()
	assert.False(t, found)
}

func TestMap_AscendingInsertionStaysBalanced(t *testing.T) {
	m := newIntMap[struct{}]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, m.Insert(i, struct{}{}))
	}

	keys := m.Keys().Slice()
	for i, k := range keys {
		assert.Equal(t, i+1, k)
	}

	// a red-black tree of n nodes is at most 2*log2(n+1) levels deep: 6 for n = 7
	for _, k := range keys {
		n, found := m.tree.Search(k)
		require.True(t, found)
		assert.LessOrEqual(t, m.tree.Depth(n)+1, 6)
	}
}

func TestMap_FirstLastNextKey(t *testing.T) {
	m := newIntMap[struct{}]()
	for _, k := range []int{5, 1, 9, 3, 7} {
		require.NoError(t, m.Insert(k, struct{}{}))
	}

	first, ok := m.FirstKey()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := m.LastKey()
	require.True(t, ok)
	assert.Equal(t, 9, last)

	next, ok := m.NextKey(5)
	require.True(t, ok)
	assert.Equal(t, 7, next)

	// NextKey on the max reports false (no successor)
	_, ok = m.NextKey(9)
	assert.False(t, ok)

	// NextKey on an absent key also reports false
	_, ok = m.NextKey(100)
	assert.False(t, ok)
}

func TestMap_FloorCeiling(t *testing.T) {
	m := newIntMap[struct{}]()
	for _, k := range []int{10, 20, 30} {
		require.NoError(t, m.Insert(k, struct{}{}))
	}

	fk, _, ok := m.Floor(25)
	require.True(t, ok)
	assert.Equal(t, 20, fk)

	ck, _, ok := m.Ceiling(25)
	require.True(t, ok)
	assert.Equal(t, 30, ck)

	fk, _, ok = m.Floor(10)
	require.True(t, ok)
	assert.Equal(t, 10, fk)

	_, _, ok = m.Floor(5)
	assert.False(t, ok)

	_, _, ok = m.Ceiling(35)
	assert.False(t, ok)
}

// TestScenario_BasicInsertLookup mirrors spec.md §8 scenario 1.
func TestScenario_BasicInsertLookup(t *testing.T) {
	m := newIntMap[byte]()
	require.NoError(t, m.Insert(21, 'a'))
	require.NoError(t, m.Insert(24, 'b'))
	require.NoError(t, m.Insert(23, 'c'))

	var gotKeys []int
	var gotValues []byte
	it := m.Iterator()
	for it.First(); !it.End(); it.Next() {
		gotKeys = append(gotKeys, it.Key())
		gotValues = append(gotValues, it.Value())
	}

	assert.Equal(t, []int{21, 23, 24}, gotKeys)
	assert.Equal(t, []byte{'a', 'c', 'b'}, gotValues)
}

// TestScenario_Overwrite mirrors spec.md §8 scenario 2.
func TestScenario_Overwrite(t *testing.T) {
	m := newIntMap[byte]()
	require.NoError(t, m.Insert(10, 'x'))
	require.NoError(t, m.Insert(10, 'y'))

	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(10)
	require.True(t, ok)
	assert.Equal(t, byte('y'), v)
}

// TestScenario_AscendingInsertion mirrors spec.md §8 scenario 3:
// keys 1..7 inserted in order (which would make a plain BST a
// right-leaning chain) must still traverse as 1..7. The depth bound is
// checked by TestMap_AscendingInsertionStaysBalanced.
func TestScenario_AscendingInsertion(t *testing.T) {
	m := newIntMap[struct{}]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, m.Insert(i, struct{}{}))
	}

	keys := m.Keys().Slice()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys)
}

// TestScenario_DeleteDoubleBlackFixup mirrors spec.md §8 scenario 4:
// build the tree from scenario 3, delete the minimum, and confirm the
// remaining keys traverse correctly and all invariants hold.
func TestScenario_DeleteDoubleBlackFixup(t *testing.T) {
	m := newIntMap[struct{}]()
	for i := 1; i <= 7; i++ {
		require.NoError(t, m.Insert(i, struct{}{}))
	}
	require.NoError(t, m.Remove(1))
	require.NoError(t, m.tree.IsTreeValid())

	keys := m.Keys().Slice()
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, keys)
}

// TestScenario_IteratorCompleteness mirrors spec.md §8 scenario 5:
// insert 50 random unique 32-bit keys and drive a canonical
// for-first-!end-next loop, asserting exactly 50 yields in ascending
// order.
func TestScenario_IteratorCompleteness(t *testing.T) {
	m := newIntMap[struct{}]()
	rng := rand.New(rand.NewSource(42))

	for m.Len() < 50 {
		key := rng.Int31()
		if m.Contains(int(key)) {
			continue
		}
		require.NoError(t, m.Insert(int(key), struct{}{}))
	}

	var yielded []int
	it := m.Iterator()
	for it.First(); !it.End(); it.Next() {
		yielded = append(yielded, it.Key())
	}

	require.Len(t, yielded, 50)
	for i := 1; i < len(yielded); i++ {
		assert.Less(t, yielded[i-1], yielded[i], "iterator must yield ascending keys")
	}
}
