package ordmap

import (
	"github.com/mikenye/ordmap/bst"
	"github.com/mikenye/ordmap/rbtree"
)

// Iterator walks a Map in ascending key order via a first/next/last/
// end protocol (spec.md §4.5).
//
// An Iterator holds a non-owning reference to its Map; the Map must
// outlive the Iterator. Mutating the Map while an Iterator is
// positioned invalidates that Iterator — no protection is provided,
// matching the source engine's contract.
type Iterator[K, V any] struct {
	m              *Map[K, V]
	node           *bst.Node[K, V, rbtree.Color]
	lastKeyReached bool
}

// Iterator returns a new Iterator over m, initially unpositioned.
// Call First (or Last) before reading Key/Value.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// First positions the iterator at the map's minimum key.
func (it *Iterator[K, V]) First() {
	it.lastKeyReached = false
	if it.m.tree.Size() == 0 {
		it.node = it.m.tree.Sentinel()
		return
	}
	it.node = it.m.tree.Min(it.m.tree.Root())
}

// Last positions the iterator at the map's maximum key.
func (it *Iterator[K, V]) Last() {
	it.lastKeyReached = false
	if it.m.tree.Size() == 0 {
		it.node = it.m.tree.Sentinel()
		return
	}
	it.node = it.m.tree.Max(it.m.tree.Root())
}

// Next advances the iterator to the successor of its current key.
//
// If the iterator is already on the maximum key, Next marks it
// terminal rather than moving: the following End call will report
// true, and a further Next is a no-op that leaves the iterator parked
// on the maximum — matching the canonical `for First(); !End();
// Next()` loop's "yield the maximum exactly once" contract.
func (it *Iterator[K, V]) Next() {
	if it.node == nil || it.m.tree.IsNil(it.node) {
		return
	}
	succ := it.m.tree.Successor(it.node)
	if it.m.tree.IsNil(succ) {
		it.lastKeyReached = true
		return
	}
	it.node = succ
}

// Prev retreats the iterator to the predecessor of its current key,
// the mirror image of Next, useful for descending traversal.
func (it *Iterator[K, V]) Prev() {
	if it.node == nil || it.m.tree.IsNil(it.node) {
		return
	}
	pred := it.m.tree.Predecessor(it.node)
	if it.m.tree.IsNil(pred) {
		return
	}
	it.node = pred
	it.lastKeyReached = false
}

// End reports whether iteration is complete.
//
// End returns false the first time the iterator reaches the maximum
// key (so the maximum is still yielded by the loop body), then true on
// the following call. This lets `for it.First(); !it.End();
// it.Next() {}` visit the maximum exactly once.
func (it *Iterator[K, V]) End() bool {
	if it.node == nil || it.m.tree.IsNil(it.node) {
		return true
	}
	if it.lastKeyReached {
		it.lastKeyReached = false
		return true
	}
	return false
}

// Key returns the key at the iterator's current position.
//
// Calling Key before First/Last, or on an empty map, returns the zero
// value. Once End has reported true the iterator stays parked on the
// maximum, so Key returns the maximum key.
func (it *Iterator[K, V]) Key() K {
	if it.node == nil || it.m.tree.IsNil(it.node) {
		var zero K
		return zero
	}
	return it.m.tree.Key(it.node)
}

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() V {
	if it.node == nil || it.m.tree.IsNil(it.node) {
		var zero V
		return zero
	}
	return it.m.tree.Value(it.node)
}
