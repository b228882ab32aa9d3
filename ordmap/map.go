// Package ordmap provides the ordered map facade: a clean,
// domain-vocabulary wrapper around rbtree.Tree plus the in-order
// Iterator that walks it.
//
// Map presents insert/remove/get/contains/first/last/next over a
// generic, self-balancing red-black tree. Ordering is defined by the
// tree's comparator; NewOrdered builds one from keycmp's
// endianness-aware byte comparator, the engine's default notion of
// ordering (see spec.md §4.1). Custom orderings remain available
// through New for callers that need something keycmp cannot express.
package ordmap

import (
	"github.com/mikenye/ordmap/bst"
	"github.com/mikenye/ordmap/keycmp"
	"github.com/mikenye/ordmap/rbtree"
	"github.com/mikenye/ordmap/vector"
	"github.com/mikenye/ordmap/verrs"
)

// Map is an ordered, key-value associative container backed by a
// red-black tree.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
	errs *verrs.Channel
}

// New creates an empty Map ordered by the given comparison function.
func New[K, V any](less bst.LessFunc[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: rbtree.New[K, V](less),
		errs: verrs.NewChannel(),
	}
}

// NewOrdered creates an empty Map ordered by keycmp's host-endianness-
// aware byte comparator — the engine's default ordering for any
// fixed-size, trivially copyable key type.
func NewOrdered[K, V any]() *Map[K, V] {
	return New[K, V](keycmp.Less[K])
}

// Insert adds key/value to the map. If key already exists, its value
// is overwritten in place and no rebalancing occurs. Insertion in this
// engine cannot fail (Go's allocator does not expose partial-failure
// to callers the way the original C allocator did), so Insert always
// returns nil; the method still returns an error to keep the contract
// stable should a future version need to report one (e.g. a
// capacity-bounded Map).
func (m *Map[K, V]) Insert(key K, value V) error {
	m.tree.Insert(key, value)
	return nil
}

// Remove deletes key from the map. Returns ErrKeyNotFound (recorded on
// the map's error channel) if key is absent; the map is left
// unchanged in that case.
func (m *Map[K, V]) Remove(key K) error {
	n, found := m.tree.Search(key)
	if !found {
		return m.errs.Record(verrs.ErrKeyNotFound, "remove: key not present")
	}
	m.tree.Delete(n)
	return nil
}

// Get returns the value stored for key and true, or the zero value
// and false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n, found := m.tree.Search(key)
	if !found {
		var zero V
		return zero, false
	}
	return m.tree.Value(n), true
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.tree.Search(key)
	return found
}

// FirstKey returns the smallest key in the map, and true if the map is
// non-empty.
func (m *Map[K, V]) FirstKey() (K, bool) {
	if m.tree.Size() == 0 {
		var zero K
		return zero, false
	}
	n := m.tree.Min(m.tree.Root())
	return m.tree.Key(n), true
}

// LastKey returns the largest key in the map, and true if the map is
// non-empty.
func (m *Map[K, V]) LastKey() (K, bool) {
	if m.tree.Size() == 0 {
		var zero K
		return zero, false
	}
	n := m.tree.Max(m.tree.Root())
	return m.tree.Key(n), true
}

// NextKey returns the smallest key strictly greater than key, and true
// if one exists. It returns false both when key itself is absent from
// the map and when key is present but is the map's maximum — callers
// that need to distinguish those cases should pair NextKey with
// Contains, resolving the ambiguity the source engine's next_key left
// conflated (see spec.md §4.4/§9).
func (m *Map[K, V]) NextKey(key K) (K, bool) {
	n, found := m.tree.Search(key)
	if !found {
		var zero K
		return zero, false
	}
	succ := m.tree.Successor(n)
	if m.tree.IsNil(succ) {
		var zero K
		return zero, false
	}
	return m.tree.Key(succ), true
}

// Floor returns the key/value of the largest entry with key less than
// or equal to the given key, and true if one exists.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	n, found := m.tree.Floor(key)
	if !found {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.tree.Key(n), m.tree.Value(n), true
}

// Ceiling returns the key/value of the smallest entry with key greater
// than or equal to the given key, and true if one exists.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	n, found := m.tree.Ceiling(key)
	if !found {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.tree.Key(n), m.tree.Value(n), true
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Size()
}

// Keys returns every key in ascending order, collected into a Vector.
func (m *Map[K, V]) Keys() *vector.Vector[K] {
	v := vector.New[K](m.tree.Size())
	if m.tree.Size() == 0 {
		return v
	}
	m.tree.TraverseInOrder(m.tree.Root(), func(n *bst.Node[K, V, rbtree.Color]) bool {
		v.Push(m.tree.Key(n))
		return true
	})
	return v
}

// Values returns every value in ascending key order, collected into a
// Vector.
func (m *Map[K, V]) Values() *vector.Vector[V] {
	v := vector.New[V](m.tree.Size())
	if m.tree.Size() == 0 {
		return v
	}
	m.tree.TraverseInOrder(m.tree.Root(), func(n *bst.Node[K, V, rbtree.Color]) bool {
		v.Push(m.tree.Value(n))
		return true
	})
	return v
}

// Errors returns the map's error channel, carrying the most recently
// recorded failure (if any).
func (m *Map[K, V]) Errors() *verrs.Channel {
	return m.errs
}

// String renders the underlying tree structure, useful for debugging
// and test failure messages.
func (m *Map[K, V]) String() string {
	return m.tree.String()
}
