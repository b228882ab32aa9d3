// Package vector implements the growable sequence container used
// around the ordered map as a side-effect-free indexed buffer — the
// Go counterpart to the original project's c_vector, grounded on
// original_source/c_vector.h's add_top / value_at / resize / shrink
// operations, minus the manual realloc/memset bookkeeping a GC'd
// language doesn't need.
//
// Vector is not part of the ordered-map engine's core (see spec.md
// §1's non-goals); it is ancillary scaffolding the map facade uses to
// snapshot keys and values into a contiguous buffer.
package vector

import "github.com/mikenye/ordmap/verrs"

// Vector is a growable, indexable sequence of T.
type Vector[T any] struct {
	data []T
	errs *verrs.Channel
}

// New returns an empty Vector with capacity pre-allocated for
// capacityHint elements (0 is a valid hint and behaves like a plain
// append-only vector).
func New[T any](capacityHint int) *Vector[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Vector[T]{
		data: make([]T, 0, capacityHint),
		errs: verrs.NewChannel(),
	}
}

// Push appends value to the top of the vector, growing it if
// necessary. Mirrors c_vector's add_top.
func (v *Vector[T]) Push(value T) {
	v.data = append(v.data, value)
}

// Pop removes the top element of the vector. A no-op on an empty
// vector, mirroring c_vector's remove_top.
func (v *Vector[T]) Pop() {
	if len(v.data) == 0 {
		return
	}
	var zero T
	last := len(v.data) - 1
	v.data[last] = zero
	v.data = v.data[:last]
}

// Len returns the number of elements currently held.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Cap returns the vector's current capacity.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// Get returns the value at index i, or ErrInvalidIndex if i is out of
// bounds.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, v.errs.Record(verrs.ErrInvalidIndex, "index out of range")
	}
	return v.data[i], nil
}

// Set overwrites the value at index i, or returns ErrInvalidIndex if i
// is out of bounds. Mirrors c_vector's insert, restricted to
// in-bounds indices 0 <= i < Len(); i == Len() is rejected as out of
// range.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.data) {
		return v.errs.Record(verrs.ErrInvalidIndex, "index out of range")
	}
	v.data[i] = value
	return nil
}

// Resize changes the vector's logical length to n, truncating or
// zero-extending as needed. Mirrors c_vector's resize.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		return
	case n <= len(v.data):
		var zero T
		for i := n; i < len(v.data); i++ {
			v.data[i] = zero
		}
		v.data = v.data[:n]
	default:
		grown := make([]T, n)
		copy(grown, v.data)
		v.data = grown
	}
}

// Shrink releases any excess capacity beyond the vector's current
// length. Mirrors c_vector's shrink.
func (v *Vector[T]) Shrink() {
	if len(v.data) == cap(v.data) {
		return
	}
	shrunk := make([]T, len(v.data))
	copy(shrunk, v.data)
	v.data = shrunk
}

// Slice returns the vector's contents as a plain slice. The returned
// slice aliases the vector's backing array; callers that need an
// independent copy should clone it.
func (v *Vector[T]) Slice() []T {
	return v.data
}

// Errors returns the vector's error channel.
func (v *Vector[T]) Errors() *verrs.Channel {
	return v.errs
}
