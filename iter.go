// SPDX-License-Identifier: MIT
// Package enumap: iteration views.
//
// All views traverse in ordinal order, are bounded by N and are
// restartable: every call produces a fresh traversal, so a view can be
// ranged over any number of times. Early termination is the ordinary
// range-over-func break (or returning false from a visitor).

package enumap

import "iter"

// Keys returns the keys of K in ordinal order. The sequence does not
// depend on the stored values; any instance over the same K yields the
// same keys. Complexity: O(N) per traversal.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for i := range m.slots {
			if !yield(K(i)) {
				return
			}
		}
	}
}

// Values returns the stored values in ordinal order. Read-only: the
// yielded values are copies. Complexity: O(N) per traversal.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m == nil {
			return
		}
		for _, v := range m.slots {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns the (key, value) pairs in ordinal order. The pair view
// is read-only; to update during traversal use EachMut or indexed Set.
// Complexity: O(N) per traversal.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i, v := range m.slots {
			if !yield(K(i), v) {
				return
			}
		}
	}
}

// Each visits every (key, value) pair exactly once in ordinal order.
// The visitor returns false to stop early. Complexity: O(N).
func (m *Map[K, V]) Each(fn func(K, V) bool) {
	if m == nil || fn == nil {
		return
	}
	for i, v := range m.slots {
		if !fn(K(i), v) {
			return
		}
	}
}

// EachMut visits every key exactly once in ordinal order, yielding the
// value by pointer so the visitor can update it in a single pass. The
// visitor returns false to stop early. Not available on frozen maps.
// Errors: ErrNilMap, ErrNilFunc, ErrImmutable. Complexity: O(N).
func (m *Map[K, V]) EachMut(fn func(K, *V) bool) error {
	if m == nil {
		return ErrNilMap
	}
	if fn == nil {
		return ErrNilFunc
	}
	if m.frozen {
		return ErrImmutable
	}
	for i := range m.slots {
		if !fn(K(i), &m.slots[i]) {
			return nil
		}
	}

	return nil
}

// Pairs returns the full association as a slice of Pair in ordinal
// order, ready to round-trip through FromPairs. Complexity: O(N).
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[K, V], len(m.slots))
	for i, v := range m.slots {
		out[i] = Pair[K, V]{Key: K(i), Value: v}
	}

	return out
}
