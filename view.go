// SPDX-License-Identifier: MIT
// File: view.go
// Role: Read-only and immutable regimes over the same storage.
//
//   - View exposes only the read surface of a Map; the write methods
//     simply do not exist on it, so misuse fails at compile time.
//   - Freeze switches a Map into the deeply-immutable regime: every
//     write path returns ErrImmutable from then on.
//   - Neither regime copies the slots; a View always observes writes
//     made through the underlying Map.

package enumap

import "iter"

// View is a read-only window over a Map. It carries no write methods:
// Set, SetNamed, SetAll, EachMut and the *InPlace operations are not
// part of its surface. The zero View is empty and reports ErrNilMap
// from its accessors.
//
// A View never mutates its source.
type View[K Enum, V any] struct {
	m *Map[K, V]
}

// AsView returns a read-only view over m. O(1); no copy.
func (m *Map[K, V]) AsView() View[K, V] { return View[K, V]{m: m} }

// Freeze switches the map into the deeply-immutable regime: from now
// on Set, SetNamed, SetAll, EachMut and every *InPlace operation
// return ErrImmutable. Freezing is irreversible on this instance;
// Clone yields a mutable copy. Returns m for chaining.
func (m *Map[K, V]) Freeze() *Map[K, V] {
	if m != nil {
		m.frozen = true
	}

	return m
}

// Len reports N. O(1).
func (v View[K, V]) Len() int { return v.m.Len() }

// Get returns the value stored for k. Errors: ErrNilMap, ErrUnknownKey.
func (v View[K, V]) Get(k K) (V, error) { return v.m.Get(k) }

// GetNamed returns the value for the member called name.
// Errors: ErrNilMap, ErrUnknownName.
func (v View[K, V]) GetNamed(name string) (V, error) { return v.m.GetNamed(name) }

// KeyOf resolves a member name to its key. Errors: ErrNilMap, ErrUnknownName.
func (v View[K, V]) KeyOf(name string) (K, error) { return v.m.KeyOf(name) }

// NameOf returns the declared name of k. Errors: ErrNilMap, ErrUnknownKey.
func (v View[K, V]) NameOf(k K) (string, error) { return v.m.NameOf(k) }

// Keys returns the keys in ordinal order.
func (v View[K, V]) Keys() iter.Seq[K] { return v.m.Keys() }

// Values returns the stored values in ordinal order.
func (v View[K, V]) Values() iter.Seq[V] { return v.m.Values() }

// All returns the (key, value) pairs in ordinal order.
func (v View[K, V]) All() iter.Seq2[K, V] { return v.m.All() }

// Each visits every pair in ordinal order; the visitor returns false
// to stop early.
func (v View[K, V]) Each(fn func(K, V) bool) { v.m.Each(fn) }

// Pairs returns the association as a Pair slice in ordinal order.
func (v View[K, V]) Pairs() []Pair[K, V] { return v.m.Pairs() }

// ToSlice returns the values in ordinal order as a fresh slice.
func (v View[K, V]) ToSlice() []V { return v.m.ToSlice() }

// ToMap returns the association as an ordinary Go map.
func (v View[K, V]) ToMap() map[K]V { return v.m.ToMap() }

// Clone thaws the view into a fresh, independent, mutable Map.
func (v View[K, V]) Clone() *Map[K, V] { return v.m.Clone() }
