// SPDX-License-Identifier: MIT
// Package enumap: indexed and named access.
//
// Indexed access is the ordinal lookup; named access resolves through
// the member table built at construction. Both are O(1). Writes check
// the frozen flag first, so a frozen map rejects every write path with
// ErrImmutable before touching storage.

package enumap

import "fmt"

// Get returns the value stored for k.
// Errors: ErrNilMap, ErrUnknownKey. Complexity: O(1).
func (m *Map[K, V]) Get(k K) (V, error) {
	var zero V
	if m == nil {
		return zero, ErrNilMap
	}
	if err := m.checkKey(k); err != nil {
		return zero, err
	}

	return m.slots[int(k)], nil
}

// Set stores v for k.
// Errors: ErrNilMap, ErrImmutable, ErrUnknownKey. Complexity: O(1).
func (m *Map[K, V]) Set(k K, v V) error {
	if m == nil {
		return ErrNilMap
	}
	if m.frozen {
		return ErrImmutable
	}
	if err := m.checkKey(k); err != nil {
		return err
	}
	m.slots[int(k)] = v

	return nil
}

// GetNamed returns the value stored for the member called name,
// equivalent to Get(KeyOf(name)).
// Errors: ErrNilMap, ErrUnknownName. Complexity: O(1).
func (m *Map[K, V]) GetNamed(name string) (V, error) {
	var zero V
	if m == nil {
		return zero, ErrNilMap
	}
	k, ok := m.table.index[name]
	if !ok {
		return zero, fmt.Errorf("enumap: %q: %w", name, ErrUnknownName)
	}

	return m.slots[int(k)], nil
}

// SetNamed stores v for the member called name.
// Errors: ErrNilMap, ErrImmutable, ErrUnknownName. Complexity: O(1).
func (m *Map[K, V]) SetNamed(name string, v V) error {
	if m == nil {
		return ErrNilMap
	}
	if m.frozen {
		return ErrImmutable
	}
	k, ok := m.table.index[name]
	if !ok {
		return fmt.Errorf("enumap: %q: %w", name, ErrUnknownName)
	}
	m.slots[int(k)] = v

	return nil
}

// KeyOf resolves a member name to its key.
// Errors: ErrNilMap, ErrUnknownName. Complexity: O(1).
func (m *Map[K, V]) KeyOf(name string) (K, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	k, ok := m.table.index[name]
	if !ok {
		return 0, fmt.Errorf("enumap: %q: %w", name, ErrUnknownName)
	}

	return k, nil
}

// NameOf returns the declared name of k.
// Errors: ErrNilMap, ErrUnknownKey. Complexity: O(1).
func (m *Map[K, V]) NameOf(k K) (string, error) {
	if m == nil {
		return "", ErrNilMap
	}
	if err := m.checkKey(k); err != nil {
		return "", err
	}

	return m.table.names[int(k)], nil
}

// SetAll replaces every slot with the corresponding element of values,
// which must hold exactly N elements. Length is validated before the
// first write; on error the map is unchanged.
// Errors: ErrNilMap, ErrImmutable, ErrLengthMismatch. Complexity: O(N).
func (m *Map[K, V]) SetAll(values []V) error {
	if m == nil {
		return ErrNilMap
	}
	if m.frozen {
		return ErrImmutable
	}
	if len(values) != len(m.slots) {
		return fmt.Errorf("enumap: %d values for %d members: %w", len(values), len(m.slots), ErrLengthMismatch)
	}
	copy(m.slots, values)

	return nil
}

// Clone returns an independent deep copy of the map. The copy is
// always mutable, even when the source is frozen; the member table is
// shared (it is immutable after construction). Complexity: O(N).
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	slots := make([]V, len(m.slots))
	copy(slots, m.slots)

	return &Map[K, V]{table: m.table, slots: slots}
}

// ToSlice returns the stored values in ordinal order as a fresh slice.
// Complexity: O(N).
func (m *Map[K, V]) ToSlice() []V {
	if m == nil {
		return nil
	}
	out := make([]V, len(m.slots))
	copy(out, m.slots)

	return out
}

// ToMap returns the full association as an ordinary Go map.
// Complexity: O(N).
func (m *Map[K, V]) ToMap() map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m.slots))
	for i, v := range m.slots {
		out[K(i)] = v
	}

	return out
}

// Equal reports whether a and b hold the same value for every key.
// Two nil maps are equal; a nil and a non-nil map are not. The frozen
// flag does not participate in equality. Complexity: O(N).
func Equal[K Enum, V comparable](a, b *Map[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.slots) != len(b.slots) {
		return false
	}
	for i := range a.slots {
		if a.slots[i] != b.slots[i] {
			return false
		}
	}

	return true
}
