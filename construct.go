// SPDX-License-Identifier: MIT
// Package enumap: the closed set of named constructors.
//
// Every constructor validates first and applies second: on error the
// returned map is nil and nothing observable happened. Whichever path
// is used, the result holds a defined value for every member of K —
// there is no partially-initialized Map.

package enumap

import (
	"fmt"
	"iter"
)

// New returns a Map holding V's zero value for every member of K.
// Complexity: O(N). Errors: ErrInvalidEnum.
func New[K Enum, V any]() (*Map[K, V], error) {
	table, err := newMemberTable[K]()
	if err != nil {
		return nil, err
	}

	return &Map[K, V]{table: table, slots: make([]V, len(table.names))}, nil
}

// FromSlice builds a Map from exactly N values, position-for-position
// matching key ordinals. The input is copied; later mutation of values
// does not affect the map. Complexity: O(N).
// Errors: ErrInvalidEnum, ErrLengthMismatch.
func FromSlice[K Enum, V any](values []V) (*Map[K, V], error) {
	table, err := newMemberTable[K]()
	if err != nil {
		return nil, err
	}
	if len(values) != len(table.names) {
		return nil, fmt.Errorf("enumap: %d values for %d members: %w", len(values), len(table.names), ErrLengthMismatch)
	}
	slots := make([]V, len(values))
	copy(slots, values)

	return &Map[K, V]{table: table, slots: slots}, nil
}

// FromSeq builds a Map by consuming exactly N values from seq in
// ordinal order. The whole sequence is drained eagerly so a wrong
// length is reported with the actual count — never truncated, never
// zero-padded. Complexity: O(len(seq)).
// Errors: ErrInvalidEnum, ErrLengthMismatch.
func FromSeq[K Enum, V any](seq iter.Seq[V]) (*Map[K, V], error) {
	table, err := newMemberTable[K]()
	if err != nil {
		return nil, err
	}
	n := len(table.names)
	slots := make([]V, 0, n)
	total := 0
	for v := range seq {
		total++
		if total <= n {
			slots = append(slots, v)
		}
	}
	if total != n {
		return nil, fmt.Errorf("enumap: sequence yielded %d values, want %d: %w", total, n, ErrLengthMismatch)
	}

	return &Map[K, V]{table: table, slots: slots}, nil
}

// FromMap builds a Map from a sparse association: every key present in
// assoc is stored at its slot, every absent key holds V's zero value.
// Complexity: O(N + len(assoc)).
// Errors: ErrInvalidEnum, ErrUnknownKey (an ordinal outside [0, N)).
func FromMap[K Enum, V any](assoc map[K]V) (*Map[K, V], error) {
	m, err := New[K, V]()
	if err != nil {
		return nil, err
	}
	// Validate every key before the first write (validate-then-apply).
	for k := range assoc {
		if err = m.checkKey(k); err != nil {
			return nil, err
		}
	}
	for k, v := range assoc {
		m.slots[int(k)] = v
	}

	return m, nil
}

// FromPairs builds a Map from a sparse pair list: mentioned keys are
// stored, absent keys hold V's zero value. A key repeated later in the
// list overwrites the earlier value — last write wins, intentionally.
// Complexity: O(N + len(pairs)).
// Errors: ErrInvalidEnum, ErrUnknownKey.
func FromPairs[K Enum, V any](pairs ...Pair[K, V]) (*Map[K, V], error) {
	m, err := New[K, V]()
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err = m.checkKey(p.Key); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		m.slots[int(p.Key)] = p.Value
	}

	return m, nil
}

// Of builds a Map from a flat variadic key/value list:
//
//	m, err := enumap.Of[Element, int](Water, 4, Air, 3)
//
// Arguments must alternate key, value, key, value; an odd count is
// ErrOddKeyValues and a non-K key or non-V value is ErrKeyValueType
// (wrapped with the argument position). Keys not mentioned hold V's
// zero value; a repeated key takes the later value — last write wins,
// intentionally. Complexity: O(N + len(kv)).
func Of[K Enum, V any](kv ...any) (*Map[K, V], error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("enumap: %d arguments: %w", len(kv), ErrOddKeyValues)
	}
	m, err := New[K, V]()
	if err != nil {
		return nil, err
	}
	// Validate the whole list before the first write.
	type entry struct {
		k K
		v V
	}
	entries := make([]entry, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(K)
		if !ok {
			return nil, fmt.Errorf("enumap: argument %d is %T, want key type %T: %w", i, kv[i], k, ErrKeyValueType)
		}
		if err = m.checkKey(k); err != nil {
			return nil, err
		}
		v, ok := kv[i+1].(V)
		if !ok {
			return nil, fmt.Errorf("enumap: argument %d is %T, want value type %T: %w", i+1, kv[i+1], v, ErrKeyValueType)
		}
		entries = append(entries, entry{k: k, v: v})
	}
	for _, e := range entries {
		m.slots[int(e.k)] = e.v
	}

	return m, nil
}
