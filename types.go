// SPDX-License-Identifier: MIT
// Package enumap: domain types and constraints.
// This file intentionally contains ONLY the public constraints (Enum,
// Number), the Pair helper, the Map container itself and the internal
// member table. Errors live in errors.go per the package conventions.

package enumap

import "fmt"

// Enum constrains key types: a defined int type whose valid values are
// the consecutive ordinals 0..N-1, in declaration order.
//
// EnumNames returns the N member names in ordinal order. It must not
// depend on the receiver value (it is called on the zero value) and
// must return the same table on every call. The usual shape:
//
//	type Element int
//
//	const (
//		Air Element = iota
//		Earth
//		Water
//		Fire
//	)
//
//	func (Element) EnumNames() []string {
//		return []string{"air", "earth", "water", "fire"}
//	}
//
// Constructors validate the table once: an empty table, an empty name
// or a duplicate name yields ErrInvalidEnum.
type Enum interface {
	~int
	EnumNames() []string
}

// Number constrains V for the element-wise arithmetic operations
// (Add, Sub, Mul, Neg, the *InPlace forms). Construction, access and
// iteration do not require it; any V works there.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Pair is a single (key, value) association, used by FromPairs and by
// callers collecting the All view.
type Pair[K Enum, V any] struct {
	Key   K
	Value V
}

// Map is a total mapping from the members of K to values of V, stored
// as exactly N slots where slot i belongs to the i-th member. The
// key→slot relation is the ordinal itself: fixed, never rehashed,
// never reordered.
//
// Zero value is not usable; obtain a Map from one of the constructors.
// Copy with Clone — struct assignment aliases the slot storage.
type Map[K Enum, V any] struct {
	table  *memberTable[K]
	slots  []V
	frozen bool
}

// memberTable is K's validated reflection surface: names in ordinal
// order plus the name→ordinal index used by named access. Built once
// per construction and shared by Clone and the element-wise ops.
type memberTable[K Enum] struct {
	names []string
	index map[string]K
}

// newMemberTable enumerates K via EnumNames on the zero value and
// validates the table. Complexity: O(N) time and space.
func newMemberTable[K Enum]() (*memberTable[K], error) {
	var zero K
	names := zero.EnumNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("enumap: %T has no members: %w", zero, ErrInvalidEnum)
	}
	index := make(map[string]K, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("enumap: %T member %d has empty name: %w", zero, i, ErrInvalidEnum)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("enumap: %T member name %q duplicated: %w", zero, name, ErrInvalidEnum)
		}
		index[name] = K(i)
	}

	return &memberTable[K]{names: names, index: index}, nil
}

// Len reports N, the member count of K. O(1).
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.slots)
}

// Frozen reports whether the map has been frozen (see Freeze).
func (m *Map[K, V]) Frozen() bool { return m != nil && m.frozen }

// checkKey validates a key ordinal against [0, N).
func (m *Map[K, V]) checkKey(k K) error {
	if int(k) < 0 || int(k) >= len(m.slots) {
		return fmt.Errorf("enumap: ordinal %d with %d members: %w", int(k), len(m.slots), ErrUnknownKey)
	}

	return nil
}
