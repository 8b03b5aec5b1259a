// SPDX-License-Identifier: MIT
// Package enumap: sentinel error set.
// This file defines ONLY package-level sentinel errors. All public
// operations return these sentinels and tests check them via errors.Is.
// When context matters (a position, a count), wrap with
// fmt.Errorf("...: %w", ErrX) so errors.Is still matches.
// No operation panics on user-triggered conditions.

package enumap

import "errors"

var (
	// ErrInvalidEnum indicates K's member table is unusable: EnumNames
	// returned no members, an empty name, or a duplicated name. The key
	// type must enumerate consecutive ordinals starting at zero.
	ErrInvalidEnum = errors.New("enumap: invalid key enumeration")

	// ErrLengthMismatch indicates a source sequence for construction or
	// whole-sequence assignment did not yield exactly N values. The
	// sequence is drained eagerly and nothing is applied on failure —
	// no truncation, no zero-padding.
	ErrLengthMismatch = errors.New("enumap: source length does not match member count")

	// ErrUnknownKey indicates a key ordinal outside [0, N). Public
	// indexers (Get/Set) return this, never panic.
	ErrUnknownKey = errors.New("enumap: key ordinal out of range")

	// ErrUnknownName indicates a member name not present in K's table.
	// Named access resolves through the table built at construction;
	// an unknown name is always an error, never a silent no-op.
	ErrUnknownName = errors.New("enumap: unknown member name")

	// ErrImmutable indicates a write attempted on a frozen Map. Every
	// write path checks this: Set, SetNamed, SetAll, the *InPlace
	// operations and EachMut.
	ErrImmutable = errors.New("enumap: write to frozen map")

	// ErrOddKeyValues indicates the variadic key/value list passed to Of
	// has an odd number of arguments (a key without its value).
	ErrOddKeyValues = errors.New("enumap: key/value list has odd length")

	// ErrKeyValueType indicates an argument in the variadic key/value
	// list is not of the expected key or value type.
	ErrKeyValueType = errors.New("enumap: key/value list has mismatched type")

	// ErrNilMap indicates a nil *Map receiver or operand.
	ErrNilMap = errors.New("enumap: nil map")

	// ErrNilFunc indicates a nil callback passed to Combine, Apply or a
	// traversal that requires one.
	ErrNilFunc = errors.New("enumap: nil function argument")
)
