// Package enumap provides a fixed-size container that maps every member
// of a small, zero-based enumeration to a value: array speed with
// map ergonomics.
//
// What:
//
//   - Map[K, V] stores exactly one V per member of K, indexed by ordinal.
//   - K is any defined int type implementing EnumNames() []string — the
//     member names in declaration order (see the Enum constraint).
//   - Every key always has a value; an omitted key holds V's zero value.
//     There is no "missing" state.
//   - Element-wise arithmetic (Add/Sub/Mul/Neg) for numeric V, and a
//     generic Combine/Apply for everything else.
//   - Restartable iteration views over keys, values and (key, value)
//     pairs, always in ordinal order, plus a single-pass in-place
//     update traversal (EachMut).
//   - Read-only access via View (no write methods) and a deeply
//     immutable regime via Freeze.
//
// Why:
//
//   - Stats keyed by a closed set (elements, directions, suits, CPU
//     states) want O(1) access, a value for every key, and no hashing.
//   - Element-wise operations make "add these two tallies" one call.
//
// Complexity:
//
//   - Get/Set (indexed or named): O(1).
//   - Construction, Clone, element-wise ops, traversal: O(N) where N is
//     the member count of K.
//   - No allocation after construction; a Map owns a single slice of N
//     values.
//
// Errors:
//
//   - ErrInvalidEnum: K's name table is empty, or has an empty or
//     duplicated name.
//   - ErrLengthMismatch: a source sequence did not yield exactly N values.
//   - ErrUnknownKey: a key ordinal outside [0, N).
//   - ErrUnknownName: a member name not present in K.
//   - ErrImmutable: a write on a frozen Map.
//   - ErrOddKeyValues, ErrKeyValueType: malformed variadic key/value list.
//   - ErrNilMap, ErrNilFunc: nil operand or nil callback.
//
// A Map is created by one of the named constructors (New, FromSlice,
// FromSeq, FromMap, FromPairs, Of) and is never partially initialized.
// Copy with Clone; plain struct assignment would alias the underlying
// storage and is not supported.
package enumap
