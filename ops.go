// SPDX-License-Identifier: MIT
// Package enumap: element-wise operations.
//
// Purpose:
//   - Provide one private kernel per shape (binary, binary in-place,
//     unary, unary in-place) and keep the public arithmetic wrappers
//     thin — no duplicated loops.
//   - Every slot is computed independently from the operands' slots at
//     the same ordinal; there is no cross-key interaction.
//
// Determinism & Performance:
//   - Fixed ascending ordinal loop order.
//   - Binary and unary ops allocate exactly one output Map; the
//     in-place forms allocate nothing. O(N) time throughout.
//
// Arithmetic wrappers require V to satisfy Number; Combine and Apply
// accept any V with a caller-supplied op (concatenation, set union,
// whatever fits).

package enumap

// ewCombine computes out[i] = op(a[i], b[i]) into a fresh Map.
// Operands of the same K always agree on N, so there is no length
// check here; nil checks happen in the public wrappers.
func ewCombine[K Enum, V any](a, b *Map[K, V], op func(V, V) V) *Map[K, V] {
	out := &Map[K, V]{table: a.table, slots: make([]V, len(a.slots))}
	for i := range a.slots {
		out.slots[i] = op(a.slots[i], b.slots[i])
	}

	return out
}

// ewCombineInPlace computes dst[i] = op(dst[i], src[i]).
func ewCombineInPlace[K Enum, V any](dst, src *Map[K, V], op func(V, V) V) {
	for i := range dst.slots {
		dst.slots[i] = op(dst.slots[i], src.slots[i])
	}
}

// ewApply computes out[i] = op(m[i]) into a fresh Map.
func ewApply[K Enum, V any](m *Map[K, V], op func(V) V) *Map[K, V] {
	out := &Map[K, V]{table: m.table, slots: make([]V, len(m.slots))}
	for i := range m.slots {
		out.slots[i] = op(m.slots[i])
	}

	return out
}

// Combine returns a new Map holding op(a[k], b[k]) for every key k.
// Errors: ErrNilMap, ErrNilFunc. Complexity: O(N).
func Combine[K Enum, V any](a, b *Map[K, V], op func(V, V) V) (*Map[K, V], error) {
	if a == nil || b == nil {
		return nil, ErrNilMap
	}
	if op == nil {
		return nil, ErrNilFunc
	}

	return ewCombine(a, b, op), nil
}

// CombineInPlace replaces dst[k] with op(dst[k], src[k]) for every key.
// Errors: ErrNilMap, ErrNilFunc, ErrImmutable. Complexity: O(N).
func CombineInPlace[K Enum, V any](dst, src *Map[K, V], op func(V, V) V) error {
	if dst == nil || src == nil {
		return ErrNilMap
	}
	if op == nil {
		return ErrNilFunc
	}
	if dst.frozen {
		return ErrImmutable
	}
	ewCombineInPlace(dst, src, op)

	return nil
}

// Apply returns a new Map holding op(m[k]) for every key k.
// Errors: ErrNilMap, ErrNilFunc. Complexity: O(N).
func Apply[K Enum, V any](m *Map[K, V], op func(V) V) (*Map[K, V], error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if op == nil {
		return nil, ErrNilFunc
	}

	return ewApply(m, op), nil
}

// ApplyInPlace replaces m[k] with op(m[k]) for every key.
// Errors: ErrNilMap, ErrNilFunc, ErrImmutable. Complexity: O(N).
func ApplyInPlace[K Enum, V any](m *Map[K, V], op func(V) V) error {
	if m == nil {
		return ErrNilMap
	}
	if op == nil {
		return ErrNilFunc
	}
	if m.frozen {
		return ErrImmutable
	}
	for i := range m.slots {
		m.slots[i] = op(m.slots[i])
	}

	return nil
}

// ---------- Arithmetic wrappers (V constrained by Number) ----------

// Add returns the element-wise sum: out[k] = a[k] + b[k].
// Errors: ErrNilMap. Complexity: O(N).
func Add[K Enum, V Number](a, b *Map[K, V]) (*Map[K, V], error) {
	if a == nil || b == nil {
		return nil, ErrNilMap
	}

	return ewCombine(a, b, func(x, y V) V { return x + y }), nil
}

// Sub returns the element-wise difference: out[k] = a[k] - b[k].
// Errors: ErrNilMap. Complexity: O(N).
func Sub[K Enum, V Number](a, b *Map[K, V]) (*Map[K, V], error) {
	if a == nil || b == nil {
		return nil, ErrNilMap
	}

	return ewCombine(a, b, func(x, y V) V { return x - y }), nil
}

// Mul returns the element-wise product: out[k] = a[k] * b[k].
// Errors: ErrNilMap. Complexity: O(N).
func Mul[K Enum, V Number](a, b *Map[K, V]) (*Map[K, V], error) {
	if a == nil || b == nil {
		return nil, ErrNilMap
	}

	return ewCombine(a, b, func(x, y V) V { return x * y }), nil
}

// Neg returns the element-wise negation: out[k] = -m[k].
// Errors: ErrNilMap. Complexity: O(N).
func Neg[K Enum, V Number](m *Map[K, V]) (*Map[K, V], error) {
	if m == nil {
		return nil, ErrNilMap
	}

	return ewApply(m, func(x V) V { return -x }), nil
}

// AddInPlace is the compound assignment dst[k] += src[k].
// Errors: ErrNilMap, ErrImmutable. Complexity: O(N).
func AddInPlace[K Enum, V Number](dst, src *Map[K, V]) error {
	if dst == nil || src == nil {
		return ErrNilMap
	}
	if dst.frozen {
		return ErrImmutable
	}
	ewCombineInPlace(dst, src, func(x, y V) V { return x + y })

	return nil
}

// SubInPlace is the compound assignment dst[k] -= src[k].
// Errors: ErrNilMap, ErrImmutable. Complexity: O(N).
func SubInPlace[K Enum, V Number](dst, src *Map[K, V]) error {
	if dst == nil || src == nil {
		return ErrNilMap
	}
	if dst.frozen {
		return ErrImmutable
	}
	ewCombineInPlace(dst, src, func(x, y V) V { return x - y })

	return nil
}

// MulInPlace is the compound assignment dst[k] *= src[k].
// Errors: ErrNilMap, ErrImmutable. Complexity: O(N).
func MulInPlace[K Enum, V Number](dst, src *Map[K, V]) error {
	if dst == nil || src == nil {
		return ErrNilMap
	}
	if dst.frozen {
		return ErrImmutable
	}
	ewCombineInPlace(dst, src, func(x, y V) V { return x * y })

	return nil
}
