// SPDX-License-Identifier: MIT

package enumap_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcorre/enumap"
)

//----------------------------------------------------------------------------//
// Enumeration validation
//----------------------------------------------------------------------------//

// TestNew_InvalidEnum verifies that every broken enumeration shape is
// rejected with ErrInvalidEnum before a map exists.
func TestNew_InvalidEnum(t *testing.T) {
	t.Run("NoMembers", func(t *testing.T) {
		_, err := enumap.New[noMembers, int]()
		assert.ErrorIs(t, err, enumap.ErrInvalidEnum)
	})
	t.Run("DuplicateName", func(t *testing.T) {
		_, err := enumap.New[dupName, int]()
		assert.ErrorIs(t, err, enumap.ErrInvalidEnum)
	})
	t.Run("BlankName", func(t *testing.T) {
		_, err := enumap.New[blankName, int]()
		assert.ErrorIs(t, err, enumap.ErrInvalidEnum)
	})
}

// TestNew_Defaults verifies that New yields the zero value for every key.
func TestNew_Defaults(t *testing.T) {
	m := mustNew(t)
	require.Equal(t, 4, m.Len())
	for k := range m.Keys() {
		v, err := m.Get(k)
		require.NoError(t, err)
		assert.Zero(t, v, "key %d", k)
	}
}

//----------------------------------------------------------------------------//
// FromSlice / FromSeq — length validation
//----------------------------------------------------------------------------//

// TestFromSlice_Lengths checks the exact-N contract: shorter and longer
// inputs fail with ErrLengthMismatch, exact input maps position to ordinal.
func TestFromSlice_Lengths(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		err    error
	}{
		{"Empty", []int{}, enumap.ErrLengthMismatch},
		{"Short", []int{1, 2, 3}, enumap.ErrLengthMismatch},
		{"Long", []int{1, 2, 3, 4, 5}, enumap.ErrLengthMismatch},
		{"Exact", []int{10, 20, 30, 40}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := enumap.FromSlice[Element](tc.values)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("FromSlice(%v) error = %v; want %v", tc.values, err, tc.err)
				}
				if m != nil {
					t.Fatalf("FromSlice(%v) returned non-nil map alongside error", tc.values)
				}

				return
			}
			if err != nil {
				t.Fatalf("FromSlice(%v) error: %v", tc.values, err)
			}
			if got := m.ToSlice(); !slices.Equal(got, tc.values) {
				t.Fatalf("ToSlice() = %v; want %v", got, tc.values)
			}
		})
	}
}

// TestFromSlice_CopiesInput verifies the constructor does not alias the
// caller's slice.
func TestFromSlice_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	m, err := enumap.FromSlice[Element](src)
	require.NoError(t, err)

	src[0] = 99
	v, err := m.Get(Air)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// TestFromSeq_Lengths mirrors TestFromSlice_Lengths for the lazy-sequence
// constructor, including that a too-long sequence reports its full count.
func TestFromSeq_Lengths(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		m, err := enumap.FromSeq[Element](slices.Values([]int{10, 20, 30, 40}))
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20, 30, 40}, m.ToSlice())
	})
	t.Run("Short", func(t *testing.T) {
		_, err := enumap.FromSeq[Element](slices.Values([]int{10}))
		assert.ErrorIs(t, err, enumap.ErrLengthMismatch)
	})
	t.Run("Long", func(t *testing.T) {
		_, err := enumap.FromSeq[Element](slices.Values(make([]int, 7)))
		assert.ErrorIs(t, err, enumap.ErrLengthMismatch)
		assert.ErrorContains(t, err, "7 values")
	})
}

//----------------------------------------------------------------------------//
// Sparse constructors — defaults, bounds, duplicates
//----------------------------------------------------------------------------//

// TestFromMap_SparseDefaults verifies omitted keys hold the zero value.
func TestFromMap_SparseDefaults(t *testing.T) {
	m, err := enumap.FromMap(map[Element]int{Water: 4, Air: 3})
	require.NoError(t, err)

	want := map[Element]int{Air: 3, Earth: 0, Water: 4, Fire: 0}
	assert.Equal(t, want, m.ToMap())
}

// TestFromMap_UnknownKey verifies an out-of-range ordinal fails before
// any write.
func TestFromMap_UnknownKey(t *testing.T) {
	_, err := enumap.FromMap(map[Element]int{Element(42): 1})
	assert.ErrorIs(t, err, enumap.ErrUnknownKey)
}

// TestFromPairs_LastWriteWins verifies that a duplicated key takes the
// later value.
func TestFromPairs_LastWriteWins(t *testing.T) {
	m := mustFromPairs(t, pair(Fire, 1), pair(Water, 2), pair(Fire, 7))

	v, err := m.Get(Fire)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

// TestFromPairs_UnknownKey verifies bounds checking of pair keys.
func TestFromPairs_UnknownKey(t *testing.T) {
	_, err := enumap.FromPairs(pair(Element(-1), 5))
	assert.ErrorIs(t, err, enumap.ErrUnknownKey)
}

//----------------------------------------------------------------------------//
// Of — variadic flat key/value list
//----------------------------------------------------------------------------//

func TestOf_Valid(t *testing.T) {
	m, err := enumap.Of[Element, int](Water, 4, Air, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 4, 0}, m.ToSlice())
}

func TestOf_LastWriteWins(t *testing.T) {
	m, err := enumap.Of[Element, int](Air, 1, Air, 9)
	require.NoError(t, err)

	v, err := m.Get(Air)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

// TestOf_Malformed covers the odd-length and type-mismatch rejections.
func TestOf_Malformed(t *testing.T) {
	cases := []struct {
		name string
		kv   []any
		err  error
	}{
		{"OddLength", []any{Air, 1, Water}, enumap.ErrOddKeyValues},
		{"KeyNotElement", []any{"air", 1}, enumap.ErrKeyValueType},
		{"ValueNotInt", []any{Air, "one"}, enumap.ErrKeyValueType},
		{"KeyOutOfRange", []any{Element(9), 1}, enumap.ErrUnknownKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := enumap.Of[Element, int](tc.kv...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Of(%v) error = %v; want %v", tc.kv, err, tc.err)
			}
			if m != nil {
				t.Fatalf("Of(%v) returned non-nil map alongside error", tc.kv)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Round-trips
//----------------------------------------------------------------------------//

// TestRoundTrip_PairsView verifies FromPairs(m.Pairs()) reproduces m.
func TestRoundTrip_PairsView(t *testing.T) {
	a := mustFromPairs(t, pair(Air, 3), pair(Water, 4))

	b, err := enumap.FromPairs(a.Pairs()...)
	require.NoError(t, err)
	assert.True(t, enumap.Equal(a, b))
}

// TestRoundTrip_ValuesView verifies FromSlice(m.ToSlice()) and
// FromSeq(m.Values()) reproduce m.
func TestRoundTrip_ValuesView(t *testing.T) {
	a := mustFromPairs(t, pair(Earth, -1), pair(Fire, 8))

	b, err := enumap.FromSlice[Element](a.ToSlice())
	require.NoError(t, err)
	assert.True(t, enumap.Equal(a, b))

	c, err := enumap.FromSeq[Element](a.Values())
	require.NoError(t, err)
	assert.True(t, enumap.Equal(a, c))
}
