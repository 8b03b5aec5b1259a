// SPDX-License-Identifier: MIT
// Package enumap_test: shared fixtures.
//
// Purpose:
//   - Provide one small, well-known enumeration (Element) reused by all
//     tests, examples and benchmarks.
//   - Provide deliberately broken enumerations for the ErrInvalidEnum
//     cases.

package enumap_test

import (
	"testing"

	"github.com/rcorre/enumap"
)

// Element is the canonical four-member test enumeration:
// air=0, earth=1, water=2, fire=3.
type Element int

const (
	Air Element = iota
	Earth
	Water
	Fire
)

// EnumNames returns the member names in declaration order.
func (Element) EnumNames() []string { return []string{"air", "earth", "water", "fire"} }

// noMembers enumerates nothing at all.
type noMembers int

func (noMembers) EnumNames() []string { return nil }

// dupName declares the same member name twice.
type dupName int

func (dupName) EnumNames() []string { return []string{"east", "west", "east"} }

// blankName declares a member with an empty name.
type blankName int

func (blankName) EnumNames() []string { return []string{"up", ""} }

// mustNew builds an all-zero Element→int map or fails the test.
func mustNew(t *testing.T) *enumap.Map[Element, int] {
	t.Helper()
	m, err := enumap.New[Element, int]()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return m
}

// mustFromPairs builds a sparse Element→int map or fails the test.
func mustFromPairs(t *testing.T, pairs ...enumap.Pair[Element, int]) *enumap.Map[Element, int] {
	t.Helper()
	m, err := enumap.FromPairs(pairs...)
	if err != nil {
		t.Fatalf("FromPairs: %v", err)
	}

	return m
}

// pair is shorthand for an Element→int association entry.
func pair(k Element, v int) enumap.Pair[Element, int] {
	return enumap.Pair[Element, int]{Key: k, Value: v}
}
