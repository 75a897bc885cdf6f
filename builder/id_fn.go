// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
// Implementations panic on indices they cannot render (programmer error).
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25]: 0->"A", 25->"Z".
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns idx in base 36: 0->"0", 10->"a", 36->"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be >= 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name: 0->"A", 25->"Z", 26->"AA".
// Panics if idx < 0.
// Complexity: O(log26 idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// IDSchemes maps scheme names to IDFn, for flags and config files.
var IDSchemes = map[string]IDFn{
	"decimal":      DefaultIDFn,
	"symbol":       SymbolIDFn,
	"alphanumeric": AlphanumericIDFn,
	"excel":        ExcelColumnIDFn,
}
