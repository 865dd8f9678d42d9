// Package abjad implements the traditional Arabic letter-to-number assignment
// (Jummal) and the numerology engine layered on top of it. Three historical
// value tables are supported; all are fixed at compile time and never mutated.
package abjad

import (
	"fmt"

	"github.com/burjlab/ruhani/internal/arabic"
	"github.com/burjlab/ruhani/internal/spirit"
)

// Method selects which letter-value table applies to a computation.
type Method string

const (
	// MethodKabir is the great reckoning: the classical abjad hawwaz order
	// with values 1..1000.
	MethodKabir Method = "kabir"
	// MethodSaghir is the small reckoning: kabir values reduced to single
	// digits.
	MethodSaghir Method = "saghir"
	// MethodMuqatta numbers the letters sequentially 1..28.
	MethodMuqatta Method = "muqatta"
)

// ValidMethods is the set of recognized calculation methods.
var ValidMethods = map[Method]bool{
	MethodKabir:   true,
	MethodSaghir:  true,
	MethodMuqatta: true,
}

// ParseMethod converts a user-supplied token into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !ValidMethods[m] {
		return "", fmt.Errorf("%w: unknown calculation method %q", spirit.ErrInvalidInput, s)
	}
	return m, nil
}

// letterValues holds the three fixed letter-value tables. Alef variants
// (hamza above/below, madda) all carry the plain alef value.
var letterValues = map[Method]map[rune]int{
	MethodKabir: {
		'ا': 1, 'أ': 1, 'إ': 1, 'آ': 1,
		'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9,
		'ي': 10, 'ك': 20, 'ل': 30, 'م': 40, 'ن': 50, 'س': 60, 'ع': 70, 'ف': 80, 'ص': 90,
		'ق': 100, 'ر': 200, 'ش': 300, 'ت': 400, 'ث': 500, 'خ': 600, 'ذ': 700, 'ض': 800, 'ظ': 900, 'غ': 1000,
	},
	MethodSaghir: {
		'ا': 1, 'أ': 1, 'إ': 1, 'آ': 1,
		'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9,
		'ي': 1, 'ك': 2, 'ل': 3, 'م': 4, 'ن': 5, 'س': 6, 'ع': 7, 'ف': 8, 'ص': 9,
		'ق': 1, 'ر': 2, 'ش': 3, 'ت': 4, 'ث': 5, 'خ': 6, 'ذ': 7, 'ض': 8, 'ظ': 9, 'غ': 1,
	},
	MethodMuqatta: {
		'ا': 1, 'أ': 1, 'إ': 1, 'آ': 1,
		'ب': 2, 'ج': 3, 'د': 4, 'ه': 5, 'و': 6, 'ز': 7, 'ح': 8, 'ط': 9,
		'ي': 10, 'ك': 11, 'ل': 12, 'م': 13, 'ن': 14, 'س': 15, 'ع': 16, 'ف': 17, 'ص': 18,
		'ق': 19, 'ر': 20, 'ش': 21, 'ت': 22, 'ث': 23, 'خ': 24, 'ذ': 25, 'ض': 26, 'ظ': 27, 'غ': 28,
	},
}

// LetterValue records one matched character within a computed total. Position
// is 1-based among matched characters only; spaces and characters absent from
// the table are skipped from both the sum and the breakdown.
type LetterValue struct {
	Letter   string `json:"letter"`
	Value    int    `json:"value"`
	Position int    `json:"position"`
}

// Value looks up the numeric value of a single character under the given
// method. The second return is false for characters not in the table, which
// contribute nothing to a total (never an error).
func Value(m Method, r rune) (int, bool) {
	v, ok := letterValues[m][r]
	return v, ok
}

// ComputeTotal validates and normalizes text, then sums the letter values
// under the given method. It returns the total together with the ordered
// per-letter breakdown. Text that fails Arabic validation yields an error
// wrapping spirit.ErrInvalidInput.
func ComputeTotal(text string, method Method) (int, []LetterValue, error) {
	if !ValidMethods[method] {
		return 0, nil, fmt.Errorf("%w: unknown calculation method %q", spirit.ErrInvalidInput, method)
	}
	if !arabic.Validate(text) {
		return 0, nil, fmt.Errorf("%w: text must contain only Arabic characters", spirit.ErrInvalidInput)
	}

	total := 0
	var letters []LetterValue
	for _, r := range arabic.Normalize(text) {
		v, ok := Value(method, r)
		if !ok {
			continue
		}
		total += v
		letters = append(letters, LetterValue{
			Letter:   string(r),
			Value:    v,
			Position: len(letters) + 1,
		})
	}
	return total, letters, nil
}
