// Package arabic validates and normalizes Arabic input text. Every analysis
// entry point runs text through this package before any numeric work, so the
// letter-value tables only ever see clean, diacritic-free characters.
package arabic

import (
	"strings"
	"unicode"
)

// Unicode blocks accepted by Validate. Presentation forms are included so
// text copied from shaped/rendered sources still validates.
var arabicBlocks = []struct{ lo, hi rune }{
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic Supplement
	{0x08A0, 0x08FF}, // Arabic Extended-A
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// Validate reports whether text, after trimming, is non-empty and composed
// entirely of Arabic-block characters and whitespace.
func Validate(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if !isArabic(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isArabic(r rune) bool {
	for _, b := range arabicBlocks {
		if r >= b.lo && r <= b.hi {
			return true
		}
	}
	return false
}

// isDiacritic reports whether r is a combining mark or elongation character
// stripped during normalization: the harakat range U+064B–U+0652, the
// superscript alef U+0670, and the tatweel U+0640.
func isDiacritic(r rune) bool {
	return (r >= 0x064B && r <= 0x0652) || r == 0x0670 || r == 0x0640
}

// Normalize strips diacritic marks and the tatweel, collapses whitespace
// runs to single spaces, and trims. Normalize is idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isDiacritic(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
