package capture

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// substitutes are tried for runes the face cannot draw.
var substitutes = map[rune]string{
	'\u00a0': " ",
	'\u00a9': "(c)",
	'\u00ae': "(R)",
	'\u2013': "-",
	'\u2014': "-",
	'\u2018': "'",
	'\u2019': "'",
	'\u201c': `"`,
	'\u201d': `"`,
	'\u2026': "...",
	'\u2705': "v",
}

// printable rewrites s so every rune has a glyph in face: substitutes first,
// then the base letter with accents stripped, then "?".
func printable(face font.Face, s string) string {
	var b strings.Builder

	for _, r := range s {
		if hasGlyph(face, r) {
			b.WriteRune(r)
			continue
		}

		b.WriteString(fallback(face, r))
	}

	return b.String()
}

func fallback(face font.Face, r rune) string {
	if sub, ok := substitutes[r]; ok && drawable(face, sub) {
		return sub
	}

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	if base, _, err := transform.String(stripMarks, string(r)); err == nil && base != "" && drawable(face, base) {
		return base
	}

	return "?"
}

func drawable(face font.Face, s string) bool {
	for _, r := range s {
		if !hasGlyph(face, r) {
			return false
		}
	}

	return true
}

func hasGlyph(face font.Face, r rune) bool {
	_, ok := face.GlyphAdvance(r)
	return ok
}
