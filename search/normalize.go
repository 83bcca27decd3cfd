package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining diacritical marks, so
// "café" and "cafe" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveDiacritics strips accents from s, e.g. "García" -> "Garcia".
func RemoveDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize prepares text for comparison. Diacritics and case are never
// significant in scoring or highlighting.
func Normalize(s string) string {
	return strings.ToLower(RemoveDiacritics(s))
}

// ExtractDigits keeps only the characters 0-9, reducing "1,234.50" and
// "1234" to comparable digit sequences.
func ExtractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
