package search

import (
	"strings"
	"unicode/utf8"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

// Highlight splits a display string into segments marked as matching the
// query or not. Only the first contiguous occurrence of the full
// normalized query is marked; the matched slice is taken from the
// original string so case and diacritics survive into the rendered
// output. Concatenating all segment texts reproduces displayValue.
func Highlight(displayValue, rawQuery string) []core.Segment {
	if displayValue == "" {
		return []core.Segment{}
	}
	query := Normalize(strings.TrimSpace(rawQuery))
	if query == "" {
		return []core.Segment{{Text: displayValue}}
	}

	normalized, offsets := normalizeWithOffsets(displayValue)
	idx := strings.Index(normalized, query)
	if idx < 0 {
		return []core.Segment{{Text: displayValue}}
	}

	start := offsets[idx]
	end := len(displayValue)
	if next := idx + len(query); next < len(offsets) {
		end = offsets[next]
	}
	// Combining marks normalize to nothing and would otherwise be split
	// off into the trailing segment; keep them attached to the match.
	for end < len(displayValue) {
		r, size := utf8.DecodeRuneInString(displayValue[end:])
		if Normalize(string(r)) != "" {
			break
		}
		end += size
	}

	segments := make([]core.Segment, 0, 3)
	if start > 0 {
		segments = append(segments, core.Segment{Text: displayValue[:start]})
	}
	segments = append(segments, core.Segment{Text: displayValue[start:end], Match: true})
	if end < len(displayValue) {
		segments = append(segments, core.Segment{Text: displayValue[end:]})
	}
	return segments
}

// normalizeWithOffsets normalizes s rune by rune and records, for every
// byte of the normalized form, the byte offset of the original rune it
// came from. Diacritic stripping changes byte lengths, so a match
// position in the normalized form cannot index the original directly.
func normalizeWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s))
	for i, r := range s {
		n := Normalize(string(r))
		for j := 0; j < len(n); j++ {
			offsets = append(offsets, i)
		}
		b.WriteString(n)
	}
	return b.String(), offsets
}
