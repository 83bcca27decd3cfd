package search

import "strings"

// Tokenize splits a raw query into normalized tokens. Empty or
// whitespace-only queries yield no tokens.
func Tokenize(query string) []string {
	return strings.Fields(Normalize(strings.TrimSpace(query)))
}

// NumericQuery extracts the digit-only signature of the raw trimmed
// query, used to match monetary and numeric fields regardless of
// formatting.
func NumericQuery(query string) string {
	return ExtractDigits(strings.TrimSpace(query))
}

// ShouldSearch reports whether the query carries enough signal to score
// anything at all. Below this gate the engine returns empty sections,
// which callers render as "keep typing" rather than "no results".
func ShouldSearch(tokens []string, numericQuery string) bool {
	return len(tokens) > 0 || numericQuery != ""
}
