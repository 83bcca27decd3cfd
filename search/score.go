package search

import (
	"strconv"
	"strings"
)

// Scoring bases. Weights are additive and uncapped: a record matching
// across many weighted fields outranks a single strong match.
const (
	basePrefix    = 140 // normalized value starts with the first token
	baseSubstring = 90  // all tokens found, but not at the start
	keyBonus      = 40  // field is a primary identifier (name, code)
	numericBase   = 100
)

// textScore scores one weighted text field against the query tokens.
// Every token must appear somewhere in the normalized value (AND
// semantics; token order and adjacency are irrelevant), otherwise the
// field contributes nothing.
func textScore(value string, tokens []string, weight int, isKey bool) int {
	if value == "" || len(tokens) == 0 {
		return 0
	}
	normalized := Normalize(value)
	for _, token := range tokens {
		if !strings.Contains(normalized, token) {
			return 0
		}
	}
	base := baseSubstring
	if strings.HasPrefix(normalized, tokens[0]) {
		base = basePrefix
	}
	score := base + weight
	if isKey {
		score += keyBonus
	}
	return score
}

// numericScore scores one weighted numeric field against the digit-only
// query signature. The field value is reduced to its own digit sequence
// so a query of "1500" matches an amount rendered as 1,500.00.
func numericScore(value float64, numericQuery string, weight int) int {
	if numericQuery == "" {
		return 0
	}
	digits := ExtractDigits(strconv.FormatFloat(value, 'f', -1, 64))
	if !strings.Contains(digits, numericQuery) {
		return 0
	}
	return numericBase + weight
}

// scoreCandidate sums the contributions of every text and numeric field.
func scoreCandidate(c candidate, tokens []string, numericQuery string) int {
	total := 0
	for _, f := range c.searchFields {
		total += textScore(f.Value, tokens, f.Weight, f.IsKey)
	}
	for _, f := range c.numericFields {
		total += numericScore(f.Value, numericQuery, f.Weight)
	}
	return total
}
