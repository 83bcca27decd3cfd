package search

import (
	"sort"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

// DefaultSectionLimit caps how many results one section shows.
const DefaultSectionLimit = 5

// buildSection scores every item of one dataset and keeps the best
// matches. Ties preserve the dataset's original ordering (stable sort),
// so a fixed (query, dataset) pair always produces the same section.
func buildSection(ds core.Dataset, tokens []string, numericQuery string, limit int) core.SectionResult {
	result := core.SectionResult{Title: ds.Title, RouteBase: ds.RouteBase}
	if !ShouldSearch(tokens, numericQuery) {
		return result
	}

	type match struct {
		cand  candidate
		score int
	}
	matches := make([]match, 0, len(ds.Items))
	for _, item := range ds.Items {
		cand, ok := newCandidate(item)
		if !ok {
			continue
		}
		score := scoreCandidate(cand, tokens, numericQuery)
		if score <= 0 {
			continue
		}
		matches = append(matches, match{cand: cand, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result.Total = len(matches)
	result.HasMore = result.Total > limit
	if result.HasMore {
		matches = matches[:limit]
	}
	result.Items = make([]core.DisplayItem, len(matches))
	for i, m := range matches {
		result.Items[i] = m.cand.display(ds.Key, m.score)
	}
	return result
}
