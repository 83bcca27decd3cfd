package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

func concatSegments(segments []core.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlight(t *testing.T) {
	t.Run("empty display value", func(t *testing.T) {
		assert.Empty(t, Highlight("", "alp"))
	})

	t.Run("empty query highlights nothing", func(t *testing.T) {
		segments := Highlight("Producto Alpha", "   ")
		require.Len(t, segments, 1)
		assert.Equal(t, core.Segment{Text: "Producto Alpha"}, segments[0])
	})

	t.Run("no occurrence", func(t *testing.T) {
		segments := Highlight("Producto Alpha", "zeta")
		require.Len(t, segments, 1)
		assert.False(t, segments[0].Match)
	})

	t.Run("middle occurrence yields three segments", func(t *testing.T) {
		segments := Highlight("Producto Alpha", "duc")
		require.Len(t, segments, 3)
		assert.Equal(t, core.Segment{Text: "Pro"}, segments[0])
		assert.Equal(t, core.Segment{Text: "duc", Match: true}, segments[1])
		assert.Equal(t, core.Segment{Text: "to Alpha"}, segments[2])
	})

	t.Run("leading occurrence yields two segments", func(t *testing.T) {
		segments := Highlight("Producto Alpha", "pro")
		require.Len(t, segments, 2)
		assert.Equal(t, core.Segment{Text: "Pro", Match: true}, segments[0])
	})

	t.Run("trailing occurrence yields two segments", func(t *testing.T) {
		segments := Highlight("Producto Alpha", "alpha")
		require.Len(t, segments, 2)
		assert.Equal(t, core.Segment{Text: "Alpha", Match: true}, segments[1])
	})

	t.Run("matched slice preserves case and diacritics", func(t *testing.T) {
		segments := Highlight("Nota de Crédito", "cred")
		require.Len(t, segments, 3)
		assert.Equal(t, "Créd", segments[1].Text)
		assert.True(t, segments[1].Match)
	})

	t.Run("diacritics in the query", func(t *testing.T) {
		segments := Highlight("Credito Fiscal", "crédito")
		require.Len(t, segments, 2)
		assert.Equal(t, "Credito", segments[0].Text)
		assert.True(t, segments[0].Match)
	})

	t.Run("only the first occurrence is marked", func(t *testing.T) {
		segments := Highlight("Caja caja caja", "caja")
		require.Len(t, segments, 2)
		assert.Equal(t, core.Segment{Text: "Caja", Match: true}, segments[0])
		assert.Equal(t, core.Segment{Text: " caja caja"}, segments[1])
	})

	t.Run("multi-word query needs a contiguous occurrence", func(t *testing.T) {
		// Scoring would accept "García, Ana" for "ana garcia"; highlighting
		// only detects the full query as one contiguous substring.
		segments := Highlight("García, Ana", "ana garcia")
		require.Len(t, segments, 1)
		assert.False(t, segments[0].Match)
	})
}

func TestHighlight_RoundTrip(t *testing.T) {
	displays := []string{
		"Producto Alpha",
		"Nota de Crédito № 42",
		"Almacén San Martín",
		"ALP-01",
	}
	queries := []string{"", "alp", "crédito", "MARTIN", "42", "zzz"}

	for _, display := range displays {
		for _, query := range queries {
			segments := Highlight(display, query)
			assert.Equal(t, display, concatSegments(segments),
				"display %q query %q", display, query)
		}
	}
}

func TestHighlight_DecomposedDiacritics(t *testing.T) {
	// "Crédito": the accent is a separate combining rune. The match
	// must keep the mark attached instead of splitting it into the
	// trailing segment.
	display := "Crédito Fiscal"
	segments := Highlight(display, "cred")
	require.Len(t, segments, 2)
	assert.Equal(t, "Créd", segments[0].Text)
	assert.True(t, segments[0].Match)
	assert.Equal(t, display, concatSegments(segments))
}
