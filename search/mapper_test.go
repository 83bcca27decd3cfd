package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

func TestNewCandidate_FieldPriority(t *testing.T) {
	item := core.Item{
		ID:          "PRD-001",
		Label:       "Producto Alpha",
		Secondary:   "ALP-01",
		Description: "Bebida gaseosa",
		Haystack:    "alpha gaseosa medio litro",
		Keywords: []core.TextField{
			{Value: "bebidas", Weight: 70},
			{Value: "ALP01", Weight: 140, IsKey: true},
		},
	}

	cand, ok := newCandidate(item)
	require.True(t, ok)

	require.Len(t, cand.searchFields, 6)
	assert.Equal(t, core.TextField{Value: "Producto Alpha", Weight: 160, IsKey: true}, cand.searchFields[0])
	assert.Equal(t, core.TextField{Value: "ALP-01", Weight: 130}, cand.searchFields[1])
	assert.Equal(t, core.TextField{Value: "Bebida gaseosa", Weight: 110}, cand.searchFields[2])
	assert.Equal(t, core.TextField{Value: "alpha gaseosa medio litro", Weight: 80}, cand.searchFields[3])
	// Extension keywords keep their own weight and key flag.
	assert.Equal(t, core.TextField{Value: "bebidas", Weight: 70}, cand.searchFields[4])
	assert.Equal(t, core.TextField{Value: "ALP01", Weight: 140, IsKey: true}, cand.searchFields[5])
}

func TestNewCandidate_AbsentFieldsAreDropped(t *testing.T) {
	cand, ok := newCandidate(core.Item{ID: "1", Label: "Solo etiqueta"})
	require.True(t, ok)

	require.Len(t, cand.searchFields, 1)
	assert.Empty(t, cand.numericFields)
	assert.Empty(t, cand.meta)
	assert.Nil(t, cand.amount)
}

func TestNewCandidate_NumericFields(t *testing.T) {
	item := core.Item{
		ID:     "1",
		Label:  "Factura F001-123",
		Amount: &core.Amount{Value: 1500, Label: "Total", Currency: "PEN"},
		Numerics: []core.NumericField{
			{Value: 123, Weight: 90},
		},
	}

	cand, ok := newCandidate(item)
	require.True(t, ok)

	require.Len(t, cand.numericFields, 2)
	assert.Equal(t, core.NumericField{Value: 1500, Weight: 100}, cand.numericFields[0])
	assert.Equal(t, core.NumericField{Value: 123, Weight: 90}, cand.numericFields[1])
}

func TestNewCandidate_SkipsUnrenderableItems(t *testing.T) {
	_, ok := newCandidate(core.Item{Label: "sin id"})
	assert.False(t, ok)

	_, ok = newCandidate(core.Item{ID: "sin-etiqueta"})
	assert.False(t, ok)
}

func TestNewCandidate_Entity(t *testing.T) {
	t.Run("payload wins when set", func(t *testing.T) {
		payload := struct{ SKU string }{SKU: "ALP-01"}
		cand, ok := newCandidate(core.Item{ID: "1", Label: "Alpha", Payload: payload})
		require.True(t, ok)
		assert.Equal(t, payload, cand.entity)
	})

	t.Run("falls back to the item itself", func(t *testing.T) {
		item := core.Item{ID: "1", Label: "Alpha"}
		cand, ok := newCandidate(item)
		require.True(t, ok)
		assert.Equal(t, item, cand.entity)
	})
}

func TestFlattenMeta(t *testing.T) {
	meta := []core.MetaEntry{
		{Key: "Almacén", Value: "Central"},
		{Key: "Stock", Value: ""},
		{Key: "Serie", Value: "F001"},
	}
	assert.Equal(t, "Almacén: Central • Serie: F001", flattenMeta(meta))
	assert.Equal(t, "", flattenMeta(nil))
}
