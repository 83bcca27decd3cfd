package search

import (
	"strings"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

// Field weights in fixed priority order. The label is the primary
// identifier; the haystack is a free-form catch-all the caller can pack
// with anything searchable.
const (
	labelWeight       = 160
	secondaryWeight   = 130
	descriptionWeight = 110
	haystackWeight    = 80
	amountWeight      = 100
)

const metaSeparator = " • "

// candidate is one item reshaped for scoring: an ordered list of
// weighted text fields, the numeric fields, and the display strings that
// survive into the result.
type candidate struct {
	id            string
	title         string
	subtitle      string
	meta          string
	amount        *core.Amount
	entity        any
	searchFields  []core.TextField
	numericFields []core.NumericField
}

// newCandidate reshapes a raw item into a candidate. Items without an
// identifier or label cannot be rendered or selected and are skipped
// rather than failing the section. Absent optional fields are dropped
// here, not scored as zero.
func newCandidate(item core.Item) (candidate, bool) {
	if item.ID == "" || item.Label == "" {
		return candidate{}, false
	}

	fields := make([]core.TextField, 0, 4+len(item.Keywords))
	fields = append(fields, core.TextField{Value: item.Label, Weight: labelWeight, IsKey: true})
	if item.Secondary != "" {
		fields = append(fields, core.TextField{Value: item.Secondary, Weight: secondaryWeight})
	}
	if item.Description != "" {
		fields = append(fields, core.TextField{Value: item.Description, Weight: descriptionWeight})
	}
	if item.Haystack != "" {
		fields = append(fields, core.TextField{Value: item.Haystack, Weight: haystackWeight})
	}
	fields = append(fields, item.Keywords...)

	var numerics []core.NumericField
	if item.Amount != nil {
		numerics = append(numerics, core.NumericField{Value: item.Amount.Value, Weight: amountWeight})
	}
	numerics = append(numerics, item.Numerics...)

	entity := item.Payload
	if entity == nil {
		entity = item
	}

	return candidate{
		id:            item.ID,
		title:         item.Label,
		subtitle:      item.Secondary,
		meta:          flattenMeta(item.Meta),
		amount:        item.Amount,
		entity:        entity,
		searchFields:  fields,
		numericFields: numerics,
	}, true
}

// flattenMeta renders metadata entries as "Key: value" tokens joined by a
// separator, skipping entries without a value.
func flattenMeta(entries []core.MetaEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Value == "" {
			continue
		}
		parts = append(parts, e.Key+": "+e.Value)
	}
	return strings.Join(parts, metaSeparator)
}

func (c candidate) display(typ string, score int) core.DisplayItem {
	return core.DisplayItem{
		ID:       c.id,
		Type:     typ,
		Title:    c.title,
		Subtitle: c.subtitle,
		Meta:     c.meta,
		Amount:   c.amount,
		Score:    score,
		Entity:   c.entity,
	}
}
