package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic identifier from record content
// using BLAKE2b hashing. Items ingested without an explicit identifier get
// one derived from their content, so re-loading the same file is idempotent.
func IDFromContent(parts ...string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return fmt.Sprintf("%016x", binary.LittleEndian.Uint64(sum))
}

// MetaEntry is one display metadata pair shown under a search result.
// Entries are an ordered slice rather than a map so the flattened meta
// line is deterministic for a given item.
type MetaEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Amount is a monetary value with its display label and currency code.
// A nil *Amount means the item has no monetary dimension; an Amount with
// Value 0 is a real zero and still matches a numeric query of "0".
type Amount struct {
	Value    float64 `json:"value"`
	Label    string  `json:"label,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// TextField is one weighted textual dimension of an item's matchability.
// IsKey marks primary identifier fields (names, codes) that receive a
// scoring bonus over descriptive fields.
type TextField struct {
	Value  string `json:"value"`
	Weight int    `json:"weight"`
	IsKey  bool   `json:"isKey,omitempty"`
}

// NumericField is one weighted numeric dimension of an item's matchability.
type NumericField struct {
	Value  float64 `json:"value"`
	Weight int     `json:"weight"`
}

// Item is a single searchable record belonging to one collection.
// ID and Label are required for the record to be scored; every other
// field is optional and simply contributes nothing when absent.
type Item struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Secondary   string         `json:"secondary,omitempty"`
	Description string         `json:"description,omitempty"`
	Haystack    string         `json:"haystack,omitempty"`
	Meta        []MetaEntry    `json:"meta,omitempty"`
	Amount      *Amount        `json:"amount,omitempty"`
	Keywords    []TextField    `json:"keywords,omitempty"` // extra weighted text fields, scored verbatim
	Numerics    []NumericField `json:"numerics,omitempty"` // extra weighted numeric fields
	Payload     any            `json:"-"`                  // caller back-reference, never touched by the engine
}

// Dataset is one named, typed collection of searchable items, e.g. all
// products. Treated as immutable for the duration of a search pass.
type Dataset struct {
	Key       string
	Title     string
	RouteBase string
	Items     []Item
}

// DisplayItem is a scored result ready for presentation. Entity carries
// the caller's original record (Item.Payload when set, otherwise the Item
// itself) so selecting a result can navigate without a second lookup.
type DisplayItem struct {
	ID       string
	Type     string
	Title    string
	Subtitle string
	Meta     string
	Amount   *Amount
	Score    int
	Entity   any
}

// SectionResult is the per-collection slice of results shown to the user.
// Total counts matches before truncation; HasMore reports whether results
// were cut off at the section limit.
type SectionResult struct {
	Title     string
	RouteBase string
	Items     []DisplayItem
	Total     int
	HasMore   bool
}

// EngineState is the complete outcome of one search pass. It is a pure
// function of the query and the dataset snapshot it was computed from.
type EngineState struct {
	Query         string
	Sections      map[string]SectionResult
	TotalResults  int
	HasResults    bool
	HasSearchText bool
}

// Segment is one run of a display string, marked as matching the query or
// not. Concatenating the Text of all segments reproduces the display
// string exactly.
type Segment struct {
	Text  string
	Match bool
}
