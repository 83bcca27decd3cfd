package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{
			name:  "single part",
			parts: []string{"Producto Alpha"},
		},
		{
			name:  "empty part",
			parts: []string{""},
		},
		{
			name:  "multiple parts",
			parts: []string{"Producto Alpha", "ALP-01", "Bebida gaseosa de medio litro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.parts...)
			id2 := IDFromContent(tt.parts...)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
			if len(id1) != 16 {
				t.Errorf("IDFromContent() = %q, want 16 hex characters", id1)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestIDFromContent_PartBoundaries(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collide
	id1 := IDFromContent("ab", "c")
	id2 := IDFromContent("a", "bc")

	if id1 == id2 {
		t.Errorf("IDFromContent() ignored part boundaries: %s", id1)
	}
}
