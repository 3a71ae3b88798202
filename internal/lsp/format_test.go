package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	input := "picker \"a\" {\n  initial_color = \"#FFFFFF\"\n  size = 10\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("len(edits) = %d, want 1", len(edits))
	}

	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 4, Character: 0},
	}
	if edits[0].Range != want {
		t.Errorf("edit range = %+v, want %+v", edits[0].Range, want)
	}

	expected := "picker \"a\" {\n  size          = 10\n  initial_color = \"#FFFFFF\"\n}\n"
	if edits[0].NewText != expected {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, expected)
	}
}

func TestFormatEdits_AlreadyFormatted(t *testing.T) {
	input := "picker \"a\" {\n  size = 10\n}\n"

	edits, err := formatEdits(input)
	if err != nil {
		t.Fatalf("formatEdits() error = %v", err)
	}
	if edits == nil || len(edits) != 0 {
		t.Errorf("formatEdits() = %v, want empty non-nil slice", edits)
	}
}

func TestDocumentEnd(t *testing.T) {
	tests := []struct {
		content string
		want    protocol.Position
	}{
		{"", protocol.Position{}},
		{"abc", protocol.Position{Line: 0, Character: 3}},
		{"abc\n", protocol.Position{Line: 1, Character: 0}},
		{"a\nbcd", protocol.Position{Line: 1, Character: 3}},
	}
	for _, tt := range tests {
		if got := documentEnd(tt.content); got != tt.want {
			t.Errorf("documentEnd(%q) = %+v, want %+v", tt.content, got, tt.want)
		}
	}
}
