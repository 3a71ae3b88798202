package lsp

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func completionLabels(items []protocol.CompletionItem) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	sort.Strings(labels)
	return labels
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pos     protocol.Position
		want    []string
	}{
		{
			name:    "top level offers picker block",
			content: "\n",
			pos:     protocol.Position{Line: 0, Character: 0},
			want:    []string{"picker"},
		},
		{
			name:    "empty picker offers every attribute",
			content: "picker \"a\" {\n  \n}\n",
			pos:     protocol.Position{Line: 1, Character: 2},
			want:    []string{"initial_color", "precision", "size"},
		},
		{
			name:    "defined attributes are excluded",
			content: "picker \"a\" {\n  size = 10\n  \n  initial_color = \"#FFFFFF\"\n}\n",
			pos:     protocol.Position{Line: 2, Character: 2},
			want:    []string{"precision"},
		},
		{
			name:    "other pickers do not count",
			content: "picker \"a\" {\n  size = 10\n}\n\npicker \"b\" {\n  \n}\n",
			pos:     protocol.Position{Line: 5, Character: 2},
			want:    []string{"initial_color", "precision", "size"},
		},
		{
			name:    "initial_color value offers notations",
			content: "picker \"a\" {\n  initial_color = \n}\n",
			pos:     protocol.Position{Line: 1, Character: 18},
			want:    []string{"hex", "hsl", "rgb"},
		},
		{
			name:    "size value offers nothing",
			content: "picker \"a\" {\n  size = \n}\n",
			pos:     protocol.Position{Line: 1, Character: 9},
			want:    []string{},
		},
		{
			name:    "nested block offers nothing",
			content: "picker \"a\" {\n  extra {\n    \n  }\n}\n",
			pos:     protocol.Position{Line: 2, Character: 4},
			want:    []string{},
		},
		{
			name:    "cursor past end of document",
			content: "picker \"a\" {}\n",
			pos:     protocol.Position{Line: 10, Character: 0},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completionLabels(complete(tt.content, tt.pos))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("completion labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompletion_ColorSnippets(t *testing.T) {
	items := colorValueCompletions()
	want := map[string]string{
		"hex": `"#${1:FF0000}"`,
		"rgb": "rgb(${1:255}, ${2:0}, ${3:0})",
		"hsl": "hsl(${1:0}, ${2:100}, ${3:50})",
	}
	for _, item := range items {
		if item.InsertText == nil || *item.InsertText != want[item.Label] {
			t.Errorf("%s: InsertText = %v, want %q", item.Label, item.InsertText, want[item.Label])
		}
		if item.InsertTextFormat == nil || *item.InsertTextFormat != protocol.InsertTextFormatSnippet {
			t.Errorf("%s: expected snippet format", item.Label)
		}
	}
}

func TestValuePosition(t *testing.T) {
	tests := []struct {
		text     string
		wantName string
		wantOK   bool
	}{
		{"  initial_color = ", "initial_color", true},
		{"  size =", "size", true},
		{"  size = 1", "", false},
		{"  size", "", false},
	}
	for _, tt := range tests {
		name, ok := valuePosition(tt.text)
		if name != tt.wantName || ok != tt.wantOK {
			t.Errorf("valuePosition(%q) = (%q, %v), want (%q, %v)", tt.text, name, ok, tt.wantName, tt.wantOK)
		}
	}
}
