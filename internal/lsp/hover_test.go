package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const hoverDoc = `picker "accent" {
  initial_color = "#FF0000"
}

picker "leaf" {
  initial_color = hsl(120, 100, 25)
}

picker "derived" {
  initial_color = hex(rgb(0, 0, 255))
}
`

func hoverAt(t *testing.T, line, char uint32) string {
	t.Helper()
	h := hover(Analyze("test.hcl", hoverDoc), protocol.Position{Line: line, Character: char})
	if h == nil {
		t.Fatalf("expected hover at %d:%d", line, char)
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("Kind = %q, want markdown", mc.Kind)
	}
	return mc.Value
}

func TestHover_HexLiteral(t *testing.T) {
	md := hoverAt(t, 1, 20)
	for _, want := range []string{
		`**picker "accent"**`,
		"`#FF0000`",
		"`rgb(255, 0, 0)`",
		"`hsl(0, 100%, 50%)`",
		"wheel handle: x=1 y=0.5",
		"lightness bar: 50%",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("hover = %q, want it to contain %q", md, want)
		}
	}
	if strings.Contains(md, "resolved from expression") {
		t.Errorf("hex literal hover should not mention expression: %q", md)
	}
}

func TestHover_FunctionCall(t *testing.T) {
	md := hoverAt(t, 5, 22)
	for _, want := range []string{"`#008000`", "`hsl(120, 100%, 25%)`", "x=0.25 y=0.93"} {
		if !strings.Contains(md, want) {
			t.Errorf("hover = %q, want it to contain %q", md, want)
		}
	}
}

func TestHover_Expression(t *testing.T) {
	md := hoverAt(t, 9, 20)
	if !strings.Contains(md, "`#0000FF`") {
		t.Errorf("hover = %q, want #0000FF", md)
	}
	if !strings.Contains(md, "resolved from expression") {
		t.Errorf("hover = %q, want expression note", md)
	}
}

func TestHover_NoColor(t *testing.T) {
	result := Analyze("test.hcl", hoverDoc)
	if h := hover(result, protocol.Position{Line: 0, Character: 2}); h != nil {
		t.Errorf("expected nil hover on block header, got %+v", h)
	}
	if h := hover(nil, protocol.Position{}); h != nil {
		t.Errorf("expected nil hover for nil result, got %+v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 10},
	}
	tests := []struct {
		pos  protocol.Position
		want bool
	}{
		{protocol.Position{Line: 1, Character: 4}, true},
		{protocol.Position{Line: 1, Character: 9}, true},
		{protocol.Position{Line: 1, Character: 10}, false},
		{protocol.Position{Line: 1, Character: 3}, false},
		{protocol.Position{Line: 0, Character: 5}, false},
		{protocol.Position{Line: 2, Character: 5}, false},
	}
	for _, tt := range tests {
		if got := posInRange(tt.pos, r); got != tt.want {
			t.Errorf("posInRange(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestExtractText(t *testing.T) {
	content := "line one\nline two\nline three"
	tests := []struct {
		name string
		rng  protocol.Range
		want string
	}{
		{
			name: "single line",
			rng:  protocol.Range{Start: protocol.Position{Line: 1, Character: 5}, End: protocol.Position{Line: 1, Character: 8}},
			want: "two",
		},
		{
			name: "multi line",
			rng:  protocol.Range{Start: protocol.Position{Line: 0, Character: 5}, End: protocol.Position{Line: 2, Character: 4}},
			want: "one\nline two\nline",
		},
		{
			name: "past end of line",
			rng:  protocol.Range{Start: protocol.Position{Line: 0, Character: 5}, End: protocol.Position{Line: 0, Character: 50}},
			want: "one",
		},
		{
			name: "past end of document",
			rng:  protocol.Range{Start: protocol.Position{Line: 9}, End: protocol.Position{Line: 9, Character: 1}},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.rng); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
