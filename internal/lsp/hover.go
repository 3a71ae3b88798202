package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/wheel"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := min(int(r.End.Line), len(lines)-1)
	if startLine >= len(lines) || endLine < startLine {
		return ""
	}

	clip := func(line string, ch uint32) int {
		return min(int(ch), len(line))
	}

	if startLine == endLine {
		line := lines[startLine]
		start, end := clip(line, r.Start.Character), clip(line, r.End.Character)
		if end < start {
			return ""
		}
		return line[start:end]
	}

	parts := []string{lines[startLine][clip(lines[startLine], r.Start.Character):]}
	parts = append(parts, lines[startLine+1:endLine]...)
	parts = append(parts, lines[endLine][:clip(lines[endLine], r.End.Character)])
	return strings.Join(parts, "\n")
}

// hoverMarkdown renders a color snapshot with its wheel handle position.
func hoverMarkdown(picker string, snap color.Snapshot, notation Notation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**picker %q**\n\n", picker)
	fmt.Fprintf(&b, "`%s` · `%s` · `%s`\n\n", snap.Hex, snap.RGB, snap.HSL.Round(2))

	p := wheel.Handle(snap.HSL)
	fmt.Fprintf(&b, "wheel handle: x=%s y=%s · lightness bar: %s%%",
		color.FormatNumber(p.X), color.FormatNumber(p.Y), color.FormatNumber(snap.HSL.L))

	if notation == NotationOther {
		b.WriteString("\n\nresolved from expression")
	}
	return b.String()
}

// hover produces a Hover response for the given cursor position.
// Returns nil if no color is found at the position.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: hoverMarkdown(cl.Picker, cl.Color, cl.Notation),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)
	return hover(s.docs.Analysis(uri), params.Position), nil
}
