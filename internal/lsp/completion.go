package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot   blockContext = iota
	contextPicker              // inside picker "name" {}
	contextOther               // inside anything else
)

// attributeDetails documents each picker attribute in completion items.
var attributeDetails = map[string]string{
	"size":          "wheel diameter in pixels (default 100)",
	"precision":     "decimal places kept for hsl components (default 2)",
	"initial_color": "starting color: \"#RRGGBB\", rgb(), or hsl()",
}

// complete produces completion items given document content and cursor
// position. It is decoupled from the LSP handler for testability.
func complete(content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	textBeforeCursor := line[:min(int(pos.Character), len(line))]

	ctx := determineBlockContext(lines, int(pos.Line))

	if name, ok := valuePosition(textBeforeCursor); ok {
		if ctx == contextPicker && name == "initial_color" {
			return colorValueCompletions()
		}
		return nil
	}

	switch ctx {
	case contextRoot:
		return topLevelCompletions()
	case contextPicker:
		return attributeCompletions(lines, int(pos.Line))
	}
	return nil
}

// valuePosition reports whether the cursor sits right after "name =" with
// nothing typed yet, and returns the attribute name.
func valuePosition(textBeforeCursor string) (string, bool) {
	before, after, ok := strings.Cut(textBeforeCursor, "=")
	if !ok || strings.TrimSpace(after) != "" {
		return "", false
	}
	return strings.TrimSpace(before), true
}

// colorValueCompletions returns snippets for every accepted color notation.
func colorValueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := []struct {
		label, detail, snippet string
		kind                   protocol.CompletionItemKind
	}{
		{"hex", "\"#RRGGBB\"", `"#${1:FF0000}"`, protocol.CompletionItemKindColor},
		{"rgb", "rgb(r, g, b)", "rgb(${1:255}, ${2:0}, ${3:0})", protocol.CompletionItemKindFunction},
		{"hsl", "hsl(h, s, l)", "hsl(${1:0}, ${2:100}, ${3:50})", protocol.CompletionItemKindFunction},
	}

	out := make([]protocol.CompletionItem, 0, len(items))
	for _, it := range items {
		out = append(out, protocol.CompletionItem{
			Label:            it.label,
			Kind:             completionKindPtr(it.kind),
			Detail:           strPtr(it.detail),
			InsertText:       strPtr(it.snippet),
			InsertTextFormat: &snippetFormat,
		})
	}
	return out
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		if opens := strings.Count(line, "{"); opens > 0 {
			name := ""
			if parts := strings.Fields(line); len(parts) > 0 {
				name = parts[0]
			}
			for range opens {
				stack = append(stack, name)
			}
		}

		for range strings.Count(line, "}") {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	switch {
	case len(stack) == 0:
		return contextRoot
	case len(stack) == 1 && stack[0] == "picker":
		return contextPicker
	default:
		return contextOther
	}
}

// attributeCompletions returns picker attributes not yet set in the block
// around the cursor.
func attributeCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range pickerAttributes {
		if defined[name] {
			continue
		}
		insert := name + " = "
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			Detail:     strPtr(attributeDetails[name]),
			InsertText: &insert,
		})
	}
	return items
}

// findDefinedAttributes scans the current block and returns the attribute
// names already defined in it, including lines after the cursor.
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	start := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			start = i + 1
			break
		}
	}

	end := len(lines) - 1
	depth = 0
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			end = i - 1
			break
		}
	}

	for i := start; i <= end; i++ {
		if i == cursorLine {
			continue
		}
		line := strings.TrimSpace(lines[i])
		if name, _, ok := strings.Cut(line, "="); ok {
			name = strings.TrimSpace(name)
			if name != "" && !strings.ContainsAny(name, " {") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions offers a picker block snippet.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet
	snippet := "picker \"${1:name}\" {\n  initial_color = \"${2:#FF0000}\"\n}"

	return []protocol.CompletionItem{{
		Label:            "picker",
		Kind:             &kind,
		Detail:           strPtr("picker block"),
		InsertText:       &snippet,
		InsertTextFormat: &snippetFormat,
	}}
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(content, params.Position), nil
}
