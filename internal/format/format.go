package format

import (
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// pickerAttrOrder is the canonical attribute order inside a picker block.
// Attributes not listed keep their relative order after the known ones.
var pickerAttrOrder = []string{"size", "precision", "initial_color"}

// Format returns picker file content in canonical style: hclwrite
// formatting, at most one blank line in a row, no blank lines just inside
// braces, and picker attributes in canonical order.
//
// The formatter works on partial or invalid HCL, so it can run while the
// user is still typing.
func Format(content string) (string, error) {
	out := tidy(string(hclwrite.Format([]byte(content))))
	reordered := reorderPickerBlocks(out)
	if reordered != out {
		// Realign the = signs of the moved attributes.
		out = tidy(string(hclwrite.Format([]byte(reordered))))
	}
	return out, nil
}

func tidy(s string) string {
	s = multipleBlankLines.ReplaceAllString(s, "\n\n")
	s = blankLineAfterOpenBrace.ReplaceAllString(s, "{\n")
	return blankLineBeforeCloseBrace.ReplaceAllString(s, "\n${1}")
}

// attrGroup is one attribute line plus the comment lines directly above it.
type attrGroup struct {
	name  string
	lines []string
}

// reorderPickerBlocks sorts the attributes of every multi-line top-level
// picker block. Blocks containing anything other than single-line
// attributes and comments are left alone.
func reorderPickerBlocks(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, "picker ") || !strings.HasSuffix(line, "{") {
			out = append(out, line)
			continue
		}

		end := -1
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == "}" {
				end = j
				break
			}
		}
		if end < 0 {
			out = append(out, line)
			continue
		}

		body, ok := sortAttributes(lines[i+1 : end])
		if !ok {
			out = append(out, lines[i:end+1]...)
		} else {
			out = append(out, line)
			out = append(out, body...)
			out = append(out, "}")
		}
		i = end
	}

	return strings.Join(out, "\n")
}

func sortAttributes(body []string) ([]string, bool) {
	var groups []attrGroup
	var pending []string

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pending = append(pending, line)
		case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//"):
			pending = append(pending, line)
		case strings.ContainsAny(trimmed, "{}[]") || !strings.Contains(trimmed, "="):
			return nil, false
		default:
			name := strings.TrimSpace(trimmed[:strings.Index(trimmed, "=")])
			groups = append(groups, attrGroup{name: name, lines: append(pending, line)})
			pending = nil
		}
	}

	slices.SortStableFunc(groups, func(a, b attrGroup) int {
		return rank(a.name) - rank(b.name)
	})

	out := make([]string, 0, len(body))
	for _, g := range groups {
		out = append(out, g.lines...)
	}
	return append(out, pending...), true
}

func rank(name string) int {
	if i := slices.Index(pickerAttrOrder, name); i >= 0 {
		return i
	}
	return len(pickerAttrOrder)
}
