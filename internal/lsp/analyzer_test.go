package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/colorwheel/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const validPickers = `
picker "accent" {
  size          = 120
  precision     = 1
  initial_color = hsl(120, 100, 50)
}

picker "background" {
  initial_color = "#1f1d2e"
}

picker "border" {
  initial_color = rgb(0, 255, 0)
}

picker "derived" {
  initial_color = hex(hsl(240, 100, 50))
}
`

func TestAnalyze_Valid(t *testing.T) {
	result := Analyze("test.hcl", validPickers)

	if len(result.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	if len(result.Pickers) != 4 {
		t.Errorf("len(Pickers) = %d, want 4", len(result.Pickers))
	}

	want := []struct {
		picker   string
		hex      string
		notation Notation
	}{
		{"accent", "#00FF00", NotationHSL},
		{"background", "#1F1D2E", NotationHex},
		{"border", "#00FF00", NotationRGB},
		{"derived", "#0000FF", NotationOther},
	}
	if len(result.Colors) != len(want) {
		t.Fatalf("len(Colors) = %d, want %d", len(result.Colors), len(want))
	}
	for i, w := range want {
		cl := result.Colors[i]
		if cl.Picker != w.picker || cl.Color.Hex != w.hex || cl.Notation != w.notation {
			t.Errorf("Colors[%d] = {%s %s %d}, want {%s %s %d}",
				i, cl.Picker, cl.Color.Hex, cl.Notation, w.picker, w.hex, w.notation)
		}
	}

	if got := result.Colors[0].Color.HSL; got != (color.HSL{H: 120, S: 100, L: 50}) {
		t.Errorf("accent HSL = %+v, want the authored hsl(120, 100, 50)", got)
	}
}

func TestAnalyze_SyntaxError(t *testing.T) {
	result := Analyze("test.hcl", `picker "a" {`)

	if len(result.Diagnostics) == 0 {
		t.Fatal("expected diagnostics for syntax error")
	}
	if *result.Diagnostics[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", *result.Diagnostics[0].Severity)
	}
	if len(result.Colors) != 0 {
		t.Errorf("expected no colors, got %d", len(result.Colors))
	}
}

func TestAnalyze_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMsg  string
		severity protocol.DiagnosticSeverity
		line     uint32
	}{
		{
			name:     "unknown attribute",
			content:  "picker \"a\" {\n  colour = \"#FFFFFF\"\n}\n",
			wantMsg:  `unknown attribute "colour"`,
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
		{
			name:     "negative size",
			content:  "picker \"a\" {\n  size = -1\n}\n",
			wantMsg:  "picker.a.size: must be a positive number",
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
		{
			name:     "fractional precision",
			content:  "picker \"a\" {\n  precision = 1.5\n}\n",
			wantMsg:  "picker.a.precision: must be a whole number",
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
		{
			name:     "malformed hex",
			content:  "picker \"a\" {\n  initial_color = \"#12345\"\n}\n",
			wantMsg:  "picker.a.initial_color: unrecognized color shape",
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
		{
			name:     "wrong arity",
			content:  "picker \"a\" {\n\n  initial_color = hsl(1, 2)\n}\n",
			wantMsg:  "evaluating picker.a.initial_color",
			severity: protocol.DiagnosticSeverityError,
			line:     2,
		},
		{
			name:     "duplicate picker",
			content:  "picker \"a\" {}\npicker \"a\" {}\n",
			wantMsg:  `picker "a" defined more than once`,
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
		{
			name:     "unknown block",
			content:  "palette {}\n",
			wantMsg:  `unknown block "palette"`,
			severity: protocol.DiagnosticSeverityWarning,
			line:     0,
		},
		{
			name:     "missing label",
			content:  "picker {}\n",
			wantMsg:  "exactly one name label",
			severity: protocol.DiagnosticSeverityError,
			line:     0,
		},
		{
			name:     "top-level attribute",
			content:  "size = 10\n",
			wantMsg:  `unexpected top-level attribute "size"`,
			severity: protocol.DiagnosticSeverityError,
			line:     0,
		},
		{
			name:     "nested block",
			content:  "picker \"a\" {\n  extra {}\n}\n",
			wantMsg:  `picker.a: unexpected block "extra"`,
			severity: protocol.DiagnosticSeverityError,
			line:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze("test.hcl", tt.content)
			if len(result.Diagnostics) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d: %+v", len(result.Diagnostics), result.Diagnostics)
			}
			d := result.Diagnostics[0]
			if !strings.Contains(d.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", d.Message, tt.wantMsg)
			}
			if *d.Severity != tt.severity {
				t.Errorf("severity = %v, want %v", *d.Severity, tt.severity)
			}
			if d.Range.Start.Line != tt.line {
				t.Errorf("diagnostic line = %d, want %d", d.Range.Start.Line, tt.line)
			}
			if d.Source == nil || *d.Source != diagSource {
				t.Errorf("source = %v, want %q", d.Source, diagSource)
			}
		})
	}
}

func TestAnalyze_NullColor(t *testing.T) {
	result := Analyze("test.hcl", "picker \"a\" {\n  initial_color = null\n}\n")
	if len(result.Diagnostics) != 0 || len(result.Colors) != 0 {
		t.Errorf("null color: diagnostics %+v, colors %+v; want neither", result.Diagnostics, result.Colors)
	}
}

func TestAnalyze_CollectsAllErrors(t *testing.T) {
	content := `picker "a" {
  size          = 0
  precision     = 99
  initial_color = "blue"
}

picker "b" {
  initial_color = "#FFFFFF"
}
`
	result := Analyze("test.hcl", content)
	if len(result.Diagnostics) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	for i, wantLine := range []uint32{1, 2, 3} {
		if got := result.Diagnostics[i].Range.Start.Line; got != wantLine {
			t.Errorf("Diagnostics[%d] line = %d, want %d", i, got, wantLine)
		}
	}
	if len(result.Colors) != 1 || result.Colors[0].Picker != "b" {
		t.Errorf("Colors = %+v, want only picker b", result.Colors)
	}
}

func TestHCLRangeToLSP(t *testing.T) {
	result := Analyze("test.hcl", "picker \"a\" {\n  initial_color = \"#FFFFFF\"\n}\n")
	if len(result.Colors) != 1 {
		t.Fatalf("len(Colors) = %d, want 1", len(result.Colors))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 18},
		End:   protocol.Position{Line: 1, Character: 27},
	}
	if result.Colors[0].Range != want {
		t.Errorf("Range = %+v, want %+v", result.Colors[0].Range, want)
	}
}
