package lsp

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/config"
	"github.com/jsvensson/colorwheel/internal/picker"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "colorwheel"

// pickerAttributes are the valid attributes inside a picker block.
var pickerAttributes = []string{"size", "precision", "initial_color"}

// Notation is the source form a color was written in.
type Notation int

const (
	NotationHex Notation = iota // "#RRGGBB" string literal
	NotationRGB                 // rgb(r, g, b)
	NotationHSL                 // hsl(h, s, l)
	NotationOther               // any other expression, e.g. hex(...) or "hsl(...)" text
)

// AnalysisResult holds all information produced by analyzing a picker file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Pickers     map[string]protocol.Range // picker name -> block header range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range    protocol.Range
	Picker   string
	Color    color.Snapshot
	Notation Notation
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses picker file content and produces diagnostics and color
// locations. It collects every error rather than stopping at the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Pickers: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	for _, attr := range sortedAttributes(body) {
		result.addError(attr.SrcRange, fmt.Sprintf("unexpected top-level attribute %q; settings belong in a picker block", attr.Name))
	}

	ctx := config.EvalContext()
	for _, block := range body.Blocks {
		if block.Type != "picker" {
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q (valid: picker)", block.Type))
			continue
		}
		if len(block.Labels) != 1 {
			result.addError(block.DefRange(), "picker block needs exactly one name label")
			continue
		}

		name := block.Labels[0]
		if _, dup := result.Pickers[name]; dup {
			result.addError(block.DefRange(), fmt.Sprintf("picker %q defined more than once", name))
		} else {
			result.Pickers[name] = hclRangeToLSP(block.DefRange())
		}

		result.analyzePicker(name, block.Body, ctx)
	}

	return result
}

func (r *AnalysisResult) analyzePicker(name string, body *hclsyntax.Body, ctx *hcl.EvalContext) {
	for _, nested := range body.Blocks {
		r.addError(nested.DefRange(), fmt.Sprintf("picker.%s: unexpected block %q", name, nested.Type))
	}

	for _, attr := range sortedAttributes(body) {
		path := "picker." + name + "." + attr.Name
		if !slices.Contains(pickerAttributes, attr.Name) {
			r.addError(attr.NameRange, fmt.Sprintf("unknown attribute %q (valid: size, precision, initial_color)", attr.Name))
			continue
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.Expr.Range(), fmt.Sprintf("evaluating %s: %s", path, diags.Error()))
			continue
		}

		switch attr.Name {
		case "size":
			if f, ok := numberValue(val); !ok || f <= 0 {
				r.addError(attr.Expr.Range(), fmt.Sprintf("%s: must be a positive number", path))
			}
		case "precision":
			if f, ok := numberValue(val); !ok || f < 0 || f > picker.MaxPrecision || f != float64(int(f)) {
				r.addError(attr.Expr.Range(), fmt.Sprintf("%s: must be a whole number between 0 and %d", path, picker.MaxPrecision))
			}
		case "initial_color":
			r.analyzeColor(name, path, attr.Expr, val)
		}
	}
}

func (r *AnalysisResult) analyzeColor(pickerName, path string, expr hclsyntax.Expression, val cty.Value) {
	in, err := config.InputFromValue(val)
	if err != nil {
		r.addError(expr.Range(), fmt.Sprintf("%s: %s", path, err.Error()))
		return
	}
	if in == nil {
		// null leaves the picker on its default color
		return
	}

	snap, err := color.Normalize(in)
	if err != nil {
		r.addError(expr.Range(), fmt.Sprintf("%s: %s", path, err.Error()))
		return
	}

	r.Colors = append(r.Colors, ColorLocation{
		Range:    hclRangeToLSP(expr.Range()),
		Picker:   pickerName,
		Color:    snap,
		Notation: notationOf(expr, in),
	})
}

// notationOf classifies how a color expression is written.
func notationOf(expr hclsyntax.Expression, in color.Input) Notation {
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		switch e.Name {
		case "rgb":
			return NotationRGB
		case "hsl":
			return NotationHSL
		}
	case *hclsyntax.TemplateExpr:
		if _, ok := in.(color.Hex); ok && e.IsStringLiteral() {
			return NotationHex
		}
	}
	return NotationOther
}

func numberValue(val cty.Value) (float64, bool) {
	if val.IsNull() || !val.IsKnown() {
		return 0, false
	}
	var f float64
	if err := gocty.FromCtyValue(val, &f); err != nil {
		return 0, false
	}
	return f, true
}

// sortedAttributes returns the body's attributes in source order so
// diagnostics come out deterministically.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
