package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/picker"
)

// File is a parsed picker definition file.
type File struct {
	Pickers []Picker
}

// Picker holds the settings of one picker block.
type Picker struct {
	Name      string
	Size      float64
	Precision int
	// Color is the initial color, or nil when the block does not set one.
	Color color.Input
}

// fileSchema is the top-level gohcl layout of a picker file.
type fileSchema struct {
	Pickers []pickerSchema `hcl:"picker,block"`
}

// pickerSchema decodes a `picker "name" { ... }` block. initial_color is kept
// as an expression so it can be evaluated with the color functions.
type pickerSchema struct {
	Name         string         `hcl:"name,label"`
	Size         *float64       `hcl:"size,optional"`
	Precision    *int           `hcl:"precision,optional"`
	InitialColor hcl.Expression `hcl:"initial_color,optional"`
}

// Load reads and parses a picker file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading picker file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses picker file content. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := EvalContext()

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, ctx, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}

	result := &File{Pickers: make([]Picker, 0, len(schema.Pickers))}
	seen := make(map[string]bool, len(schema.Pickers))

	for _, ps := range schema.Pickers {
		if seen[ps.Name] {
			return nil, fmt.Errorf("picker %q defined more than once", ps.Name)
		}
		seen[ps.Name] = true

		p, err := decodePicker(ps, ctx)
		if err != nil {
			return nil, fmt.Errorf("picker.%s: %w", ps.Name, err)
		}
		result.Pickers = append(result.Pickers, p)
	}

	return result, nil
}

func decodePicker(ps pickerSchema, ctx *hcl.EvalContext) (Picker, error) {
	p := Picker{
		Name:      ps.Name,
		Size:      picker.DefaultSize,
		Precision: picker.DefaultPrecision,
	}

	if ps.Size != nil {
		if *ps.Size <= 0 {
			return Picker{}, fmt.Errorf("size must be positive, got %v", *ps.Size)
		}
		p.Size = *ps.Size
	}

	if ps.Precision != nil {
		if *ps.Precision < 0 || *ps.Precision > picker.MaxPrecision {
			return Picker{}, fmt.Errorf("precision must be between 0 and %d, got %d", picker.MaxPrecision, *ps.Precision)
		}
		p.Precision = *ps.Precision
	}

	if ps.InitialColor != nil {
		val, diags := ps.InitialColor.Value(ctx)
		if diags.HasErrors() {
			return Picker{}, fmt.Errorf("evaluating initial_color: %s", diags.Error())
		}
		in, err := InputFromValue(val)
		if err != nil {
			return Picker{}, fmt.Errorf("initial_color: %w", err)
		}
		p.Color = in
	}

	return p, nil
}

// Lookup returns the picker with the given name.
func (f *File) Lookup(name string) (Picker, bool) {
	for _, p := range f.Pickers {
		if p.Name == name {
			return p, true
		}
	}
	return Picker{}, false
}

// New builds a picker.Picker from the block's settings. Extra options are
// applied after the configured ones.
func (p Picker) New(opts ...picker.Option) *picker.Picker {
	all := append([]picker.Option{
		picker.WithSize(p.Size),
		picker.WithPrecision(p.Precision),
	}, opts...)
	return picker.New(p.Color, all...)
}
