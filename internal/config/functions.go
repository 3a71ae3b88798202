package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Color values produced by rgb() and hsl() are objects tagged with a model
// attribute, so the decoder never has to guess the shape from the keys.
var (
	rgbType = cty.Object(map[string]cty.Type{
		"model": cty.String,
		"r":     cty.Number,
		"g":     cty.Number,
		"b":     cty.Number,
	})
	hslType = cty.Object(map[string]cty.Type{
		"model": cty.String,
		"h":     cty.Number,
		"s":     cty.Number,
		"l":     cty.Number,
	})
)

type rgbValue struct {
	Model string  `cty:"model"`
	R     float64 `cty:"r"`
	G     float64 `cty:"g"`
	B     float64 `cty:"b"`
}

type hslValue struct {
	Model string  `cty:"model"`
	H     float64 `cty:"h"`
	S     float64 `cty:"s"`
	L     float64 `cty:"l"`
}

// EvalContext returns the evaluation context for picker files. It provides
// rgb(r, g, b), hsl(h, s, l) and hex(color).
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"rgb": makeModelFunc("rgb", rgbType, [3]string{"r", "g", "b"}),
			"hsl": makeModelFunc("hsl", hslType, [3]string{"h", "s", "l"}),
			"hex": makeHexFunc(),
		},
	}
}

// makeModelFunc creates a three-argument function returning a tagged color
// object, e.g. hsl(120, 100, 50).
func makeModelFunc(model string, ret cty.Type, names [3]string) function.Function {
	params := make([]function.Parameter, len(names))
	for i, n := range names {
		params[i] = function.Parameter{Name: n, Type: cty.Number}
	}
	return function.New(&function.Spec{
		Description: fmt.Sprintf("Builds a color from %s components", model),
		Params:      params,
		Type:        function.StaticReturnType(ret),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.ObjectVal(map[string]cty.Value{
				"model":  cty.StringVal(model),
				names[0]: args[0],
				names[1]: args[1],
				names[2]: args[2],
			}), nil
		},
	})
}

// makeHexFunc creates hex(color), which converts any color value to its
// canonical #RRGGBB string.
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a color to #RRGGBB",
		Params: []function.Parameter{
			{Name: "color", Type: cty.DynamicPseudoType},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			in, err := InputFromValue(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			snap, err := color.Normalize(in)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(snap.Hex), nil
		},
	})
}

// InputFromValue converts an evaluated HCL value into a color input. Strings
// use color.ParseInput; objects must come from rgb() or hsl(). A null value
// yields a nil input.
func InputFromValue(val cty.Value) (color.Input, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: value is not known", color.ErrUnrecognizedColorShape)
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return color.ParseInput(val.AsString())
	case ty.Equals(rgbType):
		var v rgbValue
		if err := gocty.FromCtyValue(val, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", color.ErrUnrecognizedColorShape, err)
		}
		if v.Model != "rgb" {
			return nil, fmt.Errorf("%w: model %q", color.ErrUnrecognizedColorShape, v.Model)
		}
		return color.NewRGB(v.R, v.G, v.B), nil
	case ty.Equals(hslType):
		var v hslValue
		if err := gocty.FromCtyValue(val, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", color.ErrUnrecognizedColorShape, err)
		}
		if v.Model != "hsl" {
			return nil, fmt.Errorf("%w: model %q", color.ErrUnrecognizedColorShape, v.Model)
		}
		return color.HSL{H: v.H, S: v.S, L: v.L}, nil
	default:
		return nil, fmt.Errorf("%w: %s", color.ErrUnrecognizedColorShape, ty.FriendlyName())
	}
}
