package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is a color given in exactly one of the supported representations.
// The concrete types are Hex, RGB and HSL; callers pick one explicitly.
type Input interface {
	isInput()
}

// Hex is a color given as #RRGGBB text.
type Hex string

func (Hex) isInput() {}
func (RGB) isInput() {}
func (HSL) isInput() {}

// Snapshot holds one color in all three representations. The fields are
// always derived from each other; build one with Normalize or FromHSL.
type Snapshot struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// Normalize derives all three representations from whichever one is given.
// An HSL input keeps its own hue and saturation (normalized) instead of the
// values recomputed from RGB, so achromatic colors do not lose their hue.
func Normalize(in Input) (Snapshot, error) {
	switch v := in.(type) {
	case Hex:
		c, err := ParseHex(string(v))
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrUnrecognizedColorShape, err)
		}
		return FromRGB(c), nil
	case RGB:
		return FromRGB(v), nil
	case HSL:
		return FromHSL(v), nil
	default:
		return Snapshot{}, fmt.Errorf("%w: %T", ErrUnrecognizedColorShape, in)
	}
}

// FromRGB builds a snapshot from an RGB color.
func FromRGB(c RGB) Snapshot {
	return Snapshot{Hex: c.Hex(), RGB: c, HSL: c.HSL()}
}

// FromHSL builds a snapshot from an HSL color after normalizing it.
func FromHSL(c HSL) Snapshot {
	n := c.Normalize()
	rgb := n.RGB()
	return Snapshot{Hex: rgb.Hex(), RGB: rgb, HSL: n}
}

// ParseInput reads textual color notation: "#RRGGBB", "rgb(r, g, b)" or
// "hsl(h, s%, l%)". Percent signs in hsl() are optional. RGB channels are
// clamped and truncated like RGBToHex.
func ParseInput(s string) (Input, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		if _, err := ParseHex(s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnrecognizedColorShape, err)
		}
		return Hex(strings.ToUpper(s)), nil
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		v, err := parseTriple(s[len("rgb("):len(s)-1], false)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnrecognizedColorShape, s, err)
		}
		return NewRGB(v[0], v[1], v[2]), nil
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		v, err := parseTriple(s[len("hsl("):len(s)-1], true)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnrecognizedColorShape, s, err)
		}
		return HSL{H: v[0], S: v[1], L: v[2]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedColorShape, s)
	}
}

func parseTriple(body string, percent bool) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if percent && i > 0 {
			p = strings.TrimSuffix(p, "%")
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return out, fmt.Errorf("component %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
