package color

import (
	"fmt"
	"math"
	"strconv"
)

// HSL is a hue/saturation/lightness color. H is in degrees [0, 360),
// S and L are percentages in [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSL converts channel values in [0, 255] to HSL. Out-of-range inputs
// are clamped. Achromatic colors (max == min) have hue and saturation 0.
func RGBToHSL(r, g, b float64) HSL {
	r = clamp(r, 0, 255) / 255
	g = clamp(g, 0, 255) / 255
	b = clamp(b, 0, 255) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: wrapHue(h * 60), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB using the chroma/hue-sector decomposition.
// Hue is taken modulo 360, saturation and lightness are clamped to [0, 100],
// and each channel is rounded to the nearest integer.
func HSLToRGB(h, s, l float64) RGB {
	n := HSL{H: h, S: s, L: l}.Normalize()
	sf, lf := n.S/100, n.L/100

	c := (1 - math.Abs(2*lf-1)) * sf
	hp := n.H / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := lf - c/2
	return RGB{
		R: channel(math.Round((r + m) * 255)),
		G: channel(math.Round((g + m) * 255)),
		B: channel(math.Round((b + m) * 255)),
	}
}

// RGB converts the color to 8-bit RGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// Normalize wraps the hue into [0, 360) and clamps saturation and lightness
// into [0, 100].
func (c HSL) Normalize() HSL {
	return HSL{
		H: wrapHue(c.H),
		S: clamp(c.S, 0, 100),
		L: clamp(c.L, 0, 100),
	}
}

// Round quantizes each component to the given number of decimal places and
// normalizes the result, so a hue that rounds up to 360 becomes 0.
func (c HSL) Round(places int) HSL {
	p := math.Pow(10, float64(places))
	return HSL{
		H: math.Round(c.H*p) / p,
		S: math.Round(c.S*p) / p,
		L: math.Round(c.L*p) / p,
	}.Normalize()
}

// String returns the color as an hsl() string, e.g. "hsl(120, 100%, 50%)".
// Components are printed with at most two decimals.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", FormatNumber(c.H), FormatNumber(c.S), FormatNumber(c.L))
}

// FormatNumber prints v rounded to two decimals without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

// clamp limits v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
