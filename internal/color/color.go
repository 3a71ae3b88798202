package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when a hex string is not of the form #RRGGBB.
	ErrInvalidFormat = errors.New("invalid hex color format")

	// ErrUnrecognizedColorShape is returned when an input is none of hex, RGB or HSL.
	ErrUnrecognizedColorShape = errors.New("unrecognized color shape")
)

// RGB represents an sRGB color with 8-bit channels. Hex and HSL forms are
// derived from it.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a hex color string like "#EB6F92" into an RGB.
// The leading # is required and digits may be either case.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q must be #RRGGBB", ErrInvalidFormat, s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q has non-hex digits", ErrInvalidFormat, s)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats channel values as "#RRGGBB". Values are clamped to
// [0, 255] and truncated.
func RGBToHex(r, g, b float64) string {
	return NewRGB(r, g, b).Hex()
}

// NewRGB builds an RGB from arbitrary channel values, clamping each to
// [0, 255] and truncating it.
func NewRGB(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// Hex returns the color as an uppercase hex string with leading #, e.g. "#EB6F92".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL converts the color to hue, saturation and lightness.
func (c RGB) HSL() HSL {
	return RGBToHSL(float64(c.R), float64(c.G), float64(c.B))
}

// channel clamps v to [0, 255] and truncates it. NaN maps to 0.
func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
