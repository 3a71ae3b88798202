// Package colorwheel converts colors between hex, RGB and HSL and maps an
// HSL color wheel to and from planar coordinates. It is the public face of
// the internal packages; Picker ties the pieces together.
package colorwheel

import (
	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/config"
	"github.com/jsvensson/colorwheel/internal/picker"
	"github.com/jsvensson/colorwheel/internal/wheel"
)

type (
	RGB      = color.RGB
	HSL      = color.HSL
	Hex      = color.Hex
	Input    = color.Input
	Snapshot = color.Snapshot
	Patch    = color.Patch
	Point    = wheel.Point
	HS       = wheel.HS
	Picker   = picker.Picker
	Option   = picker.Option
	Config   = config.File
)

var (
	ErrInvalidFormat          = color.ErrInvalidFormat
	ErrUnrecognizedColorShape = color.ErrUnrecognizedColorShape
)

// HexToRGB parses "#RRGGBB".
func HexToRGB(hex string) (RGB, error) { return color.ParseHex(hex) }

// RGBToHex formats channels as uppercase "#RRGGBB", clamping to [0, 255].
func RGBToHex(r, g, b float64) string { return color.RGBToHex(r, g, b) }

func RGBToHSL(r, g, b float64) HSL { return color.RGBToHSL(r, g, b) }

func HSLToRGB(h, s, l float64) RGB { return color.HSLToRGB(h, s, l) }

// Normalize derives hex, RGB and HSL from whichever one in carries.
func Normalize(in Input) (Snapshot, error) { return color.Normalize(in) }

// ParseColor reads "#RRGGBB", "rgb(r, g, b)" or "hsl(h, s%, l%)".
func ParseColor(s string) (Input, error) { return color.ParseInput(s) }

func CoordinatesToHS(x, y float64) HS { return wheel.CoordinatesToHS(x, y) }

func HSToCoordinates(h, s float64) Point { return wheel.HSToCoordinates(h, s) }

// NewPicker creates a picker showing initial, or #FF0000 when initial is nil
// or invalid.
func NewPicker(initial Input, opts ...Option) *Picker { return picker.New(initial, opts...) }

func WithOnChange(fn func(Snapshot)) Option { return picker.WithOnChange(fn) }
func WithSize(px float64) Option { return picker.WithSize(px) }
func WithPrecision(places int) Option { return picker.WithPrecision(places) }

// LoadConfig reads a picker HCL file.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }
