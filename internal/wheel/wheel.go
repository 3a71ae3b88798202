// Package wheel maps between points on a circular color control and
// hue/saturation pairs. The wheel is a polar plot inside a unit bounding
// square: the angle is the hue and the distance from the center is the
// saturation.
package wheel

import (
	"math"

	"github.com/jsvensson/colorwheel/internal/color"
)

// Radius is the disc radius in bounding-square units. The square side equals
// the wheel diameter, so the edge sits at 0.5 from the center.
const Radius = 0.5

// Point is a position relative to the top-left corner of the bounding
// square, with both coordinates in [0, 1]. (0.5, 0.5) is the disc center.
type Point struct {
	X, Y float64
}

// HS is the part of an HSL color the wheel determines. Lightness is not
// encoded in the wheel position and must be carried by the caller.
type HS struct {
	H, S float64
}

// Patch returns the hue and saturation as a partial HSL update.
func (hs HS) Patch() color.Patch {
	return color.Patch{H: &hs.H, S: &hs.S}
}

// CoordinatesToHS converts a point in the bounding square to hue and
// saturation. The hue is the angle of (x-0.5, y-0.5) in degrees [0, 360).
// Points outside the disc are subject to ClampRadius, so saturation never
// leaves [0, 100]. The center maps to saturation 0 and hue 0.
func CoordinatesToHS(x, y float64) HS {
	dx, dy, d := ClampRadius(x-0.5, y-0.5)

	h := math.Atan2(dy, dx) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return HS{H: h, S: d / Radius * 100}
}

// HSToCoordinates is the inverse of CoordinatesToHS for points on or inside
// the disc. Saturation is clamped to [0, 100] so the point stays inside the
// bounding square.
func HSToCoordinates(h, s float64) Point {
	if math.IsNaN(s) || s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	if math.IsNaN(h) {
		h = 0
	}

	r := s / 100 * Radius
	a := h * math.Pi / 180
	return Point{
		X: 0.5 + r*math.Cos(a),
		Y: 0.5 + r*math.Sin(a),
	}
}

// ClampRadius is the disc radius clamp: an offset from the center farther
// than Radius is scaled back along its own direction onto the edge. It
// returns the clamped offset and its distance from the center, which is
// exactly Radius for clamped offsets. The clamp is deliberately lossy: every
// point beyond the edge in one direction maps to the same edge point.
// Infinite offsets keep only their sign, so (+Inf, y) lands on the right edge.
func ClampRadius(dx, dy float64) (float64, float64, float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return 0, 0, 0
	}
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		dx, dy = infDirection(dx), infDirection(dy)
	}
	d := math.Hypot(dx, dy)
	if d <= Radius {
		return dx, dy, d
	}
	k := Radius / d
	return dx * k, dy * k, Radius
}

func infDirection(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.Copysign(1, v)
	}
	return 0
}

// Handle returns the handle position on the wheel for a color.
func Handle(c color.HSL) Point {
	return HSToCoordinates(c.H, c.S)
}

// AtPixels converts a pointer offset in pixels from the top-left of a wheel
// of the given diameter into unit coordinates and maps them like
// CoordinatesToHS. A non-positive diameter maps everything to the center.
func AtPixels(dx, dy, diameter float64) HS {
	if diameter <= 0 {
		return CoordinatesToHS(0.5, 0.5)
	}
	return CoordinatesToHS(dx/diameter, dy/diameter)
}
