package wheel

import "math"

// LevelFromOffset maps a horizontal pointer offset on a bar of the given
// length to a level in [0, 100]. The left end is 100 and the right end is 0,
// matching a white-to-black lightness gradient. The offset is clamped to
// [0, length] before scaling.
func LevelFromOffset(offset, length float64) float64 {
	if length <= 0 || math.IsNaN(offset) {
		return 100
	}
	return (1 - math.Min(length, math.Max(0, offset))/length) * 100
}

// OffsetFromLevel is the inverse of LevelFromOffset: the offset at which a
// handle for level sits on a bar of the given length.
func OffsetFromLevel(level, length float64) float64 {
	if math.IsNaN(level) {
		level = 100
	}
	level = math.Min(100, math.Max(0, level))
	return (1 - level/100) * length
}
