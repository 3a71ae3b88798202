package color

// Patch is a partial HSL update. A nil field leaves that channel as it is.
// A wheel drag sets H and S, the lightness bar sets only L.
type Patch struct {
	H, S, L *float64
}

// ApplyPatch fills the fields missing from patch with those of current and
// returns the normalized result. current itself is never modified.
func ApplyPatch(current HSL, patch Patch) HSL {
	next := current
	if patch.H != nil {
		next.H = *patch.H
	}
	if patch.S != nil {
		next.S = *patch.S
	}
	if patch.L != nil {
		next.L = *patch.L
	}
	return next.Normalize()
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.H == nil && p.S == nil && p.L == nil
}

// Lightness returns a patch that sets only L.
func Lightness(l float64) Patch {
	return Patch{L: &l}
}
