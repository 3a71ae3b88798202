// Package picker is the headless color picker container. It holds the
// current color as an immutable snapshot, merges partial edits from the
// wheel and the lightness bar into it, and reports every committed change.
package picker

import (
	"sync"

	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/wheel"
	"github.com/tliron/commonlog"
)

// DefaultColor is used when no initial color is given or it cannot be read.
var DefaultColor = color.Snapshot{
	Hex: "#FF0000",
	RGB: color.RGB{R: 255, G: 0, B: 0},
	HSL: color.HSL{H: 0, S: 100, L: 50},
}

const (
	// DefaultSize is the wheel diameter in pixels.
	DefaultSize = 100
	// DefaultPrecision is the number of decimals kept for edited HSL values.
	DefaultPrecision = 2
	// MaxPrecision bounds the decimals a picker may keep for edited HSL values.
	MaxPrecision = 10
)

// Picker keeps the hex, RGB and HSL forms of one color in sync. It is safe
// for concurrent use; every edit replaces the whole snapshot.
type Picker struct {
	mu        sync.Mutex
	current   color.Snapshot
	onChange  func(color.Snapshot)
	size      float64
	precision int
	log       commonlog.Logger
}

// Option configures a Picker.
type Option func(*Picker)

// WithOnChange sets the callback invoked with the new snapshot after each
// committed edit. It is not called for the initial color.
func WithOnChange(fn func(color.Snapshot)) Option {
	return func(p *Picker) {
		p.onChange = fn
	}
}

// WithSize sets the wheel diameter used by PointerAtPixels and the lightness
// bar length used by LightnessAt.
func WithSize(px float64) Option {
	return func(p *Picker) {
		if px > 0 {
			p.size = px
		}
	}
}

// WithPrecision sets how many decimals of hue, saturation and lightness an
// edit keeps. Values outside [0, MaxPrecision] are ignored.
func WithPrecision(places int) Option {
	return func(p *Picker) {
		if places >= 0 && places <= MaxPrecision {
			p.precision = places
		}
	}
}

// WithLogger replaces the picker's logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Picker) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a picker showing initial. A nil initial shows DefaultColor. An
// initial color that cannot be normalized is logged and replaced by
// DefaultColor; it never fails construction.
func New(initial color.Input, opts ...Option) *Picker {
	p := &Picker{
		current:   DefaultColor,
		size:      DefaultSize,
		precision: DefaultPrecision,
		log:       commonlog.GetLogger("colorwheel.picker"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if initial == nil {
		return p
	}
	snap, err := color.Normalize(initial)
	if err != nil {
		p.log.Errorf("initial color: %s; using %s", err.Error(), DefaultColor.Hex)
		return p
	}
	p.current = snap
	return p
}

// Current returns the color currently held.
func (p *Picker) Current() color.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Size returns the wheel diameter in pixels.
func (p *Picker) Size() float64 {
	return p.size
}

// Apply merges patch into the current HSL, quantizes it, derives RGB and hex
// and replaces the snapshot. It returns the new snapshot.
func (p *Picker) Apply(patch color.Patch) color.Snapshot {
	return p.Update(func(color.HSL) color.Patch { return patch })
}

// Update is Apply with a patch computed from the current HSL. fn runs while
// the picker is locked, so the read and the replacement are one step.
func (p *Picker) Update(fn func(current color.HSL) color.Patch) color.Snapshot {
	p.mu.Lock()
	patch := fn(p.current.HSL)
	next := color.FromHSL(color.ApplyPatch(p.current.HSL, patch).Round(p.precision))
	p.current = next
	onChange := p.onChange
	p.mu.Unlock()

	p.log.Debugf("color %s %s", next.Hex, next.HSL)
	if onChange != nil {
		onChange(next)
	}
	return next
}

// SetColor replaces the current color with c. Unlike New, an invalid color
// is returned as an error and the current color is kept. OnChange is not
// called: the caller already knows the color it set.
func (p *Picker) SetColor(c color.Input) error {
	snap, err := color.Normalize(c)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.current = snap
	p.mu.Unlock()
	return nil
}

// PointerAt applies a wheel sample at unit coordinates (x, y). Hue and
// saturation follow the pointer; lightness is kept.
func (p *Picker) PointerAt(x, y float64) color.Snapshot {
	return p.Apply(wheel.CoordinatesToHS(x, y).Patch())
}

// PointerAtPixels applies a wheel sample given as a pixel offset from the
// wheel's top-left corner.
func (p *Picker) PointerAtPixels(dx, dy float64) color.Snapshot {
	return p.Apply(wheel.AtPixels(dx, dy, p.size).Patch())
}

// LightnessAt applies a lightness bar sample at a pixel offset from the bar's
// left end. The bar is as long as the wheel is wide. Hue and saturation are
// kept.
func (p *Picker) LightnessAt(offset float64) color.Snapshot {
	return p.Apply(color.Lightness(wheel.LevelFromOffset(offset, p.size)))
}

// Handle returns the wheel handle position for the current color.
func (p *Picker) Handle() wheel.Point {
	return wheel.Handle(p.Current().HSL)
}

// LightnessHandle returns the lightness bar handle offset in pixels.
func (p *Picker) LightnessHandle() float64 {
	return wheel.OffsetFromLevel(p.Current().HSL.L, p.size)
}
