package main

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
)

// Field constants
const (
	AngleStep = 0.01 // Radians added to each particle's phase per frame

	MinRadius  = 0.5
	MaxRadius  = 2.0
	MinSpeed   = 0.1
	MaxSpeed   = 0.4
	MinOpacity = 0.2
	MaxOpacity = 0.7
	MaxSway    = 0.25
)

var (
	ErrNoSurface   = errors.New("dust field: no drawable surface")
	ErrNoScheduler = errors.New("dust field: no frame scheduler")
)

// Particle struct: Represents a single drifting dust mote
type Particle struct {
	X, Y    float64 // Position in surface pixels
	Radius  float64 // Constant after creation
	Speed   float64 // Vertical drift rate, constant after creation
	Opacity float64 // Fill alpha in (0,1], constant after creation
	Angle   float64 // Phase driving the horizontal sway, advances every frame
	Sway    float64 // Sway amplitude; its sign flips at the side edges
}

// Field struct: A fixed set of drifting particles rendered onto a surface
type Field struct {
	Width, Height float64 // Last size applied to the surface

	particles []Particle
	surface   Surface
	sched     Scheduler
	rng       *rand.Rand
	gold      color.RGBA
	cancel    func()
	stopped   bool
}

// StartField populates a particle set sized for the viewport, sizes the
// surface to match and schedules the first frame. The caller decides whether
// a field should exist at all (reduced motion, touch devices); this only
// refuses to run without a surface or scheduler to run on.
func StartField(surface Surface, sched Scheduler, rng *rand.Rand, width, height float64, cfg Config) (*Field, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}

	f := &Field{
		Width:   width,
		Height:  height,
		surface: surface,
		sched:   sched,
		rng:     rng,
		gold:    cfg.Gold,
	}

	count := cfg.WideCount
	if width < cfg.NarrowWidth {
		count = cfg.NarrowCount
	}

	// Create particles. The set never grows or shrinks after this;
	// motes that drift off the top are recycled in place.
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       rng.Float64() * width,
			Y:       rng.Float64() * height,
			Radius:  MinRadius + rng.Float64()*(MaxRadius-MinRadius),
			Speed:   MinSpeed + rng.Float64()*(MaxSpeed-MinSpeed),
			Opacity: MinOpacity + rng.Float64()*(MaxOpacity-MinOpacity),
			Angle:   rng.Float64() * 2 * math.Pi,
			Sway:    (rng.Float64()*2 - 1) * MaxSway,
		}
	}

	surface.SetSize(int(width), int(height))
	f.cancel = sched.Schedule(f.advance)
	return f, nil
}

// advance runs one frame: clear, move and redraw every particle, then
// reschedule. Particles are mutually independent so the walk order is
// arbitrary, and the steady state allocates nothing.
func (f *Field) advance() {
	f.surface.Clear()

	for i := range f.particles {
		p := &f.particles[i]

		p.Y -= p.Speed
		p.X += math.Sin(p.Angle) * p.Sway
		p.Angle += AngleStep

		// Recycle at the top edge: back to the bottom at a fresh x
		if p.Y < 0 {
			p.Y = f.Height
			p.X = f.rng.Float64() * f.Width
		}

		// Soft side boundary: one frame may overshoot, then the sway
		// reverses and pulls the mote back in
		if p.X < 0 || p.X > f.Width {
			p.Sway = -p.Sway
		}

		fill := f.gold
		fill.A = uint8(p.Opacity * 255)
		f.surface.FillCircle(p.X, p.Y, p.Radius, fill)
	}

	if !f.stopped {
		f.cancel = f.sched.Schedule(f.advance)
	}
}

// Resize rescales every particle by the ratio of the field's last known size
// to the new one, then resizes the surface. The previous size is tracked here
// rather than read back from the surface, so each call applies its ratio
// exactly once; calling Resize twice for the same change still compounds the
// ratios, matching the original site's behavior.
func (f *Field) Resize(width, height float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	widthRatio := f.Width / width
	heightRatio := f.Height / height
	for i := range f.particles {
		f.particles[i].X *= widthRatio
		f.particles[i].Y *= heightRatio
	}

	f.Width = width
	f.Height = height
	f.surface.SetSize(int(width), int(height))
}

// Stop cancels the pending frame. Nothing touches the surface after Stop
// returns, and there is no way to restart a stopped field. Safe to call more
// than once.
func (f *Field) Stop() {
	if f.stopped {
		return
	}
	f.stopped = true
	if f.cancel != nil {
		f.cancel()
	}
}

// Count returns the fixed number of particles in the field.
func (f *Field) Count() int {
	return len(f.particles)
}
