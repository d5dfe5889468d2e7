// Package particles animates a fixed population of drifting points joined
// by fading proximity lines.
package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// Options configures a Field.
type Options struct {
	Count  int
	Width  int
	Height int

	// Velocity components are sampled from [-Speed, Speed).
	Speed     float64
	MinRadius float64
	MaxRadius float64
	Palette   []color.NRGBA

	// Pairs closer than LinkDistance are joined by a line whose alpha
	// falls linearly from LinkAlpha to zero.
	LinkDistance float64
	LinkAlpha    float64
	LineWidth    float64
	LinkColor    color.NRGBA

	// Rand is used during initialization only. Nil means a random seed.
	Rand *rand.Rand
}

// DefaultOptions returns the hero backdrop settings for a w×h surface.
func DefaultOptions(w, h int) Options {
	return Options{
		Count:        config.ParticleCount,
		Width:        w,
		Height:       h,
		Speed:        config.ParticleSpeed,
		MinRadius:    config.ParticleMinRadius,
		MaxRadius:    config.ParticleMaxRadius,
		Palette:      Palette(config.Palette, config.ParticleAlpha),
		LinkDistance: config.LinkDistance,
		LinkAlpha:    config.LinkAlpha,
		LineWidth:    config.LinkWidth,
		LinkColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Palette parses hex colours and applies a shared alpha. Unparsable
// entries are skipped.
func Palette(hexes []string, alpha float64) []color.NRGBA {
	out := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		r, g, b := c.RGB255()
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)})
	}
	return out
}

type bounds struct {
	w, h float64
}

func newBounds(w, h int) *bounds {
	// zero or negative sizes would break the modulo in wrap
	return &bounds{w: math.Max(1, float64(w)), h: math.Max(1, float64(h))}
}

// Field owns the particle set and the wrap bounds. Step and Render must be
// called from a single goroutine; Resize may be called from any goroutine.
type Field struct {
	particles []Particle
	bounds    atomic.Pointer[bounds]

	linkDistance float64
	linkAlpha    float64
	lineWidth    float64
	linkColor    color.NRGBA
}

// New creates opts.Count particles spread uniformly over the surface.
func New(opts Options) *Field {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := newBounds(opts.Width, opts.Height)

	ps := make([]Particle, max(opts.Count, 0))
	for i := range ps {
		p := Particle{
			Pos: Vec2{rng.Float64() * b.w, rng.Float64() * b.h},
			Vel: Vec2{
				rng.Float64()*2*opts.Speed - opts.Speed,
				rng.Float64()*2*opts.Speed - opts.Speed,
			},
			Radius: opts.MinRadius + rng.Float64()*(opts.MaxRadius-opts.MinRadius),
			Color:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		}
		if len(opts.Palette) > 0 {
			p.Color = opts.Palette[rng.IntN(len(opts.Palette))]
		}
		ps[i] = p
	}
	return newField(b, ps, opts)
}

// NewFromParticles builds a field from explicit particles. Positions
// outside the bounds are wrapped in.
func NewFromParticles(w, h int, ps []Particle, opts Options) *Field {
	b := newBounds(w, h)
	cp := make([]Particle, len(ps))
	copy(cp, ps)
	for i := range cp {
		cp[i].Pos = Vec2{wrap(cp[i].Pos.X, b.w), wrap(cp[i].Pos.Y, b.h)}
	}
	return newField(b, cp, opts)
}

func newField(b *bounds, ps []Particle, opts Options) *Field {
	f := &Field{
		particles:    ps,
		linkDistance: opts.LinkDistance,
		linkAlpha:    opts.LinkAlpha,
		lineWidth:    opts.LineWidth,
		linkColor:    opts.LinkColor,
	}
	f.bounds.Store(b)
	return f
}

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Bounds returns the current wrap bounds.
func (f *Field) Bounds() (w, h float64) {
	b := f.bounds.Load()
	return b.w, b.h
}

// Resize replaces the wrap bounds. Particles keep their positions and are
// wrapped into the new bounds on the next Step.
func (f *Field) Resize(w, h int) {
	f.bounds.Store(newBounds(w, h))
}

// Step advances every particle by its velocity and wraps it into bounds.
func (f *Field) Step() {
	b := f.bounds.Load()
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos.X = wrap(p.Pos.X+p.Vel.X, b.w)
		p.Pos.Y = wrap(p.Pos.Y+p.Vel.Y, b.h)
	}
}

// Render clears s, draws every particle, then joins each pair closer than
// the link distance. A nil surface skips the frame.
func (f *Field) Render(s Surface) {
	if s == nil {
		return
	}
	s.Clear()
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return
	}

	for _, p := range f.particles {
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}

	if f.linkDistance <= 0 {
		return
	}
	limit := f.linkDistance * f.linkDistance
	for a := 0; a < len(f.particles); a++ {
		pa := f.particles[a].Pos
		for b := a + 1; b < len(f.particles); b++ {
			pb := f.particles[b].Pos
			dx, dy := pa.X-pb.X, pa.Y-pb.Y
			d2 := dx*dx + dy*dy
			if d2 >= limit {
				continue
			}
			alpha := LineOpacity(math.Sqrt(d2), f.linkDistance, f.linkAlpha)
			if alpha <= 0 {
				continue
			}
			c := f.linkColor
			c.A = alphaByte(alpha * float64(f.linkColor.A) / 255)
			s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, f.lineWidth, c)
		}
	}
}

// LineOpacity is base*(1-d/threshold) below the threshold and zero at or
// beyond it.
func LineOpacity(d, threshold, base float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return base * (1 - d/threshold)
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}
