package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/synth-hero/internal/frame"
)

type op struct {
	kind   string
	x1, y1 float64
	x2, y2 float64
	c      color.NRGBA
}

type recorder struct {
	w, h int
	ops  []op
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Clear()           { r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "circle", x1: x, y1: y, c: c})
}
func (r *recorder) StrokeLine(x1, y1, x2, y2, w float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, c: c})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func seeded(w, h, n int) Options {
	opts := DefaultOptions(w, h)
	opts.Count = n
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	return opts
}

func TestNewPlacesParticlesInBounds(t *testing.T) {
	opts := seeded(640, 480, 200)
	f := New(opts)
	if f.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 640 || p.Pos.Y < 0 || p.Pos.Y >= 480 {
			t.Errorf("particle %d at %v out of bounds", i, p.Pos)
		}
		if math.Abs(p.Vel.X) > opts.Speed || math.Abs(p.Vel.Y) > opts.Speed {
			t.Errorf("particle %d velocity %v exceeds speed %v", i, p.Vel, opts.Speed)
		}
		if p.Radius < opts.MinRadius || p.Radius >= opts.MaxRadius {
			t.Errorf("particle %d radius %v outside [%v, %v)", i, p.Radius, opts.MinRadius, opts.MaxRadius)
		}
		found := false
		for _, c := range opts.Palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Errorf("particle %d colour %v not in palette", i, p.Color)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	opts := DefaultOptions(100, 100)
	want := []color.NRGBA{
		{R: 0, G: 100, B: 255, A: 204},
		{R: 0, G: 255, B: 150, A: 204},
		{R: 150, G: 0, B: 255, A: 204},
	}
	if len(opts.Palette) != len(want) {
		t.Fatalf("palette has %d colours, want %d", len(opts.Palette), len(want))
	}
	for i := range want {
		if opts.Palette[i] != want[i] {
			t.Errorf("palette[%d] = %v, want %v", i, opts.Palette[i], want[i])
		}
	}
}

func TestPaletteSkipsInvalidHex(t *testing.T) {
	got := Palette([]string{"#ff0000", "nope", "#00ff00"}, 1)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestStepKeepsInvariants(t *testing.T) {
	f := New(seeded(300, 200, 120))
	// exaggerate the velocities so wraparound happens often
	for i := range f.particles {
		f.particles[i].Vel = Vec2{f.particles[i].Vel.X * 900, f.particles[i].Vel.Y * 900}
	}
	before := f.Particles()

	for step := 0; step < 500; step++ {
		f.Step()
	}

	after := f.Particles()
	if len(after) != len(before) {
		t.Fatalf("count changed from %d to %d", len(before), len(after))
	}
	for i, p := range after {
		if p.Pos.X < 0 || p.Pos.X >= 300 || p.Pos.Y < 0 || p.Pos.Y >= 200 {
			t.Errorf("particle %d at %v out of bounds", i, p.Pos)
		}
		if p.Vel != before[i].Vel {
			t.Errorf("particle %d velocity changed from %v to %v", i, before[i].Vel, p.Vel)
		}
		if p.Color != before[i].Color || p.Radius != before[i].Radius {
			t.Errorf("particle %d appearance changed", i)
		}
	}
}

func TestStepWrapsEachEdge(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
		vel  Vec2
		want Vec2
	}{
		{"right edge", Vec2{99.5, 10}, Vec2{1, 0}, Vec2{0.5, 10}},
		{"left edge", Vec2{0.25, 10}, Vec2{-1, 0}, Vec2{99.25, 10}},
		{"bottom edge", Vec2{10, 49.5}, Vec2{0, 1}, Vec2{10, 0.5}},
		{"top edge", Vec2{10, 0}, Vec2{0, -0.5}, Vec2{10, 49.5}},
		{"corner", Vec2{99.9, 49.9}, Vec2{0.2, 0.2}, Vec2{0.1, 0.1}},
		{"interior", Vec2{40, 20}, Vec2{0.1, -0.1}, Vec2{40.1, 19.9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFromParticles(100, 50, []Particle{{Pos: tt.pos, Vel: tt.vel}}, DefaultOptions(100, 50))
			f.Step()
			got := f.Particles()[0].Pos
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Step() pos = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapAtSurfaceWidth(t *testing.T) {
	const w, h = 1280, 720
	f := NewFromParticles(w, h, []Particle{{Pos: Vec2{w - 0.5, 300}, Vel: Vec2{1, 0}}}, DefaultOptions(w, h))
	f.Step()
	p := f.Particles()[0]
	if p.Pos.X < 0 || p.Pos.X >= 1 {
		t.Errorf("x = %v, want in [0, 1)", p.Pos.X)
	}
	if p.Pos.Y != 300 {
		t.Errorf("y = %v, want 300", p.Pos.Y)
	}
}

func TestWrapTinyNegative(t *testing.T) {
	got := wrap(-1e-18, 100)
	if got < 0 || got >= 100 {
		t.Errorf("wrap(-1e-18, 100) = %v, want in [0, 100)", got)
	}
}

func TestResizeChangesBoundsOnly(t *testing.T) {
	f := NewFromParticles(200, 200, []Particle{{Pos: Vec2{150, 150}, Vel: Vec2{0, 0}}}, DefaultOptions(200, 200))

	f.Resize(100, 120)
	if got := f.Particles()[0].Pos; got != (Vec2{150, 150}) {
		t.Errorf("Resize moved particle to %v", got)
	}
	if w, h := f.Bounds(); w != 100 || h != 120 {
		t.Errorf("Bounds() = %v, %v; want 100, 120", w, h)
	}

	f.Step()
	got := f.Particles()[0].Pos
	if got.X != 50 || got.Y != 30 {
		t.Errorf("after Step pos = %v, want {50 30}", got)
	}
}

func TestResizeClampsToOne(t *testing.T) {
	f := New(seeded(100, 100, 10))
	f.Resize(0, -5)
	if w, h := f.Bounds(); w != 1 || h != 1 {
		t.Errorf("Bounds() = %v, %v; want 1, 1", w, h)
	}
	f.Step()
	for _, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 1 || p.Pos.Y < 0 || p.Pos.Y >= 1 {
			t.Errorf("particle at %v outside 1x1 bounds", p.Pos)
		}
	}
}

func TestLineOpacity(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 0.3},
		{25, 0.225},
		{50, 0.15},
		{99, 0.003},
		{100, 0},
		{150, 0},
	}
	for _, tt := range tests {
		got := LineOpacity(tt.d, 100, 0.3)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LineOpacity(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestLineOpacityMonotonic(t *testing.T) {
	prev := LineOpacity(0, 100, 0.3)
	for d := 0.5; d <= 100; d += 0.5 {
		cur := LineOpacity(d, 100, 0.3)
		if cur > prev {
			t.Fatalf("opacity increased from %v to %v at d=%v", prev, cur, d)
		}
		prev = cur
	}
	if prev != 0 {
		t.Errorf("opacity at threshold = %v, want 0", prev)
	}
}

func TestRenderEmptyFieldOnlyClears(t *testing.T) {
	opts := seeded(100, 100, 0)
	f := New(opts)
	r := &recorder{w: 100, h: 100}
	f.Render(r)
	if len(r.ops) != 1 || r.ops[0].kind != "clear" {
		t.Errorf("ops = %+v, want a single clear", r.ops)
	}
}

func TestRenderZeroSizedSurface(t *testing.T) {
	f := New(seeded(100, 100, 20))
	r := &recorder{}
	f.Render(r)
	if r.count("circle") != 0 || r.count("line") != 0 {
		t.Errorf("drew on a zero-sized surface: %+v", r.ops)
	}
}

func TestRenderNilSurface(t *testing.T) {
	f := New(seeded(100, 100, 5))
	f.Render(nil)
}

func TestRenderTwoStaticParticles(t *testing.T) {
	opts := DefaultOptions(200, 200)
	ps := []Particle{
		{Pos: Vec2{0, 0}, Radius: 1, Color: opts.Palette[0]},
		{Pos: Vec2{50, 0}, Radius: 1, Color: opts.Palette[1]},
	}
	f := NewFromParticles(200, 200, ps, opts)
	f.Step()

	got := f.Particles()
	if d := got[1].Pos.Sub(got[0].Pos).Len(); d != 50 {
		t.Fatalf("distance = %v, want 50", d)
	}
	if o := LineOpacity(50, opts.LinkDistance, opts.LinkAlpha); math.Abs(o-0.5*opts.LinkAlpha) > 1e-12 {
		t.Errorf("opacity = %v, want %v", o, 0.5*opts.LinkAlpha)
	}

	r := &recorder{w: 200, h: 200}
	f.Render(r)
	if r.ops[0].kind != "clear" {
		t.Errorf("first op = %q, want clear", r.ops[0].kind)
	}
	if r.count("circle") != 2 {
		t.Errorf("circles = %d, want 2", r.count("circle"))
	}
	if r.count("line") != 1 {
		t.Fatalf("lines = %d, want 1", r.count("line"))
	}
	line := r.ops[len(r.ops)-1]
	if want := alphaByte(0.15); line.c.A != want {
		t.Errorf("line alpha = %d, want %d", line.c.A, want)
	}
}

func TestRenderSkipsDistantPairs(t *testing.T) {
	opts := DefaultOptions(500, 500)
	ps := []Particle{
		{Pos: Vec2{0, 0}},
		{Pos: Vec2{100, 0}},
		{Pos: Vec2{300, 300}},
	}
	f := NewFromParticles(500, 500, ps, opts)
	r := &recorder{w: 500, h: 500}
	f.Render(r)
	if r.count("line") != 0 {
		t.Errorf("lines = %d, want 0", r.count("line"))
	}
}

type fakeTarget struct {
	surf     Surface
	released int
}

func (t *fakeTarget) Surface() Surface { return t.surf }
func (t *fakeTarget) Release()         { t.released++ }

func TestStartStop(t *testing.T) {
	sched := frame.NewScheduler()
	f := NewFromParticles(100, 100, []Particle{{Pos: Vec2{10, 10}, Vel: Vec2{1, 0}}}, DefaultOptions(100, 100))
	r := &recorder{w: 100, h: 100}
	target := &fakeTarget{surf: r}

	h := Start(sched, f, target)
	sched.Tick()
	sched.Tick()
	if got := f.Particles()[0].Pos.X; got != 12 {
		t.Errorf("x after two frames = %v, want 12", got)
	}
	if r.count("clear") != 2 {
		t.Errorf("clears = %d, want 2", r.count("clear"))
	}

	h.Stop()
	sched.Tick()
	if got := f.Particles()[0].Pos.X; got != 12 {
		t.Errorf("field advanced after Stop: x = %v", got)
	}
	if target.released != 1 {
		t.Errorf("released = %d, want 1", target.released)
	}
}

func TestStartSkipsFrameWithoutSurface(t *testing.T) {
	sched := frame.NewScheduler()
	f := NewFromParticles(100, 100, []Particle{{Pos: Vec2{10, 10}, Vel: Vec2{1, 0}}}, DefaultOptions(100, 100))
	target := &fakeTarget{}

	h := Start(sched, f, target)
	defer h.Stop()
	sched.Tick()
	if got := f.Particles()[0].Pos.X; got != 10 {
		t.Errorf("x = %v, want 10 when the surface is unavailable", got)
	}
}

func TestConcurrentResize(t *testing.T) {
	f := New(seeded(400, 400, 50))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			f.Resize(100+i%300, 100+i%200)
		}
	}()
	for i := 0; i < 1000; i++ {
		f.Step()
	}
	<-done

	f.Step()
	w, h := f.Bounds()
	for _, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= w || p.Pos.Y < 0 || p.Pos.Y >= h {
			t.Errorf("particle at %v outside %vx%v", p.Pos, w, h)
		}
	}
}
