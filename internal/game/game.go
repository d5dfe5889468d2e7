// Package game hosts the hero page in an ebiten window.
package game

import (
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/synth-hero/internal/config"
	"github.com/iburimskiy/synth-hero/internal/frame"
	"github.com/iburimskiy/synth-hero/internal/hero"
	"github.com/iburimskiy/synth-hero/internal/particles"
)

// Options configures the hero window.
type Options struct {
	Particles int
	Mute      bool
	Seed      uint64
	// Track is an optional wav, mp3 or flac file looped under the chimes.
	Track  string
	Logger *slog.Logger
}

type Game struct {
	log *slog.Logger
	rng *rand.Rand

	width, height int
	particleCount int

	// particle backdrop
	sched  *frame.Scheduler
	field  *particles.Field
	canvas *Canvas
	handle *frame.Handle

	// page state
	headline *hero.Headline
	synth    *hero.Synthesizer
	readout  *hero.Readout
	nav      *hero.Navigation
	audio    *chimes
	motion   *motion
	noise    *perlin.Perlin

	// input
	mouseX, mouseY int
	buttonHovered  bool
	buttonPressed  bool
	hoveredTag     int
	elapsed        time.Duration

	lastErr error
}

func New(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	count := opts.Particles
	if count <= 0 {
		count = config.ParticleCount
	}

	g := &Game{
		log:           log,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:         config.WindowWidth,
		height:        config.WindowHeight,
		particleCount: count,
		sched:         frame.NewScheduler(),
		headline:      hero.NewHeadline(),
		readout:       hero.NewReadout(config.StatusMessages),
		nav:           hero.NewNavigation(),
		motion:        newMotion(config.FrameRate, 6, 0.8),
		noise:         perlin.NewPerlin(2, 2, 3, int64(seed)),
		hoveredTag:    -1,
	}
	g.synth = hero.NewSynthesizer(g.rng)
	g.nav.Resize(g.width)
	g.readout.SetActive(g.synth.Active())

	if !opts.Mute {
		a, err := newChimes(log)
		if err != nil {
			log.Warn("audio unavailable, continuing muted", "err", err)
		} else {
			g.audio = a
			if opts.Track != "" {
				if err := a.loadTrack(opts.Track); err != nil {
					log.Warn("soundtrack skipped", "err", err)
				}
			}
		}
	}

	g.mountParticles()
	return g
}

// mountParticles creates a fresh particle set and registers its frame
// callback.
func (g *Game) mountParticles() {
	opts := particles.DefaultOptions(g.width, g.height)
	opts.Count = g.particleCount
	opts.Rand = g.rng
	g.field = particles.New(opts)
	g.canvas = newCanvas(g.width, g.height)
	g.handle = particles.Start(g.sched, g.field, g.canvas)
	g.log.Debug("particles mounted", "count", g.field.Len(), "width", g.width, "height", g.height)
}

// unmountParticles stops the frame callback and discards the particle set.
func (g *Game) unmountParticles() {
	if g.handle == nil {
		return
	}
	g.handle.Stop()
	g.handle = nil
	g.field = nil
	g.canvas = nil
	g.log.Debug("particles unmounted")
}

// Close releases the particle surface and the audio device.
func (g *Game) Close() {
	g.unmountParticles()
	g.sched.StopAll()
	g.audio.close()
}

func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	g.elapsed += dt

	g.mouseX, g.mouseY = ebiten.CursorPosition()
	pt := image.Pt(g.mouseX, g.mouseY)

	// Synthesize button
	btn := g.buttonRect()
	g.buttonHovered = pt.In(btn)
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered && g.synth.Trigger() {
			g.log.Info("synthesis started", "duration", config.Synthesis)
			g.audio.play(config.ChimeFrequency)
		}
		g.buttonPressed = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.nav.Click(pt, g.height) {
		g.log.Debug("navigation clicked", "open", g.nav.Open())
	}

	g.motion.step(&g.motion.parallaxX, pointerOffset(g.mouseX, g.width))
	g.motion.step(&g.motion.parallaxY, pointerOffset(g.mouseY, g.height))
	g.motion.step(&g.motion.button, g.buttonScale())

	g.headline.Hovering = pt.In(g.accentRect())
	g.hoveredTag = g.tagAt(pt)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.handle != nil {
			g.unmountParticles()
		} else {
			g.mountParticles()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.exportFrame(); err != nil {
			g.lastErr = err
			g.log.Error("export failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openTrack(); err != nil {
			g.lastErr = err
			g.log.Error("soundtrack failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.log.Debug("soundtrack toggled", "playing", g.audio.toggleTrack())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Page timers
	g.headline.Update(dt)
	if g.synth.Update(dt) {
		g.log.Info("synthesis complete", "tags", len(g.synth.Tags()))
		g.audio.play(config.ChimeFrequency * 1.5)
	}
	g.readout.SetActive(g.synth.Active())
	g.readout.Update(dt)

	// Step and render the particle backdrop
	g.sched.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.nav.Resize(g.width)
		if g.field != nil {
			g.field.Resize(g.width, g.height)
			g.canvas.Resize(g.width, g.height)
		}
		g.log.Debug("viewport resized", "width", g.width, "height", g.height)
	}
	return g.width, g.height
}

// buttonScale is the scale the button is easing toward.
func (g *Game) buttonScale() float64 {
	switch {
	case g.buttonPressed && g.buttonHovered:
		return 0.95
	case g.buttonHovered && !g.synth.Active():
		return 1.05
	}
	return 1
}

func (g *Game) buttonRect() image.Rectangle {
	scale := g.motion.button.pos
	w := int(config.ButtonWidth * scale)
	h := int(config.ButtonHeight * scale)
	_, rise, bob := g.headline.Button()
	cx := int(float64(g.width) * 0.45)
	cy := g.height - 32 - config.ButtonHeight/2 + int(rise+bob)
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

// tagAt returns the index of the data tag under pt, or -1.
func (g *Game) tagAt(pt image.Point) int {
	if !g.tagsVisible() {
		return -1
	}
	for i, t := range g.synth.Tags() {
		if pt.In(g.tagRect(t)) {
			return i
		}
	}
	return -1
}

func (g *Game) tagsVisible() bool {
	return g.headline.Loaded() && !g.synth.Active() && g.width >= config.MobileBreakpoint
}

// parallax returns the eased mouse offset from the centre, roughly in
// [-0.5, 0.5].
func (g *Game) parallax() (float64, float64) {
	return g.motion.parallaxX.pos, g.motion.parallaxY.pos
}

func pointerOffset(v, extent int) float64 {
	if extent <= 0 {
		return 0
	}
	return clamp01(float64(v)/float64(extent)) - 0.5
}

// glitchOffset is the horizontal shift of the hover glitch copy, zero on
// frames where the copy is hidden.
func (g *Game) glitchOffset() float64 {
	n := g.noise.Noise1D(g.elapsed.Seconds() * 8)
	if n > -0.15 && n < 0.15 {
		return 0
	}
	return 12 * n
}
