package hero

import (
	"time"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// HeadlineRise is how far, in pixels, a title line slides up while fading in.
const HeadlineRise = 20

// ButtonBob is the depth, in pixels, of the synthesize button's idle bob.
const ButtonBob = 6

// Headline staggers the title lines in once the page has loaded.
type Headline struct {
	Lines       []string
	AccentLines []string

	// Hovering tints the accent lines.
	Hovering bool

	elapsed time.Duration
}

func NewHeadline() *Headline {
	return &Headline{Lines: config.HeadlineLines, AccentLines: config.HeadlineAccent}
}

func (h *Headline) Update(dt time.Duration) {
	h.elapsed += dt
}

// Loaded reports whether the load delay has passed.
func (h *Headline) Loaded() bool {
	return h.elapsed >= config.LoadDelay
}

// SinceLoad returns the time since the page counted as loaded.
func (h *Headline) SinceLoad() time.Duration {
	if !h.Loaded() {
		return 0
	}
	return h.elapsed - config.LoadDelay
}

// Line returns the opacity and vertical offset of line i.
func (h *Headline) Line(i int) (alpha, dy float64) {
	if !h.Loaded() {
		return 0, HeadlineRise
	}
	start := config.HeadlineDelay + time.Duration(i)*config.HeadlineStagger
	p := float64(h.SinceLoad()-start) / float64(config.HeadlineFade)
	e := EaseHeadline.At(clamp01(p))
	return e, HeadlineRise * (1 - e)
}

// Accent returns the opacity of the SYNTHE/SIZED? block.
func (h *Headline) Accent() float64 {
	if !h.Loaded() {
		return 0
	}
	return clamp01(float64(h.SinceLoad()-config.AccentDelay) / float64(config.AccentFade))
}

// ProjectTitle returns the opacity and horizontal offset of the corner
// title, which slides in from the left as the page loads.
func (h *Headline) ProjectTitle() (alpha, dx float64) {
	p := clamp01(float64(h.elapsed-config.LoadDelay) / float64(config.ProjectTitleFade))
	e := EaseStandard.At(p)
	return e, -HeadlineRise * (1 - e)
}

// Button returns the opacity and rise of the synthesize group, which fades
// up after the headline, and the current offset of the button's endless
// bob. The bob eases down over half a period and back up over the other.
func (h *Headline) Button() (alpha, rise, bob float64) {
	p := clamp01(float64(h.SinceLoad()-config.ButtonDelay) / float64(config.ButtonFade))
	if !h.Loaded() {
		p = 0
	}
	e := EaseStandard.At(p)

	half := config.ButtonBobPeriod / 2
	t := h.elapsed % config.ButtonBobPeriod
	if t < half {
		bob = ButtonBob * EaseHeadline.At(float64(t)/float64(half))
	} else {
		bob = ButtonBob * (1 - EaseHeadline.At(float64(t-half)/float64(half)))
	}
	return e, HeadlineRise * (1 - e), bob
}
