package hero

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// Anchor places a tag by fractional offsets from the viewport edges.
type Anchor struct {
	X, Y       float64
	FromRight  bool
	FromBottom bool
}

// Rect returns the tag rectangle of size w×h inside a vw×vh viewport.
func (a Anchor) Rect(vw, vh, w, h int) image.Rectangle {
	x := int(a.X * float64(vw))
	if a.FromRight {
		x = vw - x - w
	}
	y := int(a.Y * float64(vh))
	if a.FromBottom {
		y = vh - y - h
	}
	return image.Rect(x, y, x+w, y+h)
}

// DataTag is a floating annotation next to the sneaker.
type DataTag struct {
	ID      string
	Title   string
	Content string
	Anchor  Anchor
	// Color is the hex tint; tags fade from 30% to 10% of it.
	Color string
}

const (
	tagBaseDelay = 1500 * time.Millisecond
	tagStagger   = 200 * time.Millisecond
	tagHoverZoom = 1.05
)

var tagLayout = []DataTag{
	{ID: "material", Title: "Material Composition", Anchor: Anchor{X: 0.25, Y: 0.25}, Color: "#ef4444"},
	{ID: "ai", Title: "AI Confidence", Anchor: Anchor{X: 0.25, Y: 0.28, FromRight: true}, Color: "#22c55e"},
	{ID: "design", Title: "Design Parameters", Anchor: Anchor{X: 0.32, Y: 0.25, FromRight: true, FromBottom: true}, Color: "#3b82f6"},
}

// DefaultTags returns the tags shown before the first synthesis completes.
func DefaultTags() []DataTag {
	contents := []string{"Nano-fiber • Liquid Polymer", "98.7%", "Aerodynamic • Responsive"}
	tags := make([]DataTag, len(tagLayout))
	for i, t := range tagLayout {
		t.Content = contents[i]
		tags[i] = t
	}
	return tags
}

// RandomTags returns freshly synthesized tag contents.
func RandomTags(rng *rand.Rand) []DataTag {
	finish := "Durable"
	if rng.Float64() <= 0.5 {
		finish = "Flexible"
	}
	contents := []string{
		fmt.Sprintf("Flex-weave %d • React Foam", rng.IntN(100)),
		fmt.Sprintf("%.1f%%", 95+rng.Float64()*(99.9-95)),
		"Lightweight • " + finish,
	}
	tags := make([]DataTag, len(tagLayout))
	for i, t := range tagLayout {
		t.Content = contents[i]
		tags[i] = t
	}
	return tags
}

// TagAppear returns the opacity and scale of tag i, shown for `shown`.
func TagAppear(i int, shown time.Duration, hovering bool) (alpha, scale float64) {
	start := tagBaseDelay + time.Duration(i)*tagStagger
	p := clamp01(float64(shown-start) / float64(config.TagAppearDuration))
	e := EaseStandard.At(p)
	scale = 0.8 + 0.2*e
	if hovering && p >= 1 {
		scale = tagHoverZoom
	}
	return e, scale
}
