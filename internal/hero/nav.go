package hero

import (
	"image"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// NavItem is a laid-out navigation entry.
type NavItem struct {
	Label  string
	Bounds image.Rectangle
	CTA    bool
}

// Navigation is the top-right menu. Narrow viewports collapse it into a
// toggle that opens a full-screen overlay.
type Navigation struct {
	Items []string
	CTA   string

	width int
	open  bool
}

const (
	navMargin     = 24
	navGap        = 32
	navCharWidth  = 7
	navItemHeight = 20
	navToggleSize = 40
	navMenuGap    = 48
)

func NewNavigation() *Navigation {
	return &Navigation{Items: config.NavItems, CTA: config.NavCallToAction}
}

// Resize records the viewport width. Widening past the breakpoint closes
// the mobile menu.
func (n *Navigation) Resize(width int) {
	n.width = width
	if !n.Mobile() {
		n.open = false
	}
}

func (n *Navigation) Mobile() bool { return n.width < config.MobileBreakpoint }

func (n *Navigation) Open() bool { return n.open }

// Toggle opens or closes the mobile menu; it does nothing on desktop.
func (n *Navigation) Toggle() {
	if n.Mobile() {
		n.open = !n.open
	}
}

// Close shuts the mobile menu.
func (n *Navigation) Close() { n.open = false }

// Click handles a press at pt in a viewport of height vh and reports
// whether it landed on the navigation. Choosing an entry closes the menu.
func (n *Navigation) Click(pt image.Point, vh int) bool {
	if n.Mobile() && pt.In(n.ToggleBounds()) {
		n.Toggle()
		return true
	}
	for _, item := range n.Layout(vh) {
		if pt.In(item.Bounds) {
			n.Close()
			return true
		}
	}
	return false
}

// ToggleBounds is the hamburger button rectangle.
func (n *Navigation) ToggleBounds() image.Rectangle {
	x := n.width - navMargin - navToggleSize
	return image.Rect(x, navMargin, x+navToggleSize, navMargin+navToggleSize)
}

// Layout returns the visible entries for a viewport of height vh.
func (n *Navigation) Layout(vh int) []NavItem {
	labels := append(append([]string{}, n.Items...), n.CTA)
	out := make([]NavItem, 0, len(labels))

	if n.Mobile() {
		if !n.open {
			return nil
		}
		y := vh/2 - (len(labels)*navMenuGap)/2
		for i, l := range labels {
			w := len(l) * navCharWidth * 2
			x := (n.width - w) / 2
			out = append(out, NavItem{Label: l, Bounds: image.Rect(x, y, x+w, y+navItemHeight*2), CTA: i == len(labels)-1})
			y += navMenuGap
		}
		return out
	}

	x := n.width - navMargin
	for i := len(labels) - 1; i >= 0; i-- {
		w := len(labels[i]) * navCharWidth
		if i == len(labels)-1 {
			w += 32
		}
		x -= w
		out = append(out, NavItem{Label: labels[i], Bounds: image.Rect(x, navMargin, x+w, navMargin+navItemHeight), CTA: i == len(labels)-1})
		x -= navGap
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
