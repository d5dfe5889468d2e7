package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/synth-hero/internal/config"
	"github.com/iburimskiy/synth-hero/internal/hero"
)

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	backgroundTop    = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	backgroundBottom = color.NRGBA{R: 9, G: 9, B: 15, A: 255}
	readoutGreen     = hexColor("#4ade80", 1)
)

const (
	glyphW = 7
	glyphH = 13

	headlineScale = 5
	titleScale    = 3
	tagWidth      = 220
	tagHeight     = 56
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawGrid(screen)
	g.drawParticles(screen)
	g.drawSneaker(screen)
	g.drawTags(screen)
	g.drawProjectTitle(screen)
	g.drawHeadline(screen)
	g.drawButton(screen)
	g.drawReadout(screen)
	g.drawNavigation(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
	}
}

func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func textWidth(s string, scale float64) float64 {
	return text.Advance(s, face) * scale
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	top, _ := colorful.MakeColor(backgroundTop)
	bottom, _ := colorful.MakeColor(backgroundBottom)
	const band = 4
	for y := 0; y < g.height; y += band {
		c := top.BlendRgb(bottom, float64(y)/float64(max(g.height, 1)))
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, withAlpha(c, 1), false)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	px, py := g.parallax()
	ox, oy := px*5, py*5
	line := color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	for x := math.Mod(ox, config.GridSpacing); x < float64(g.width); x += config.GridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(g.height), 1, line, false)
	}
	for y := math.Mod(oy, config.GridSpacing); y < float64(g.height); y += config.GridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(g.width), float32(y), 1, line, false)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	if g.canvas == nil || g.canvas.Image() == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(config.BackgroundOpacity)
	screen.DrawImage(g.canvas.Image(), op)
}

// drawSneaker draws a stylised shoe. While synthesizing it is a wireframe
// with a scan line sweeping across it.
func (g *Game) drawSneaker(screen *ebiten.Image) {
	px, py := g.parallax()
	cx := float64(g.width)*0.45 + px*20
	cy := float64(g.height)*0.48 + py*20
	size := math.Min(float64(g.width), float64(g.height)) * 0.22

	type blob struct{ dx, dy, r float64 }
	upper := []blob{
		{-0.9, 0.05, 0.35}, {-0.45, -0.15, 0.45}, {0.05, -0.25, 0.5},
		{0.55, -0.05, 0.42}, {0.95, 0.12, 0.28},
	}
	solid := !g.synth.Active()
	for i, b := range upper {
		c := withAlpha(gradientAt(brandStops, float64(i)/float64(len(upper)-1)), 0.85)
		x, y, r := float32(cx+b.dx*size), float32(cy+b.dy*size), float32(b.r*size)
		if solid {
			vector.DrawFilledCircle(screen, x, y, r, c, true)
		} else {
			c.A = 140
			vector.StrokeCircle(screen, x, y, r, 1, c, true)
		}
	}

	// sole
	soleY := float32(cy + 0.32*size)
	soleH := float32(0.16 * size)
	left, right := float32(cx-1.25*size), float32(cx+1.25*size)
	sole := color.NRGBA{R: 240, G: 240, B: 240, A: 230}
	if solid {
		vector.DrawFilledRect(screen, left, soleY, right-left, soleH, sole, true)
		vector.DrawFilledCircle(screen, left, soleY+soleH/2, soleH/2, sole, true)
		vector.DrawFilledCircle(screen, right, soleY+soleH/2, soleH/2, sole, true)
		vector.StrokeLine(screen, float32(cx-1.1*size), float32(cy+0.15*size), float32(cx+0.9*size), float32(cy-0.05*size), 3, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, true)
		return
	}

	sole.A = 120
	vector.StrokeRect(screen, left, soleY, right-left, soleH, 1, sole, true)
	phase := math.Mod(g.elapsed.Seconds()/1.6, 1)
	scanX := float32(cx - 1.3*size + phase*2.6*size)
	vector.StrokeLine(screen, scanX, float32(cy-0.9*size), scanX, float32(cy+0.6*size), 2, withAlpha(colorful.Color{R: 0.29, G: 0.87, B: 0.5}, 0.8), true)
}

func (g *Game) tagRect(t hero.DataTag) image.Rectangle {
	return t.Anchor.Rect(g.width, g.height, tagWidth, tagHeight)
}

func (g *Game) drawTags(screen *ebiten.Image) {
	if !g.tagsVisible() {
		return
	}
	shown := g.synth.Idle()
	for i, t := range g.synth.Tags() {
		alpha, scale := hero.TagAppear(i, shown, g.hoveredTag == i)
		if alpha <= 0 {
			continue
		}
		r := g.tagRect(t)
		cx, cy := float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2
		w, h := float64(r.Dx())*scale, float64(r.Dy())*scale
		x, y := cx-w/2, cy-h/2

		// horizontal gradient from 30% to 10% of the tint
		const strips = 16
		for s := 0; s < strips; s++ {
			a := (0.3 - 0.2*float64(s)/strips) * alpha
			vector.DrawFilledRect(screen, float32(x+w*float64(s)/strips), float32(y), float32(w/strips)+1, float32(h), hexColor(t.Color, a), false)
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(26 * alpha)}, false)

		// connector towards the sneaker
		lx := x + w
		if t.Anchor.FromRight {
			lx = x - 64
		}
		vector.StrokeLine(screen, float32(lx), float32(cy), float32(lx+64), float32(cy), 1, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(128 * alpha)}, false)

		drawText(screen, t.Title, x+12, y+10, 1, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(178 * alpha)})
		drawText(screen, t.Content, x+12, y+28, 1.4, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * alpha)})
	}
}

func (g *Game) drawProjectTitle(screen *ebiten.Image) {
	alpha, dx := g.headline.ProjectTitle()
	if alpha <= 0 {
		return
	}
	y := 24.0
	for _, line := range config.ProjectTitle {
		g.drawGradientText(screen, line, 32+dx, y, titleScale, alpha)
		y += glyphH * titleScale
	}
}

// drawGradientText tints each glyph along the brand gradient.
func (g *Game) drawGradientText(screen *ebiten.Image, s string, x, y, scale, alpha float64) {
	runes := []rune(s)
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		ch := string(r)
		drawText(screen, ch, x, y, scale, withAlpha(gradientAt(brandStops, t), alpha))
		x += textWidth(ch, scale)
	}
}

func (g *Game) headlineOrigin() (right, top float64) {
	lines := len(g.headline.Lines) + len(g.headline.AccentLines)
	total := float64(lines) * glyphH * headlineScale * 0.9
	return float64(g.width) - 48, float64(g.height)/2 - total/2
}

func (g *Game) accentRect() image.Rectangle {
	right, top := g.headlineOrigin()
	lh := glyphH * headlineScale * 0.9
	y := top + float64(len(g.headline.Lines))*lh
	w := 0.0
	for _, l := range g.headline.AccentLines {
		w = math.Max(w, textWidth(l, headlineScale))
	}
	return image.Rect(int(right-w), int(y), int(right), int(y+float64(len(g.headline.AccentLines))*lh))
}

func (g *Game) drawHeadline(screen *ebiten.Image) {
	right, y := g.headlineOrigin()
	lh := glyphH * headlineScale * 0.9
	for i, line := range g.headline.Lines {
		alpha, dy := g.headline.Line(i)
		if alpha > 0 {
			x := right - textWidth(line, headlineScale)
			drawText(screen, line, x, y+dy, headlineScale, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * alpha)})
		}
		y += lh
	}

	alpha := g.headline.Accent()
	if alpha <= 0 {
		return
	}
	clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * alpha)}
	if g.headline.Hovering {
		clr = readoutGreen
		clr.A = uint8(255 * alpha)
	}
	for _, line := range g.headline.AccentLines {
		x := right - textWidth(line, headlineScale)
		if g.headline.Hovering {
			if dx := g.glitchOffset(); dx != 0 {
				drawText(screen, line, x+dx, y, headlineScale, color.NRGBA{R: 255, G: 0, B: 80, A: 120})
			}
		}
		drawText(screen, line, x, y, headlineScale, clr)
		y += lh
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := g.buttonRect()
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	fade, _, bob := g.headline.Button()
	if fade <= 0 {
		return
	}
	dim := fade
	if g.synth.Active() {
		dim *= 0.5
	}

	// pulsing glow, boosted by the chime
	period := config.ButtonPulsePeriod.Seconds()
	p := math.Mod(g.elapsed.Seconds(), period) / period
	pulse := 0.3 + 0.3*math.Sin(math.Pi*p)*math.Sin(math.Pi*p)
	glow := clamp01(pulse + 0.4*g.audio.level())
	vector.DrawFilledRect(screen, x-6, y-6, w+12, h+12, color.NRGBA{R: 34, G: 197, B: 94, A: uint8(90 * glow * dim)}, true)

	bg := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(26 * dim)}
	if g.buttonHovered && !g.synth.Active() {
		bg.A = uint8(51 * fade)
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(51 * dim)}, true)

	label := g.synth.Label()
	tx := float64(r.Min.X) + (float64(r.Dx())-textWidth(label, 1.4))/2
	ty := float64(r.Min.Y) + (float64(r.Dy())-glyphH*1.4)/2
	drawText(screen, label, tx, ty, 1.4, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * dim)})

	hint := g.synth.Hint()
	if g.synth.Active() {
		hint += " " + formatDuration(g.synth.Remaining())
	}
	hx := float64(r.Min.X+r.Max.X)/2 - textWidth(hint, 1)/2
	// the hint rises with the button but does not bob
	drawText(screen, hint, hx, float64(r.Min.Y)-bob-24, 1, color.NRGBA{R: 156, G: 163, B: 175, A: uint8(255 * fade)})
}

func (g *Game) drawReadout(screen *ebiten.Image) {
	alpha := g.readout.Alpha()
	if alpha <= 0 {
		return
	}
	x := float64(g.width) * 0.45
	y := float64(g.height) * 0.55
	msg := g.readout.Text()
	x -= textWidth(msg, 1.2) / 2

	clr := readoutGreen
	clr.A = uint8(255 * alpha)
	drawText(screen, msg, x, y, 1.2, clr)
	if g.readout.CursorVisible() {
		cx := float32(x + textWidth(msg, 1.2) + 4)
		vector.DrawFilledRect(screen, cx, float32(y), 8, 16, clr, false)
	}
}

func (g *Game) drawNavigation(screen *ebiten.Image) {
	if g.nav.Mobile() {
		tb := g.nav.ToggleBounds()
		x0, x1 := float32(tb.Min.X+8), float32(tb.Max.X-8)
		white := color.NRGBA{R: 255, G: 255, B: 255, A: 230}
		cy := float32(tb.Min.Y+tb.Max.Y) / 2
		if g.nav.Open() {
			vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.NRGBA{A: 242}, false)
			vector.StrokeLine(screen, x0, cy-8, x1, cy+8, 2, white, true)
			vector.StrokeLine(screen, x0, cy+8, x1, cy-8, 2, white, true)
		} else {
			for _, dy := range []float32{-8, 0, 8} {
				vector.StrokeLine(screen, x0, cy+dy, x1, cy+dy, 2, white, true)
			}
		}
	}

	pt := image.Pt(g.mouseX, g.mouseY)
	scale := 1.0
	if g.nav.Mobile() {
		scale = 2
	}
	for _, item := range g.nav.Layout(g.height) {
		b := item.Bounds
		if item.CTA {
			const strips = 12
			for s := 0; s < strips; s++ {
				c := withAlpha(gradientAt(brandStops, float64(s)/(strips-1)), 1)
				if pt.In(b) {
					c.A = 230
				}
				sx := float32(b.Min.X) + float32(b.Dx())*float32(s)/strips
				vector.DrawFilledRect(screen, sx, float32(b.Min.Y-6), float32(b.Dx())/strips+1, float32(b.Dy()+12), c, false)
			}
		}
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: 204}
		if pt.In(b) || item.CTA {
			clr.A = 255
		}
		tx := float64(b.Min.X) + (float64(b.Dx())-textWidth(item.Label, scale))/2
		drawText(screen, item.Label, tx, float64(b.Min.Y)+(float64(b.Dy())-glyphH*scale)/2, scale, clr)
	}
}
