package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/synth-hero/internal/particles"
)

// Canvas is an offscreen ebiten image the particle field draws into.
// The host composites it onto the screen with reduced opacity.
type Canvas struct {
	img *ebiten.Image
}

var _ particles.Surface = (*Canvas)(nil)

func newCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize recreates the backing image when the size changes.
func (c *Canvas) Resize(w, h int) {
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

// Image returns the backing image, nil after Release or at zero size.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col, true)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.NRGBA) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, true)
}

// Surface implements particles.Target.
func (c *Canvas) Surface() particles.Surface {
	if c.img == nil {
		return nil
	}
	return c
}

// Release implements particles.Target.
func (c *Canvas) Release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}
