package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/synth-hero/internal/particles"
)

const (
	glyphSmall = '•'
	glyphLarge = '●'
	glyphLink  = '·'

	largeRadius = 1.5
)

// Cells maps a pixel-space surface onto terminal cells. Every cell covers
// cellW×cellH field pixels. Colours are premultiplied over black since the
// terminal has no alpha.
type Cells struct {
	screen       tcell.Screen
	cellW, cellH int

	cols, rows int
	particle   []bool
	link       []uint8
}

var _ particles.Surface = (*Cells)(nil)

func NewCells(screen tcell.Screen, cellW, cellH int) *Cells {
	return &Cells{screen: screen, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// Size reports the terminal size in field pixels.
func (c *Cells) Size() (int, int) {
	cols, rows := c.screen.Size()
	return cols * c.cellW, rows * c.cellH
}

func (c *Cells) Clear() {
	c.screen.Clear()
	c.cols, c.rows = c.screen.Size()
	n := max(c.cols*c.rows, 0)
	if cap(c.particle) < n {
		c.particle = make([]bool, n)
		c.link = make([]uint8, n)
		return
	}
	c.particle = c.particle[:n]
	c.link = c.link[:n]
	clear(c.particle)
	clear(c.link)
}

func (c *Cells) index(cx, cy int) (int, bool) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return 0, false
	}
	return cy*c.cols + cx, true
}

func (c *Cells) FillCircle(x, y, r float64, col color.NRGBA) {
	cx, cy := int(x)/c.cellW, int(y)/c.cellH
	i, ok := c.index(cx, cy)
	if !ok {
		return
	}
	glyph := glyphSmall
	if r >= largeRadius {
		glyph = glyphLarge
	}
	c.particle[i] = true
	c.screen.SetContent(cx, cy, glyph, nil, tcell.StyleDefault.Foreground(terminalColor(col)))
}

// StrokeLine marks the cells between the endpoints. Particle cells are
// never overwritten and overlapping lines keep the brightest alpha.
func (c *Cells) StrokeLine(x1, y1, x2, y2, _ float64, col color.NRGBA) {
	x0, y0 := int(x1)/c.cellW, int(y1)/c.cellH
	xe, ye := int(x2)/c.cellW, int(y2)/c.cellH

	dx, dy := abs(xe-x0), -abs(ye-y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	e := dx + dy
	for {
		c.plotLink(x0, y0, col)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Cells) plotLink(cx, cy int, col color.NRGBA) {
	i, ok := c.index(cx, cy)
	if !ok || c.particle[i] || c.link[i] >= col.A {
		return
	}
	c.link[i] = col.A
	c.screen.SetContent(cx, cy, glyphLink, nil, tcell.StyleDefault.Foreground(terminalColor(col)))
}

// Show flushes the frame to the terminal.
func (c *Cells) Show() {
	c.screen.Show()
}

// Surface implements particles.Target.
func (c *Cells) Surface() particles.Surface {
	if w, h := c.screen.Size(); w <= 0 || h <= 0 {
		return nil
	}
	return c
}

// Release implements particles.Target and restores the terminal.
func (c *Cells) Release() {
	c.screen.Fini()
}

func terminalColor(col color.NRGBA) tcell.Color {
	a := int32(col.A)
	return tcell.NewRGBColor(int32(col.R)*a/255, int32(col.G)*a/255, int32(col.B)*a/255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
