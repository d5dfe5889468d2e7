package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/iburimskiy/synth-hero/internal/particles"
)

// Raster is a software-rasterised surface for headless rendering and PNG
// export.
type Raster struct {
	dc         *gg.Context
	background *gg.RGBA
	err        error
}

var _ particles.Surface = (*Raster)(nil)

// NewRaster creates a w×h surface cleared to transparent.
func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(max(w, 1), max(h, 1))}
}

// SetBackground makes Clear fill with c instead of transparent.
func (r *Raster) SetBackground(c color.Color) {
	bg := gg.FromColor(c)
	r.background = &bg
}

func (r *Raster) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *Raster) Clear() {
	if r.background != nil {
		r.dc.ClearWithColor(*r.background)
		return
	}
	r.dc.Clear()
}

func (r *Raster) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.setColor(c)
	r.dc.DrawCircle(x, y, rad)
	r.keep(r.dc.Fill())
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.setColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.keep(r.dc.Stroke())
}

func (r *Raster) setColor(c color.NRGBA) {
	r.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// keep records the first drawing error; later frames keep drawing.
func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = errors.Wrap(err, "raster draw")
	}
}

// Err returns the first drawing error since the surface was created.
func (r *Raster) Err() error { return r.err }

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) SavePNG(path string) error {
	return errors.Wrapf(r.dc.SavePNG(path), "save %s", path)
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.dc.EncodePNG(w), "encode png")
}

// Surface implements particles.Target.
func (r *Raster) Surface() particles.Surface { return r }

// Release implements particles.Target.
func (r *Raster) Release() {
	_ = r.dc.Close()
}
