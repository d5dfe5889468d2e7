package render

import (
	"image/color"

	"github.com/iburimskiy/synth-hero/internal/particles"
)

// Snapshot renders the field's current frame to a PNG at path.
// A nil background leaves the frame transparent.
func Snapshot(f *particles.Field, w, h int, bg color.Color, path string) error {
	r := NewRaster(w, h)
	defer r.Release()
	if bg != nil {
		r.SetBackground(bg)
	}
	f.Render(r)
	if err := r.Err(); err != nil {
		return err
	}
	return r.SavePNG(path)
}
