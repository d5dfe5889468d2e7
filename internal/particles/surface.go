package particles

import (
	"image/color"

	"github.com/iburimskiy/synth-hero/internal/frame"
)

// Surface is a 2D drawing target measured in pixels.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
}

// Target hands out the surface for the current frame. Surface returns nil
// when nothing can be drawn to, in which case the frame is skipped.
type Target interface {
	Surface() Surface
	Release()
}

// Start registers the field's step+render callback with the scheduler.
// Stopping the returned handle deregisters the callback and releases the
// target.
func Start(s *frame.Scheduler, f *Field, t Target) *frame.Handle {
	return s.Register(func(frame.Frame) {
		surf := t.Surface()
		if surf == nil {
			return
		}
		f.Step()
		f.Render(surf)
	}, t.Release)
}
