package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/synth-hero/internal/particles"
)

var red = color.NRGBA{R: 255, A: 255}

func twoParticleField(w, h int, a, b particles.Vec2) *particles.Field {
	opts := particles.DefaultOptions(w, h)
	return particles.NewFromParticles(w, h, []particles.Particle{
		{Pos: a, Radius: 2, Color: red},
		{Pos: b, Radius: 2, Color: red},
	}, opts)
}

func TestRasterDrawsParticles(t *testing.T) {
	r := NewRaster(64, 64)
	defer r.Release()

	twoParticleField(64, 64, particles.Vec2{X: 10, Y: 10}, particles.Vec2{X: 50, Y: 50}).Render(r)
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	_, _, _, a := r.Image().At(10, 10).RGBA()
	if a == 0 {
		t.Error("no paint at particle centre")
	}
	_, _, _, a = r.Image().At(60, 2).RGBA()
	if a != 0 {
		t.Errorf("alpha at empty corner = %d, want 0", a)
	}
}

func TestRasterEmptyFieldIsCleared(t *testing.T) {
	r := NewRaster(32, 32)
	defer r.Release()
	r.FillCircle(16, 16, 4, red)

	particles.NewFromParticles(32, 32, nil, particles.DefaultOptions(32, 32)).Render(r)

	for y := 0; y < 32; y += 4 {
		for x := 0; x < 32; x += 4 {
			if _, _, _, a := r.Image().At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel (%d,%d) alpha = %d after clear", x, y, a)
			}
		}
	}
}

func TestRasterBackground(t *testing.T) {
	r := NewRaster(8, 8)
	defer r.Release()
	r.SetBackground(color.Black)
	r.Clear()
	if _, _, _, a := r.Image().At(4, 4).RGBA(); a != 0xffff {
		t.Errorf("alpha = %#x, want opaque background", a)
	}
}

func TestRasterEncodeAndSave(t *testing.T) {
	r := NewRaster(16, 12)
	defer r.Release()
	r.Clear()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("decoded size = %dx%d, want 16x12", b.Dx(), b.Dy())
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(cols, rows)
	return s
}

func TestCellsSize(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	c := NewCells(s, 8, 16)
	defer c.Release()
	if w, h := c.Size(); w != 80 || h != 64 {
		t.Errorf("Size() = %dx%d, want 80x64", w, h)
	}
}

func TestCellsDrawsParticlesAndLinks(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	c := NewCells(s, 8, 16)
	defer c.Release()

	twoParticleField(80, 64, particles.Vec2{X: 4, Y: 4}, particles.Vec2{X: 44, Y: 4}).Render(c)

	for _, x := range []int{0, 5} {
		if r, _, _, _ := s.GetContent(x, 0); r != glyphLarge {
			t.Errorf("cell (%d,0) = %q, want %q", x, r, glyphLarge)
		}
	}
	for x := 1; x < 5; x++ {
		if r, _, _, _ := s.GetContent(x, 0); r != glyphLink {
			t.Errorf("cell (%d,0) = %q, want %q", x, r, glyphLink)
		}
	}
	if r, _, _, _ := s.GetContent(0, 2); r == glyphLink || r == glyphLarge {
		t.Errorf("unexpected glyph %q away from the particles", r)
	}
}

func TestCellsIgnoresOffscreen(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	c := NewCells(s, 8, 16)
	defer c.Release()
	c.Clear()
	c.FillCircle(500, 500, 1, red)
	c.StrokeLine(-40, -40, 500, 500, 1, red)
}

func TestTerminalColorPremultiplies(t *testing.T) {
	got := terminalColor(color.NRGBA{R: 255, G: 100, B: 0, A: 51})
	want := tcell.NewRGBColor(51, 20, 0)
	if got != want {
		t.Errorf("terminalColor() = %v, want %v", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	f := twoParticleField(40, 30, particles.Vec2{X: 5, Y: 5}, particles.Vec2{X: 20, Y: 5})
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := Snapshot(f, 40, 30, color.Black, path); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("size = %dx%d, want 40x30", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(39, 29).RGBA(); a != 0xffff {
		t.Errorf("background alpha = %#x, want opaque", a)
	}
}

func TestSnapshotBadPath(t *testing.T) {
	f := twoParticleField(10, 10, particles.Vec2{}, particles.Vec2{X: 5})
	if err := Snapshot(f, 10, 10, nil, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("Snapshot() into a missing directory succeeded")
	}
}
