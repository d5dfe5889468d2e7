// Command fieldshot renders the particle backdrop offscreen and writes PNG
// frames.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/iburimskiy/synth-hero/internal/config"
	"github.com/iburimskiy/synth-hero/internal/frame"
	"github.com/iburimskiy/synth-hero/internal/particles"
	"github.com/iburimskiy/synth-hero/internal/render"
)

type options struct {
	width, height int
	count         int
	steps         int
	frames        int
	every         int
	seed          uint64
	out           string
	opaque        bool
}

func main() {
	var o options
	flag.IntVar(&o.width, "w", config.WindowWidth, "surface width")
	flag.IntVar(&o.height, "h", config.WindowHeight, "surface height")
	flag.IntVar(&o.count, "n", config.ParticleCount, "number of particles")
	flag.IntVar(&o.steps, "steps", 0, "frames to simulate before the first capture")
	flag.IntVar(&o.frames, "frames", 1, "number of captures")
	flag.IntVar(&o.every, "every", 1, "frames between captures")
	flag.Uint64Var(&o.seed, "seed", 1, "random seed")
	flag.StringVar(&o.out, "out", "particles.png", "output file, - for stdout; sequences get a _NNN suffix")
	flag.BoolVar(&o.opaque, "opaque", true, "paint the hero background instead of transparency")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := config.NewLogger(os.Stderr, *debug)
	frame.SetLogger(log)

	paths, err := run(o, os.Stdout)
	if err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

// run renders the captures and returns the files written. With out set to
// "-" the single capture is encoded to stdout instead.
func run(o options, stdout io.Writer) ([]string, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, errors.Errorf("invalid surface size %dx%d", o.width, o.height)
	}
	if o.frames < 1 || o.every < 1 || o.steps < 0 {
		return nil, errors.New("frames and every must be positive, steps non-negative")
	}
	if o.out == "-" && o.frames > 1 {
		return nil, errors.New("a frame sequence cannot be written to stdout")
	}

	opts := particles.DefaultOptions(o.width, o.height)
	opts.Count = o.count
	opts.Rand = rand.New(rand.NewPCG(o.seed, o.seed))
	field := particles.New(opts)

	raster := render.NewRaster(o.width, o.height)
	if o.opaque {
		raster.SetBackground(color.NRGBA{A: 255})
	}
	sched := frame.NewScheduler()
	handle := particles.Start(sched, field, raster)
	defer handle.Stop()

	for i := 0; i < o.steps; i++ {
		sched.Tick()
	}

	var paths []string
	for n := 0; n < o.frames; n++ {
		for i := 0; i < o.every; i++ {
			sched.Tick()
		}
		if err := raster.Err(); err != nil {
			return paths, err
		}
		if o.out == "-" {
			return nil, raster.EncodePNG(stdout)
		}
		path := framePath(o.out, n, o.frames)
		if err := raster.SavePNG(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// framePath returns out for a single capture and out_NNN otherwise.
func framePath(out string, n, total int) string {
	if total == 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(out, ext), n, ext)
}
