// Command fieldterm runs the particle backdrop in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/iburimskiy/synth-hero/internal/config"
	"github.com/iburimskiy/synth-hero/internal/frame"
	"github.com/iburimskiy/synth-hero/internal/particles"
	"github.com/iburimskiy/synth-hero/internal/render"
)

func main() {
	count := flag.Int("particles", 60, "number of particles")
	speed := flag.Float64("speed", 20, "velocity multiplier; terminal cells are large")
	fps := flag.Int("fps", config.FrameRate, "frames per second")
	debug := flag.Bool("debug", false, "log to fieldterm.log")
	flag.Parse()

	if err := run(*count, *speed, *fps, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "fieldterm:", err)
		os.Exit(1)
	}
}

func run(count int, speed float64, fps int, debug bool) error {
	if debug {
		f, err := os.Create("fieldterm.log")
		if err != nil {
			return pkgerrors.Wrap(err, "open log")
		}
		defer f.Close()
		frame.SetLogger(config.NewLogger(f, true))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return pkgerrors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return pkgerrors.Wrap(err, "init screen")
	}
	screen.HideCursor()

	cells := render.NewCells(screen, config.CellWidth, config.CellHeight)
	w, h := cells.Size()

	opts := particles.DefaultOptions(w, h)
	opts.Count = count
	opts.Speed *= speed
	// keep lines roughly as long in cells as in the window
	opts.LinkDistance = config.LinkDistance / 2
	field := particles.New(opts)

	sched := frame.NewScheduler()
	handle := particles.Start(sched, field, cells)
	defer handle.Stop()
	sched.Register(func(frame.Frame) { cells.Show() }, nil)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
				field.Resize(cells.Size())
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			}
		}
	}()

	err = sched.Run(ctx, time.Second/time.Duration(max(fps, 1)))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
