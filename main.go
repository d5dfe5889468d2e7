package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/synth-hero/internal/config"
	"github.com/iburimskiy/synth-hero/internal/frame"
	"github.com/iburimskiy/synth-hero/internal/game"
)

func main() {
	count := flag.Int("particles", config.ParticleCount, "number of background particles")
	mute := flag.Bool("mute", false, "disable the synthesis chimes")
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	track := flag.String("track", "", "wav, mp3 or flac file to loop under the chimes")
	flag.Parse()

	log := config.NewLogger(os.Stderr, *debug)
	frame.SetLogger(log)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.Options{
		Particles: *count,
		Mute:      *mute,
		Seed:      *seed,
		Track:     *track,
		Logger:    log,
	})
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("hero exited", "err", err)
		g.Close()
		os.Exit(1)
	}
}
