package game

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	pkgerrors "github.com/pkg/errors"

	"github.com/iburimskiy/synth-hero/internal/render"
)

// exportFrame asks for a destination and writes the current particle frame
// there as a PNG. Cancelling the dialog is not an error.
func (g *Game) exportFrame() error {
	if g.field == nil {
		return nil
	}
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export particle frame"),
		zenity.Filename("particles.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return pkgerrors.Wrap(err, "save dialog")
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}

	if err := render.Snapshot(g.field, g.width, g.height, backgroundTop, filename); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Export failed"), zenity.ErrorIcon)
		return err
	}
	g.log.Info("exported particle frame", "path", filename)
	return nil
}

// openTrack asks for an audio file and loops it under the chimes.
func (g *Game) openTrack() error {
	if g.audio == nil {
		return nil
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio files",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return pkgerrors.Wrap(err, "open dialog")
	}
	return g.audio.loadTrack(filename)
}
