package game

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// chimes plays short synthesized tones through a mixer that never ends,
// so the tap sees silence between chimes.
type chimes struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
	tap   *visualTap
	glow  float64
	log   *slog.Logger

	// looping soundtrack under the chimes, optional
	track     beep.StreamSeekCloser
	trackCtrl *beep.Ctrl
}

func newChimes(log *slog.Logger) (*chimes, error) {
	sr := beep.SampleRate(config.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	c := &chimes{
		sr:    sr,
		mixer: &beep.Mixer{},
		log:   log,
	}
	c.tap = newVisualTap(c.mixer, config.VisualRingSize)
	speaker.Play(c.tap)
	log.Debug("audio ready", "sample_rate", int(sr))
	return c, nil
}

// play queues a decaying sine at freq Hz.
func (c *chimes) play(freq float64) {
	if c == nil {
		return
	}
	n := c.sr.N(config.ChimeDuration)
	vol := &effects.Volume{
		Streamer: beep.Take(n, tone(c.sr, freq, config.ChimeDuration)),
		Base:     2,
		Volume:   -2,
	}
	speaker.Lock()
	c.mixer.Add(vol)
	speaker.Unlock()
}

// level returns the smoothed chime loudness in [0,1].
func (c *chimes) level() float64 {
	if c == nil {
		return 0
	}
	rms := c.tap.level(c.sr.N(time.Second / 30))
	c.glow = config.SmoothingFactor*c.glow + (1-config.SmoothingFactor)*math.Pow(rms, 0.3)
	return clamp01(c.glow)
}

// loadTrack decodes a wav, mp3 or flac file and loops it quietly under the
// chimes, replacing any previous track.
func (c *chimes) loadTrack(path string) error {
	if c == nil {
		return errors.New("audio is muted")
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open track")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return errors.Errorf("unsupported track format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "decode %s", filepath.Base(path))
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != c.sr {
		s = beep.Resample(4, format.SampleRate, c.sr, s)
	}
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{Streamer: s, Base: 2, Volume: -3}}

	c.stopTrack()
	speaker.Lock()
	c.track = streamer
	c.trackCtrl = ctrl
	c.mixer.Add(ctrl)
	speaker.Unlock()
	c.log.Info("soundtrack loaded", "file", filepath.Base(path),
		"sample_rate", int(format.SampleRate), "length", formatDuration(format.SampleRate.D(streamer.Len())))
	return nil
}

// toggleTrack pauses or resumes the soundtrack and reports whether it is
// now playing.
func (c *chimes) toggleTrack() bool {
	if c == nil || c.trackCtrl == nil {
		return false
	}
	speaker.Lock()
	c.trackCtrl.Paused = !c.trackCtrl.Paused
	playing := !c.trackCtrl.Paused
	speaker.Unlock()
	return playing
}

func (c *chimes) stopTrack() {
	if c.trackCtrl == nil {
		return
	}
	speaker.Lock()
	// a nil Streamer makes the mixer drop the ctrl on its next pass
	c.trackCtrl.Streamer = nil
	c.track.Close()
	c.track = nil
	c.trackCtrl = nil
	speaker.Unlock()
}

func (c *chimes) close() {
	if c == nil {
		return
	}
	c.stopTrack()
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// tone is a sine with an exponential decay over d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	tau := d.Seconds() / 5
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			v := math.Sin(step*float64(pos)) * math.Exp(-t/tau)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
