package hero

import (
	"time"

	"github.com/iburimskiy/synth-hero/internal/config"
)

type readoutPhase int

const (
	phaseLeadIn readoutPhase = iota
	phaseTyping
	phasePause
)

const (
	readoutShowDelay = 2 * time.Second
	readoutFadeIn    = 500 * time.Millisecond
)

// Readout types AI status messages one character at a time while a
// synthesis is running.
type Readout struct {
	messages []string
	active   bool

	index   int
	phase   readoutPhase
	inPhase time.Duration
	shown   int
	since   time.Duration
}

func NewReadout(messages []string) *Readout {
	if len(messages) == 0 {
		messages = config.StatusMessages
	}
	return &Readout{messages: messages}
}

// SetActive starts or stops the readout. Stopping clears the text but keeps
// the message index, so the next activation resumes where it left off.
func (r *Readout) SetActive(active bool) {
	if r.active == active {
		return
	}
	r.active = active
	r.phase = phaseLeadIn
	r.inPhase = 0
	r.shown = 0
	r.since = 0
}

func (r *Readout) Active() bool { return r.active }

// Index returns the index of the message being typed.
func (r *Readout) Index() int { return r.index }

func (r *Readout) Update(dt time.Duration) {
	if !r.active {
		return
	}
	r.since += dt
	r.inPhase += dt

	for {
		switch r.phase {
		case phaseLeadIn:
			if r.inPhase < config.ReadoutLeadIn {
				return
			}
			r.inPhase -= config.ReadoutLeadIn
			r.shown = 0
			r.phase = phaseTyping
		case phaseTyping:
			msg := []rune(r.messages[r.index])
			r.shown = min(int(r.inPhase/config.ReadoutCharDelay), len(msg))
			if r.shown < len(msg) {
				return
			}
			r.inPhase -= time.Duration(len(msg)) * config.ReadoutCharDelay
			r.phase = phasePause
		case phasePause:
			if r.inPhase < config.ReadoutPause {
				return
			}
			r.inPhase -= config.ReadoutPause
			r.index = (r.index + 1) % len(r.messages)
			r.shown = 0
			r.phase = phaseLeadIn
		}
	}
}

// Text returns the typed part of the current message.
func (r *Readout) Text() string {
	if !r.active || r.phase == phaseLeadIn {
		return ""
	}
	return string([]rune(r.messages[r.index])[:r.shown])
}

// Typing reports whether characters are still being typed.
func (r *Readout) Typing() bool {
	return r.active && r.phase == phaseTyping
}

// CursorVisible reports whether the block cursor is drawn this frame.
func (r *Readout) CursorVisible() bool {
	if !r.Typing() {
		return false
	}
	return r.since%config.CursorBlinkPeriod < config.CursorBlinkPeriod/2
}

// Alpha is the fade-in opacity of the readout after activation.
func (r *Readout) Alpha() float64 {
	if !r.active {
		return 0
	}
	return clamp01(float64(r.since-readoutShowDelay) / float64(readoutFadeIn))
}
