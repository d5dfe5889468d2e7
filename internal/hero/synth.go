package hero

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/synth-hero/internal/config"
)

// Synthesizer runs the timed synthesis phase behind the button. The page
// opens mid-synthesis; afterwards each click starts a new phase and
// clicks during a phase are ignored.
type Synthesizer struct {
	rng       *rand.Rand
	active    bool
	remaining time.Duration
	idle      time.Duration
	tags      []DataTag
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{
		rng:       rng,
		active:    true,
		remaining: config.InitialSynthesis,
		tags:      DefaultTags(),
	}
}

// Active reports whether a synthesis phase is running.
func (s *Synthesizer) Active() bool { return s.active }

// Remaining returns the time left in the current phase.
func (s *Synthesizer) Remaining() time.Duration {
	if !s.active {
		return 0
	}
	return s.remaining
}

// Idle returns how long the tags have been on display.
func (s *Synthesizer) Idle() time.Duration { return s.idle }

// Tags returns the current data tags.
func (s *Synthesizer) Tags() []DataTag { return s.tags }

// Label is the button caption.
func (s *Synthesizer) Label() string {
	if s.active {
		return "Synthesizing..."
	}
	return "Synthesize"
}

// Hint is the caption above the button.
func (s *Synthesizer) Hint() string {
	if s.active {
		return "Synthesizing..."
	}
	return "Click to synthesize"
}

// Trigger starts a synthesis phase. It returns false while one is running.
func (s *Synthesizer) Trigger() bool {
	if s.active {
		return false
	}
	s.active = true
	s.remaining = config.Synthesis
	return true
}

// Update advances the phase timer and reports whether a phase completed.
func (s *Synthesizer) Update(dt time.Duration) bool {
	if !s.active {
		s.idle += dt
		return false
	}
	s.remaining -= dt
	if s.remaining > 0 {
		return false
	}
	s.active = false
	s.remaining = 0
	s.idle = 0
	s.tags = RandomTags(s.rng)
	return true
}
