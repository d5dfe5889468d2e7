package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Synthesize - Space: toggle particles, S: export frame, O: soundtrack, Esc/Q: quit"

	// Frame rate of the ticker-driven hosts. The ebiten host runs at its TPS.
	FrameRate = 60

	// Particle field
	ParticleCount     = 150
	ParticleSpeed     = 0.1 // velocity components in [-speed, speed)
	ParticleMinRadius = 0.5
	ParticleMaxRadius = 2.5
	LinkDistance      = 100
	LinkAlpha         = 0.3
	LinkWidth         = 0.5
	BackgroundOpacity = 0.6

	// Terminal cell size in field pixels
	CellWidth  = 8
	CellHeight = 16

	// Background grid spacing
	GridSpacing = 80

	// Synthesize button dimensions
	ButtonWidth  = 160
	ButtonHeight = 44

	// Status readout
	VisualRingSize  = 4096
	SmoothingFactor = 0.6
	ChimeFrequency  = 660
	ChimeDuration   = 600 * time.Millisecond
	AudioSampleRate = 44100

	// Navigation collapses into a toggle below this width
	MobileBreakpoint = 768
)

// Timings of the hero page.
const (
	LoadDelay         = 500 * time.Millisecond
	InitialSynthesis  = 10 * time.Second
	Synthesis         = 25360 * time.Millisecond
	ReadoutLeadIn     = 500 * time.Millisecond
	ReadoutCharDelay  = 60 * time.Millisecond
	ReadoutPause      = 800 * time.Millisecond
	CursorBlinkPeriod = 800 * time.Millisecond
	HeadlineDelay     = 800 * time.Millisecond
	HeadlineStagger   = 50 * time.Millisecond
	HeadlineFade      = 200 * time.Millisecond
	AccentDelay       = 1400 * time.Millisecond
	AccentFade        = 400 * time.Millisecond
	ProjectTitleFade  = 800 * time.Millisecond
	TagAppearDuration = 500 * time.Millisecond
	ButtonPulsePeriod = 2 * time.Second
	ButtonDelay       = 1800 * time.Millisecond
	ButtonFade        = 400 * time.Millisecond
	ButtonBobPeriod   = 3 * time.Second
)

// Palette holds the particle colours as hex strings; alpha is ParticleAlpha.
var Palette = []string{"#0064ff", "#00ff96", "#9600ff"}

const ParticleAlpha = 0.8

var HeadlineLines = []string{"WHAT", "IF", "YOUR", "NEXT", "NIKE", "WASN'T", "DESIGNED", "—", "BUT"}

var HeadlineAccent = []string{"SYNTHE", "SIZED?"}

var ProjectTitle = []string{"PROJECT", "CHIMERA"}

var StatusMessages = []string{
	"> Analyzing mesh integrity...",
	"> AI Confidence recalculating...",
	"> Synthesis queue initialized...",
	"> Material properties optimized",
	"> Checking structural stability...",
	"> Neural network analysis complete",
}

var NavItems = []string{"Home", "Features", "Gallery", "About"}

const NavCallToAction = "Synthesize"
