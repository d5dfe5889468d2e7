package game

import "github.com/charmbracelet/harmonica"

// follower is one spring-driven value.
type follower struct {
	pos, vel float64
}

// motion eases the pointer-driven parts of the page (parallax, button
// scale) toward their targets once per tick.
type motion struct {
	spring harmonica.Spring

	parallaxX, parallaxY follower
	button               follower
}

func newMotion(fps int, frequency, damping float64) *motion {
	return &motion{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		button: follower{pos: 1},
	}
}

func (m *motion) step(f *follower, target float64) float64 {
	f.pos, f.vel = m.spring.Update(f.pos, f.vel, target)
	return f.pos
}
