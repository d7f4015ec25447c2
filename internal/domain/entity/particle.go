package entity

import "image/color"

// Particle is a cosmetic fading square
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Alpha  float64
}

// Age advances the particle by one tick. Returns false once it has faded out.
func (p *Particle) Age(gravity, fade float64) bool {
	p.VY += gravity
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= fade
	return p.Alpha > 0
}
