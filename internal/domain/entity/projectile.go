package entity

import "math"

// Projectile represents a boss projectile.
// X, Y is the center; it travels at constant velocity.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage int
	Spent  bool
}

// NewProjectile creates a projectile moving with the given velocity
func NewProjectile(x, y, vx, vy, radius float64, damage int) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
		Damage: damage,
	}
}

// NewAimedProjectile creates a projectile from (x, y) toward (targetX, targetY)
// at the given speed
func NewAimedProjectile(x, y, targetX, targetY, speed, radius float64, damage int) *Projectile {
	angle := math.Atan2(targetY-y, targetX-x)
	return NewProjectile(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, radius, damage)
}

// Update moves the projectile by one tick
func (p *Projectile) Update() {
	p.X += p.VX
	p.Y += p.VY
}

// Offscreen returns true once the projectile has left the world
func (p *Projectile) Offscreen(worldW, worldH float64) bool {
	return p.X < 0 || p.X > worldW || p.Y < 0 || p.Y > worldH
}

// Bounds returns the square enclosing the projectile
func (p *Projectile) Bounds() Rect {
	return Rect{X: p.X - p.Radius, Y: p.Y - p.Radius, W: p.Radius * 2, H: p.Radius * 2}
}

// Rotation returns the heading angle (for rendering)
func (p *Projectile) Rotation() float64 {
	return math.Atan2(p.VY, p.VX)
}
