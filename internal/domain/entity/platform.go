package entity

import "math"

// Platform is a solid rectangle the player can land on.
// Moving platforms oscillate horizontally around StartX.
type Platform struct {
	Rect

	Moving bool
	StartX float64
	Range  float64
	Speed  float64
	Dir    float64 // +1 or -1

	// DeltaX is the displacement of the last Advance call
	DeltaX float64
}

// NewPlatform creates a static platform
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// NewMovingPlatform creates a platform that oscillates within range of x
func NewMovingPlatform(x, y, w, h, rng, speed float64) *Platform {
	return &Platform{
		Rect:   Rect{X: x, Y: y, W: w, H: h},
		Moving: true,
		StartX: x,
		Range:  rng,
		Speed:  speed,
		Dir:    1,
	}
}

// Bounds returns the platform rectangle
func (p *Platform) Bounds() Rect {
	return p.Rect
}

// Advance moves a moving platform by one tick and flips direction once it
// has travelled past its range. Returns the applied delta.
func (p *Platform) Advance() float64 {
	if !p.Moving {
		p.DeltaX = 0
		return 0
	}
	p.DeltaX = p.Speed * p.Dir
	p.X += p.DeltaX
	if math.Abs(p.X-p.StartX) > p.Range {
		p.Dir = -p.Dir
	}
	return p.DeltaX
}
