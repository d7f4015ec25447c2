package entity

// Rect is an axis-aligned rectangle in world coordinates.
// The world origin is the top-left corner, Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether a and b intersect with strictly positive
// overlap on both axes. Touching edges do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Bounded is anything with a collision rectangle
type Bounded interface {
	Bounds() Rect
}

// Collides runs the AABB test on two bounded entities
func Collides(a, b Bounded) bool {
	return Overlaps(a.Bounds(), b.Bounds())
}

// Body represents the physical body of an entity.
// Velocity is expressed in world units per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Bounds returns the body's collision rectangle
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Integrate advances the position by one tick of velocity
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Bottom returns the y-coordinate of the body's lower edge
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the body's center point
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// SetPos places the body and clears its velocity
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
}
