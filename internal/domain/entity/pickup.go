package entity

import "math"

// PickupKind tags a collectible
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupKey
	PickupPowerUp
)

// Pickup is a passive collectible (coin, key or power-up).
// Collected is one-shot and never reverts.
type Pickup struct {
	ID   EntityID
	Kind PickupKind
	Rect

	// PowerUp is only meaningful for PickupPowerUp
	PowerUp PowerUpType

	Collected bool
}

// NewCoin creates a coin
func NewCoin(id EntityID, x, y, size float64) *Pickup {
	return &Pickup{ID: id, Kind: PickupCoin, Rect: Rect{X: x, Y: y, W: size, H: size}}
}

// NewKey creates a key
func NewKey(id EntityID, x, y, w, h float64) *Pickup {
	return &Pickup{ID: id, Kind: PickupKey, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// NewPowerUp creates a power-up of the given type
func NewPowerUp(id EntityID, x, y, size float64, t PowerUpType) *Pickup {
	return &Pickup{ID: id, Kind: PickupPowerUp, Rect: Rect{X: x, Y: y, W: size, H: size}, PowerUp: t}
}

// Bounds returns the collision rectangle (the float offset is not applied)
func (p *Pickup) Bounds() Rect {
	return p.Rect
}

// Collect marks the pickup collected. Returns false if it already was.
func (p *Pickup) Collect() bool {
	if p.Collected {
		return false
	}
	p.Collected = true
	return true
}

// FloatOffset returns the cosmetic vertical bob for keys and power-ups
func (p *Pickup) FloatOffset(elapsedMs float64) float64 {
	if p.Kind == PickupCoin {
		return 0
	}
	return math.Sin(elapsedMs/500) * 5
}
