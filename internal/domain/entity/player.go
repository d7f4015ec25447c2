package entity

// Player represents the player entity.
// Ability state is a flat set of flags and countdowns rather than
// a state machine; each field has its own activation and expiry rule.
type Player struct {
	Body

	// Jumping is set by a jump and cleared on landing
	Jumping bool

	Health    int
	MaxHealth int

	// Countdowns (ticks)
	InvulnTicks    int // post-hit window
	StrengthTicks  int // strength power-up
	SpeedTicks     int // speed power-up
	AttackCooldown int

	// Abilities
	HasDoubleJump       bool
	DoubleJumpAvailable bool
	HasShield           bool

	// LastAttack is the last melee direction (DirNone before the first attack)
	LastAttack Direction
}

// NewPlayer creates a player at the given position with full health
func NewPlayer(x, y, w, h float64, maxHealth int) *Player {
	return &Player{
		Body:      Body{X: x, Y: y, W: w, H: h},
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Invulnerable returns true while either the post-hit window
// or the strength power-up is active
func (p *Player) Invulnerable() bool {
	return p.InvulnTicks > 0 || p.StrengthTicks > 0
}

// Boosted returns true while the speed power-up is active
func (p *Player) Boosted() bool {
	return p.SpeedTicks > 0
}

// Alive returns true if health > 0
func (p *Player) Alive() bool {
	return p.Health > 0
}

// HealthTier buckets health for rendering (>70 high, >30 mid)
func (p *Player) HealthTier() HealthTier {
	switch {
	case p.Health > 70:
		return TierHigh
	case p.Health > 30:
		return TierMid
	default:
		return TierLow
	}
}

// Respawn moves the player to a spawn point with zero velocity
func (p *Player) Respawn(x, y float64) {
	p.SetPos(x, y)
	p.Jumping = false
}
