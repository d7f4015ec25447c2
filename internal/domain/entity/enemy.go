package entity

// Enemy represents an enemy entity.
// The Kind tag selects the per-tick behaviour; variant-only fields
// are zero for kinds that do not use them.
type Enemy struct {
	ID   EntityID
	Kind EnemyKind
	Body

	Health  int
	Removed bool

	// Flying: vertical baseline of the sinusoid
	BaseY float64

	// Boss: attack timer (ticks) and owned projectiles
	AttackTimer int
	Projectiles []*Projectile
}

// NewEnemy creates an enemy of the given kind
func NewEnemy(id EntityID, kind EnemyKind, x, y, size float64, health int, vx float64) *Enemy {
	return &Enemy{
		ID:     id,
		Kind:   kind,
		Body:   Body{X: x, Y: y, W: size, H: size, VX: vx},
		Health: health,
		BaseY:  y,
	}
}

// TakeDamage applies damage to the enemy, returns true if dead
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive and in the world
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && !e.Removed
}

// IsBoss returns true for the boss variant
func (e *Enemy) IsBoss() bool {
	return e.Kind == EnemyBoss
}

// StompedBy reports whether a player body overlapping this enemy
// lands on it: moving downward with its lower edge in the enemy's upper half.
func (e *Enemy) StompedBy(p *Body) bool {
	return p.VY > 0 && p.Y+p.H <= e.Y+e.H/2
}
