package entity

// EntityID is a unique identifier for an entity (never recycled within a run)
type EntityID uint32

// Direction is a cardinal direction used by melee attacks
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirUp
	DirDown
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// PowerUpType tags the effect a power-up applies on pickup
type PowerUpType int

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpStrength
	PowerUpDoubleJump
	PowerUpShield
)

var powerUpNames = map[PowerUpType]string{
	PowerUpSpeed:      "speed",
	PowerUpStrength:   "strength",
	PowerUpDoubleJump: "doubleJump",
	PowerUpShield:     "shield",
}

// String returns the power-up name as used in level files
func (t PowerUpType) String() string {
	if name, ok := powerUpNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParsePowerUpType converts a level-file name into a PowerUpType
func ParsePowerUpType(s string) (PowerUpType, bool) {
	for t, name := range powerUpNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Timed reports whether the effect expires on its own
func (t PowerUpType) Timed() bool {
	return t == PowerUpSpeed || t == PowerUpStrength
}

// EnemyKind selects an enemy's behaviour variant
type EnemyKind int

const (
	EnemyGround EnemyKind = iota
	EnemyFlying
	EnemyBoss
)

// String returns the enemy kind name as used in level files
func (k EnemyKind) String() string {
	switch k {
	case EnemyGround:
		return "ground"
	case EnemyFlying:
		return "flying"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a level-file name into an EnemyKind
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case "ground":
		return EnemyGround, true
	case "flying":
		return EnemyFlying, true
	case "boss":
		return EnemyBoss, true
	}
	return 0, false
}

// HealthTier is a coarse health bucket for rendering
type HealthTier int

const (
	TierLow HealthTier = iota
	TierMid
	TierHigh
)
