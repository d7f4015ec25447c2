package system

import (
	"math"

	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// JumpResult tells which jump, if any, a jump request performed
type JumpResult int

const (
	JumpNone JumpResult = iota
	JumpSingle
	JumpDouble
)

// DamageResult tells how a damage request was resolved
type DamageResult int

const (
	DamageIgnored  DamageResult = iota // invulnerable
	DamageAbsorbed                     // shield consumed
	DamageTaken
)

// AbilitySystem owns the player's timed and toggled modifiers.
// Every timer is a countdown on the player decremented by Tick.
type AbilitySystem struct {
	config *config.Tuning
}

// NewAbilitySystem creates a new ability system
func NewAbilitySystem(cfg *config.Tuning) *AbilitySystem {
	return &AbilitySystem{config: cfg}
}

// MoveSpeed returns the player's current horizontal speed
func (s *AbilitySystem) MoveSpeed(player *entity.Player) float64 {
	speed := s.config.Player.MoveSpeed
	if player.Boosted() {
		speed *= s.config.PowerUps.SpeedMultiplier
	}
	return speed
}

// SetIntent sets horizontal velocity from a held direction (-1, 0, +1)
func (s *AbilitySystem) SetIntent(player *entity.Player, dir int) {
	player.VX = float64(ClampDirection(dir)) * s.MoveSpeed(player)
}

// Jump performs a ground jump, or a double jump while airborne when owned
// and still available
func (s *AbilitySystem) Jump(player *entity.Player) JumpResult {
	if !player.Jumping {
		player.VY = s.config.Player.JumpForce
		player.Jumping = true
		return JumpSingle
	}
	if player.HasDoubleJump && player.DoubleJumpAvailable {
		player.VY = s.config.Player.JumpForce * s.config.Player.DoubleJumpFactor
		player.DoubleJumpAvailable = false
		return JumpDouble
	}
	return JumpNone
}

// ApplyPowerUp applies a power-up effect on pickup
func (s *AbilitySystem) ApplyPowerUp(player *entity.Player, t entity.PowerUpType) {
	switch t {
	case entity.PowerUpSpeed:
		// Refreshing an active boost only extends it
		if !player.Boosted() {
			player.VX *= s.config.PowerUps.SpeedMultiplier
		}
		player.SpeedTicks = s.config.PowerUps.SpeedTicks
	case entity.PowerUpStrength:
		player.StrengthTicks = s.config.PowerUps.StrengthTicks
	case entity.PowerUpDoubleJump:
		player.HasDoubleJump = true
	case entity.PowerUpShield:
		player.HasShield = true
	}
}

// Damage applies a damage instance. The shield is tried first, then
// invulnerability. Health is clamped at zero.
func (s *AbilitySystem) Damage(player *entity.Player, amount int) DamageResult {
	if player.HasShield {
		player.HasShield = false
		return DamageAbsorbed
	}
	if player.Invulnerable() {
		return DamageIgnored
	}

	player.Health -= amount
	if player.Health < 0 {
		player.Health = 0
	}
	player.InvulnTicks = s.config.Player.InvulnTicks
	player.DoubleJumpAvailable = false
	return DamageTaken
}

// Tick advances all countdowns by one tick and returns the power-ups
// that expired on this tick
func (s *AbilitySystem) Tick(player *entity.Player) []entity.PowerUpType {
	var expired []entity.PowerUpType

	if player.InvulnTicks > 0 {
		player.InvulnTicks--
	}
	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}
	if player.SpeedTicks > 0 {
		player.SpeedTicks--
		if player.SpeedTicks == 0 {
			s.restoreSpeed(player)
			expired = append(expired, entity.PowerUpSpeed)
		}
	}
	if player.StrengthTicks > 0 {
		player.StrengthTicks--
		if player.StrengthTicks == 0 {
			expired = append(expired, entity.PowerUpStrength)
		}
	}
	if !player.Jumping {
		player.DoubleJumpAvailable = true
	}

	return expired
}

// restoreSpeed resets the horizontal speed to base in the current direction
func (s *AbilitySystem) restoreSpeed(player *entity.Player) {
	if player.VX == 0 {
		return
	}
	player.VX = math.Copysign(s.config.Player.MoveSpeed, player.VX)
}

// CancelTimed drops every timed effect without waiting for expiry
func (s *AbilitySystem) CancelTimed(player *entity.Player) {
	if player.SpeedTicks > 0 {
		player.SpeedTicks = 0
		s.restoreSpeed(player)
	}
	player.StrengthTicks = 0
	player.InvulnTicks = 0
}

// AttackDirection picks the melee direction: the moving axis first
// (horizontal before vertical), then the last attack, then right.
func (s *AbilitySystem) AttackDirection(player *entity.Player) entity.Direction {
	switch {
	case player.VX > 0:
		return entity.DirRight
	case player.VX < 0:
		return entity.DirLeft
	case player.VY < 0:
		return entity.DirUp
	case player.VY > 0:
		return entity.DirDown
	case player.LastAttack != entity.DirNone:
		return player.LastAttack
	default:
		return entity.DirRight
	}
}

// AttackHitbox builds the melee hitbox extending from the player's edge
func (s *AbilitySystem) AttackHitbox(player *entity.Player, dir entity.Direction) entity.Rect {
	reach := s.config.Attack.Reach
	switch dir {
	case entity.DirLeft:
		return entity.Rect{X: player.X - reach, Y: player.Y, W: reach, H: player.H}
	case entity.DirUp:
		return entity.Rect{X: player.X, Y: player.Y - reach, W: player.W, H: reach}
	case entity.DirDown:
		return entity.Rect{X: player.X, Y: player.Y + player.H, W: player.W, H: reach}
	default:
		return entity.Rect{X: player.X + player.W, Y: player.Y, W: reach, H: player.H}
	}
}

// BeginAttack starts a melee attack unless on cooldown. It records the
// direction and arms the cooldown.
func (s *AbilitySystem) BeginAttack(player *entity.Player) (entity.Direction, entity.Rect, bool) {
	if player.AttackCooldown > 0 {
		return entity.DirNone, entity.Rect{}, false
	}
	dir := s.AttackDirection(player)
	player.LastAttack = dir
	player.AttackCooldown = s.config.Attack.Cooldown
	return dir, s.AttackHitbox(player, dir), true
}
