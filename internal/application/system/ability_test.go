package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyquest/internal/domain/entity"
)

func TestAbilitySystem_SpeedBoostAndExpiry(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.VX = -5

	ability.ApplyPowerUp(player, entity.PowerUpSpeed)
	assert.Equal(t, -7.5, player.VX)
	assert.True(t, player.Boosted())

	var expired []entity.PowerUpType
	for i := 0; i < 300; i++ {
		expired = append(expired, ability.Tick(player)...)
	}

	assert.Equal(t, []entity.PowerUpType{entity.PowerUpSpeed}, expired)
	assert.Equal(t, -5.0, player.VX, "magnitude reset, sign kept")
	assert.False(t, player.Boosted())
}

func TestAbilitySystem_SpeedExpiryFollowsCurrentDirection(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.VX = 5

	ability.ApplyPowerUp(player, entity.PowerUpSpeed)
	ability.SetIntent(player, -1)
	assert.Equal(t, -7.5, player.VX, "boost applies to new intent")

	for i := 0; i < 300; i++ {
		ability.Tick(player)
	}
	assert.Equal(t, -5.0, player.VX)
}

func TestAbilitySystem_SpeedRefreshDoesNotStack(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.VX = 5

	ability.ApplyPowerUp(player, entity.PowerUpSpeed)
	ability.Tick(player)
	ability.ApplyPowerUp(player, entity.PowerUpSpeed)

	assert.Equal(t, 7.5, player.VX)
	assert.Equal(t, 300, player.SpeedTicks)
}

func TestAbilitySystem_StrengthBlocksDamage(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()

	ability.ApplyPowerUp(player, entity.PowerUpStrength)
	assert.Equal(t, DamageIgnored, ability.Damage(player, 20))
	assert.Equal(t, 100, player.Health)

	var expired []entity.PowerUpType
	for i := 0; i < 180; i++ {
		expired = append(expired, ability.Tick(player)...)
	}
	assert.Equal(t, []entity.PowerUpType{entity.PowerUpStrength}, expired)
	assert.False(t, player.Invulnerable())

	assert.Equal(t, DamageTaken, ability.Damage(player, 20))
	assert.Equal(t, 80, player.Health)
}

func TestAbilitySystem_ShieldAbsorbsExactlyOneHit(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()

	ability.ApplyPowerUp(player, entity.PowerUpShield)
	require.True(t, player.HasShield)

	assert.Equal(t, DamageAbsorbed, ability.Damage(player, 20))
	assert.False(t, player.HasShield)
	assert.Equal(t, 100, player.Health)
	assert.False(t, player.Invulnerable(), "absorbing does not start the hit window")

	assert.Equal(t, DamageTaken, ability.Damage(player, 20))
	assert.Equal(t, 80, player.Health)
}

func TestAbilitySystem_ShieldCheckedBeforeInvulnerability(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.InvulnTicks = 30
	player.HasShield = true

	assert.Equal(t, DamageAbsorbed, ability.Damage(player, 20))
	assert.False(t, player.HasShield)
}

func TestAbilitySystem_InvulnerabilityWindow(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.HasDoubleJump = true
	player.DoubleJumpAvailable = true

	assert.Equal(t, DamageTaken, ability.Damage(player, 20))
	assert.Equal(t, 80, player.Health)
	assert.Equal(t, 60, player.InvulnTicks)
	assert.False(t, player.DoubleJumpAvailable, "hit resets double jump availability")
	assert.True(t, player.HasDoubleJump, "ability itself is kept")

	for i := 0; i < 59; i++ {
		ability.Tick(player)
		assert.Equal(t, DamageIgnored, ability.Damage(player, 20))
	}
	ability.Tick(player)
	assert.False(t, player.Invulnerable())
	assert.Equal(t, DamageTaken, ability.Damage(player, 20))
	assert.Equal(t, 60, player.Health)
}

func TestAbilitySystem_HealthClampsAtZero(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.Health = 10

	ability.Damage(player, 20)

	assert.Equal(t, 0, player.Health)
	assert.False(t, player.Alive())
}

func TestAbilitySystem_DoubleJump(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()

	// Grounded tick refreshes availability
	ability.Tick(player)
	assert.True(t, player.DoubleJumpAvailable)

	assert.Equal(t, JumpSingle, ability.Jump(player))
	assert.True(t, player.Jumping)
	assert.Equal(t, -12.0, player.VY)

	assert.Equal(t, JumpNone, ability.Jump(player), "double jump not owned")

	player.HasDoubleJump = true
	assert.Equal(t, JumpDouble, ability.Jump(player))
	assert.InDelta(t, -9.6, player.VY, 1e-9)
	assert.False(t, player.DoubleJumpAvailable)

	assert.Equal(t, JumpNone, ability.Jump(player), "consumed for this excursion")

	ability.Tick(player)
	assert.False(t, player.DoubleJumpAvailable, "still airborne")

	player.Jumping = false // landed
	ability.Tick(player)
	assert.True(t, player.DoubleJumpAvailable)
}

func TestAbilitySystem_SetIntent(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()

	ability.SetIntent(player, 1)
	assert.Equal(t, 5.0, player.VX)
	ability.SetIntent(player, -3)
	assert.Equal(t, -5.0, player.VX)
	ability.SetIntent(player, 0)
	assert.Zero(t, player.VX)
}

func TestAbilitySystem_CancelTimed(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.VX = 5
	player.HasShield = true
	player.HasDoubleJump = true

	ability.ApplyPowerUp(player, entity.PowerUpSpeed)
	ability.ApplyPowerUp(player, entity.PowerUpStrength)
	ability.CancelTimed(player)

	assert.Equal(t, 5.0, player.VX)
	assert.Zero(t, player.SpeedTicks)
	assert.Zero(t, player.StrengthTicks)
	assert.False(t, player.Invulnerable())
	assert.True(t, player.HasShield)
	assert.True(t, player.HasDoubleJump)

	assert.Empty(t, ability.Tick(player), "cancelled effects never expire later")
}

func TestAbilitySystem_AttackDirection(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float64
		last   entity.Direction
		want   entity.Direction
	}{
		{"moving right", 5, 0, entity.DirNone, entity.DirRight},
		{"moving left", -5, 0, entity.DirRight, entity.DirLeft},
		{"horizontal wins over vertical", 5, -3, entity.DirNone, entity.DirRight},
		{"rising", 0, -3, entity.DirNone, entity.DirUp},
		{"falling", 0, 3, entity.DirNone, entity.DirDown},
		{"still uses last", 0, 0, entity.DirLeft, entity.DirLeft},
		{"still defaults right", 0, 0, entity.DirNone, entity.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ability := NewAbilitySystem(createTestTuning())
			player := createTestPlayer()
			player.VX, player.VY, player.LastAttack = tt.vx, tt.vy, tt.last

			assert.Equal(t, tt.want, ability.AttackDirection(player))
		})
	}
}

func TestAbilitySystem_AttackHitbox(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer() // (200, 300) 40x40

	tests := []struct {
		dir  entity.Direction
		want entity.Rect
	}{
		{entity.DirRight, entity.Rect{X: 240, Y: 300, W: 60, H: 40}},
		{entity.DirLeft, entity.Rect{X: 140, Y: 300, W: 60, H: 40}},
		{entity.DirUp, entity.Rect{X: 200, Y: 240, W: 40, H: 60}},
		{entity.DirDown, entity.Rect{X: 200, Y: 340, W: 40, H: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ability.AttackHitbox(player, tt.dir))
		})
	}
}

func TestAbilitySystem_BeginAttackCooldown(t *testing.T) {
	ability := NewAbilitySystem(createTestTuning())
	player := createTestPlayer()
	player.VX = -5

	dir, _, ok := ability.BeginAttack(player)
	require.True(t, ok)
	assert.Equal(t, entity.DirLeft, dir)
	assert.Equal(t, entity.DirLeft, player.LastAttack)
	assert.Equal(t, 20, player.AttackCooldown)

	for i := 0; i < 19; i++ {
		ability.Tick(player)
		_, _, ok = ability.BeginAttack(player)
		assert.False(t, ok, "on cooldown")
	}

	ability.Tick(player)
	_, _, ok = ability.BeginAttack(player)
	assert.True(t, ok)
}
