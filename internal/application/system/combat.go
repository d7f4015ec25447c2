package system

import (
	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// ContactResult is the outcome of a player touching an enemy
type ContactResult int

const (
	ContactNone ContactResult = iota
	ContactStomp
	ContactHurt
)

// CombatSystem resolves player-versus-enemy interactions
type CombatSystem struct {
	config *config.Tuning
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.Tuning) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// ResolveContact classifies an overlap as a stomp or a hurt. A stomp
// bounces the player upward; damage is left to the caller.
func (s *CombatSystem) ResolveContact(player *entity.Player, enemy *entity.Enemy) ContactResult {
	if !enemy.IsAlive() || !entity.Overlaps(player.Bounds(), enemy.Bounds()) {
		return ContactNone
	}
	if enemy.StompedBy(&player.Body) {
		player.VY = s.config.Player.JumpForce * s.config.Enemies.StompBounce
		return ContactStomp
	}
	return ContactHurt
}

// MeleeTargets returns the living enemies inside the hitbox, in list order
func (s *CombatSystem) MeleeTargets(hitbox entity.Rect, enemies []*entity.Enemy) []*entity.Enemy {
	var targets []*entity.Enemy
	for _, e := range enemies {
		if e.IsAlive() && entity.Overlaps(hitbox, e.Bounds()) {
			targets = append(targets, e)
		}
	}
	return targets
}

// ResolveProjectiles consumes the boss projectiles touching the player and
// returns them. Nothing is consumed when projectile damage is disabled.
func (s *CombatSystem) ResolveProjectiles(player *entity.Player, boss *entity.Enemy) []*entity.Projectile {
	if s.config.Boss.ProjectileDamage <= 0 || len(boss.Projectiles) == 0 {
		return nil
	}

	var hits []*entity.Projectile
	kept := boss.Projectiles[:0]
	for _, proj := range boss.Projectiles {
		if entity.Overlaps(player.Bounds(), proj.Bounds()) {
			proj.Spent = true
			hits = append(hits, proj)
			continue
		}
		kept = append(kept, proj)
	}
	boss.Projectiles = kept
	return hits
}

// KillReward returns the score for defeating an enemy of the given kind
func (s *CombatSystem) KillReward(kind entity.EnemyKind) int {
	switch kind {
	case entity.EnemyBoss:
		return s.config.Scoring.Boss
	case entity.EnemyFlying:
		return s.config.Scoring.Flying
	default:
		return s.config.Scoring.Ground
	}
}
