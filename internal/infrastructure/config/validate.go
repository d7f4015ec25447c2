package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/skyquest/internal/domain/entity"
)

var (
	// ErrInvalidTuning is returned for out-of-range tuning values
	ErrInvalidTuning = errors.New("config: invalid tuning")
	// ErrInvalidLevels is returned for malformed level recipes
	ErrInvalidLevels = errors.New("config: invalid levels")
)

func tuningErr(field string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidTuning, field, value)
}

func levelsErr(level int, format string, args ...any) error {
	return fmt.Errorf("%w: level %d: %s", ErrInvalidLevels, level, fmt.Sprintf(format, args...))
}

// Validate checks the tuning for values the simulation cannot run with
func (t *Tuning) Validate() error {
	switch {
	case t.World.Width <= 0:
		return tuningErr("world.width", t.World.Width)
	case t.World.Height <= 0:
		return tuningErr("world.height", t.World.Height)
	case t.World.TicksPerSecond <= 0:
		return tuningErr("world.ticksPerSecond", t.World.TicksPerSecond)
	case t.World.PlatformHeight <= 0:
		return tuningErr("world.platformHeight", t.World.PlatformHeight)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return tuningErr("player.size", fmt.Sprintf("%vx%v", t.Player.Width, t.Player.Height))
	case t.Player.MaxHealth <= 0:
		return tuningErr("player.maxHealth", t.Player.MaxHealth)
	case t.Player.JumpForce >= 0:
		return tuningErr("player.jumpForce", t.Player.JumpForce)
	case t.Attack.Cooldown < 0:
		return tuningErr("attack.cooldown", t.Attack.Cooldown)
	case t.Boss.Health <= 0:
		return tuningErr("boss.health", t.Boss.Health)
	case t.Boss.AttackInterval <= 0:
		return tuningErr("boss.attackInterval", t.Boss.AttackInterval)
	case t.Enemies.GroundHealth <= 0 || t.Enemies.FlyingHealth <= 0:
		return tuningErr("enemies.health", fmt.Sprintf("%d/%d", t.Enemies.GroundHealth, t.Enemies.FlyingHealth))
	case len(t.Scoring.LevelTargets) == 0:
		return tuningErr("scoring.levelTargets", "empty")
	case t.Scoring.TransitionDelayTicks < 0:
		return tuningErr("scoring.transitionDelayTicks", t.Scoring.TransitionDelayTicks)
	case t.Particles.Fade <= 0:
		return tuningErr("particles.fade", t.Particles.Fade)
	}

	for i, target := range t.Scoring.LevelTargets {
		if target <= 0 {
			return tuningErr(fmt.Sprintf("scoring.levelTargets[%d]", i), target)
		}
	}
	return nil
}

// Validate checks every recipe for unknown kinds and impossible counts
func (s *LevelSet) Validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidLevels)
	}

	for i, r := range s.Levels {
		level := i + 1
		if r.Coins < 0 || r.Keys < 0 {
			return levelsErr(level, "negative coin or key count")
		}
		bosses := 0
		for _, e := range r.Enemies {
			kind, ok := entity.ParseEnemyKind(e.Kind)
			if !ok {
				return levelsErr(level, "unknown enemy kind %q", e.Kind)
			}
			if kind == entity.EnemyBoss {
				bosses++
			}
		}
		if bosses > 1 {
			return levelsErr(level, "%d bosses, at most one allowed", bosses)
		}
		for _, p := range r.PowerUps {
			if _, ok := entity.ParsePowerUpType(p.Type); !ok {
				return levelsErr(level, "unknown power-up type %q", p.Type)
			}
		}
		for _, p := range r.Platforms {
			if p.Width <= 0 {
				return levelsErr(level, "platform at (%v, %v) has no width", p.X, p.Y)
			}
		}
		for _, p := range r.MovingPlatforms {
			if p.Width <= 0 || p.Speed <= 0 {
				return levelsErr(level, "moving platform at (%v, %v) needs width and speed", p.X, p.Y)
			}
		}
	}
	return nil
}

// Validate checks tuning and levels against each other
func (c *GameConfig) Validate() error {
	if c.Tuning == nil || c.Levels == nil {
		return fmt.Errorf("%w: incomplete config", ErrInvalidTuning)
	}
	if n := len(c.Tuning.Scoring.LevelTargets); n < c.Levels.Count() {
		return fmt.Errorf("%w: %d level targets for %d levels", ErrInvalidTuning, n, c.Levels.Count())
	}
	return nil
}
