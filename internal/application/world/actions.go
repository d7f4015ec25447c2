package world

import (
	"github.com/younwookim/skyquest/internal/application/progress"
	"github.com/younwookim/skyquest/internal/application/system"
	"github.com/younwookim/skyquest/internal/domain/entity"
)

// SetHorizontalIntent sets the held direction (-1, 0, +1)
func (w *World) SetHorizontalIntent(dir int) {
	if w.Terminal() {
		return
	}
	w.intent = system.ClampDirection(dir)
	w.ability.SetIntent(w.player, w.intent)
}

// Jump performs a jump or double jump. It returns false when no jump
// was available.
func (w *World) Jump() bool {
	if w.Terminal() {
		return false
	}

	px, _ := w.player.Center()
	feet := w.player.Bottom()
	switch w.ability.Jump(w.player) {
	case system.JumpSingle:
		w.particles.Burst(px, feet, 5, system.ColorWhite)
		return true
	case system.JumpDouble:
		w.particles.Burst(px, feet, 10, system.ColorYellow)
		return true
	default:
		return false
	}
}

// Attack performs a melee attack. It returns false while on cooldown.
func (w *World) Attack() bool {
	if w.Terminal() {
		return false
	}

	_, hitbox, ok := w.ability.BeginAttack(w.player)
	if !ok {
		return false
	}

	cfg := w.config.Attack
	for _, e := range w.combat.MeleeTargets(hitbox, w.enemies) {
		cx, cy := e.Center()
		if e.IsBoss() {
			w.particles.Burst(cx, cy, 15, system.ColorRed)
			w.hitEnemy(e, cfg.BossDamage)
		} else {
			e.VX = -e.VX
			w.particles.Burst(cx, cy, 10, system.ColorRed)
			w.hitEnemy(e, cfg.Damage)
		}
		if w.Terminal() {
			return true
		}
	}

	for i := 0; i < cfg.Sweeps; i++ {
		x := hitbox.X + w.rng.Float64()*hitbox.W
		y := hitbox.Y + w.rng.Float64()*hitbox.H
		w.particles.Burst(x, y, 3, system.ColorWhite)
	}

	w.compactEnemies()
	if !w.stepping && w.progress.Due() {
		w.advance()
	}
	return true
}

// hitEnemy damages an enemy and resolves its defeat. Boss damage is
// mirrored into the shared boss health scalar.
func (w *World) hitEnemy(e *entity.Enemy, damage int) {
	if w.Terminal() || !e.IsAlive() {
		return
	}

	dead := e.TakeDamage(damage)
	if e.IsBoss() {
		dead = w.progress.DamageBoss(damage) <= 0
	}
	if !dead {
		return
	}

	e.Removed = true
	w.logger.Debug("enemy defeated", "id", e.ID, "kind", e.Kind)

	reward := w.combat.KillReward(e.Kind)
	if e.IsBoss() {
		w.unlock(progress.BossSlayer)
		w.award(reward)
		w.beginTransition(progress.ReasonBoss, 0)
		return
	}
	w.addScore(reward)
}

// hurt applies damage to the player through the shield and
// invulnerability rules
func (w *World) hurt(amount int) {
	if w.Terminal() || amount <= 0 {
		return
	}

	px, py := w.player.Center()
	switch w.ability.Damage(w.player, amount) {
	case system.DamageAbsorbed:
		w.particles.Burst(px, py, 15, system.ColorBlue)
	case system.DamageTaken:
		w.particles.Burst(px, py, 10, system.ColorRed)
		w.events.Push(Event{Kind: EventHealthChanged, Health: w.player.Health})
		if !w.player.Alive() {
			w.gameOver()
		}
	}
}

// addScore awards points and runs the score completion check
func (w *World) addScore(points int) {
	if !w.award(points) {
		return
	}
	if w.progress.ScoreReached() {
		w.beginTransition(progress.ReasonScore, w.config.Scoring.TransitionDelayTicks)
	}
}

// award adds points and reports whether the score changed
func (w *World) award(points int) bool {
	before := w.progress.Score()
	score := w.progress.AddScore(points)
	if score == before {
		return false
	}
	w.events.Push(Event{Kind: EventScoreChanged, Score: score})
	return true
}

// beginTransition completes the level unless a transition is already pending
func (w *World) beginTransition(reason progress.Reason, delay int) {
	if !w.progress.Begin(reason, delay) {
		return
	}

	done := w.progress.Completed()
	w.logger.Info("level complete", "level", done.Level, "reason", reason,
		"levelScore", done.LevelScore, "stars", done.Stars)
	w.events.Push(Event{
		Kind:       EventLevelComplete,
		Level:      done.Level,
		Score:      w.progress.Score(),
		LevelScore: done.LevelScore,
		Stars:      done.Stars,
	})
	w.particles.Confetti(w.config.World.Width, w.config.World.Height, 30, 5)
}

// unlock records an achievement. Nothing unlocks after game over.
func (w *World) unlock(id progress.AchievementID) {
	if w.GameOver() || !w.achievements.Unlock(id) {
		return
	}
	w.logger.Info("achievement unlocked", "title", id.Title())
	w.events.Push(Event{Kind: EventAchievementUnlocked, Achievement: id})
}

func (w *World) gameOver() {
	if !w.progress.SetGameOver() {
		return
	}
	w.ability.CancelTimed(w.player)
	w.logger.Info("game over", "level", w.progress.Level(), "score", w.progress.Score())
	w.events.Push(Event{Kind: EventGameOver, Score: w.progress.Score(), Level: w.progress.Level()})
}

func (w *World) win() {
	w.progress.Finish()
	w.unlock(progress.GameMaster)
	w.logger.Info("game won", "score", w.progress.Score(), "achievements", w.achievements.Len())
	w.events.Push(Event{
		Kind:         EventGameWon,
		Score:        w.progress.Score(),
		Achievements: w.achievements.Len(),
	})
}
