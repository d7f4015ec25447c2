package world

import (
	"github.com/younwookim/skyquest/internal/application/progress"
	"github.com/younwookim/skyquest/internal/application/system"
	"github.com/younwookim/skyquest/internal/domain/entity"
)

// Step applies the tick's input and advances the simulation by one tick.
// It is a no-op once the game has ended.
func (w *World) Step(in Input) {
	if w.Terminal() {
		return
	}

	w.stepping = true
	defer func() { w.stepping = false }()

	if dir := system.ClampDirection(in.Horizontal); dir != w.intent {
		w.SetHorizontalIntent(dir)
	}
	if in.Jump {
		w.Jump()
	}
	if in.Attack {
		w.Attack()
	}

	w.tick++

	w.physics.MovePlatforms(w.platforms, w.player)
	w.collectKeys()

	w.physics.UpdatePlayer(w.player, w.platforms)
	for _, t := range w.ability.Tick(w.player) {
		w.logger.Debug("power-up expired", "type", t)
	}

	w.stepEnemies()
	if w.Terminal() {
		return
	}

	w.collectCoins()
	w.collectPowerUps()
	w.particles.Age()
	w.compactEnemies()

	if w.progress.TickTransition() {
		w.advance()
	}
}

func (w *World) collectKeys() {
	for _, key := range w.keys {
		if key.Collected || !entity.Overlaps(w.player.Bounds(), key.Bounds()) {
			continue
		}
		key.Collect()
		cx, cy := key.Center()
		w.particles.Burst(cx, cy, 10, system.ColorGold)

		if w.progress.CollectKey() {
			w.unlock(progress.KeyMaster)
			w.beginTransition(progress.ReasonKeys, 0)
		}
	}
}

func (w *World) stepEnemies() {
	w.enemyEnv.Platforms = w.platforms
	w.enemyEnv.ElapsedMs = w.ElapsedMs()

	cfg := w.config.Enemies
	for _, e := range w.enemies {
		if !e.IsAlive() {
			continue
		}
		system.StepEnemy(&w.enemyEnv, e)

		if e.IsBoss() {
			for _, proj := range w.combat.ResolveProjectiles(w.player, e) {
				w.hurt(proj.Damage)
			}
			if w.Terminal() {
				return
			}
		}

		switch w.combat.ResolveContact(w.player, e) {
		case system.ContactStomp:
			cx, cy := e.Center()
			w.particles.Burst(cx, cy, 10, system.ColorRed)
			w.hitEnemy(e, cfg.StompDamage)
		case system.ContactHurt:
			w.hurt(cfg.ContactDamage)
		}

		if w.Terminal() {
			return
		}
	}
}

func (w *World) collectCoins() {
	for _, coin := range w.coins {
		if coin.Collected || !entity.Overlaps(w.player.Bounds(), coin.Bounds()) {
			continue
		}
		coin.Collect()
		cx, cy := coin.Center()
		w.particles.Burst(cx, cy, 10, system.ColorGold)
		w.addScore(w.config.Scoring.Coin)
	}
}

func (w *World) collectPowerUps() {
	for _, pu := range w.powerUps {
		if pu.Collected || !entity.Overlaps(w.player.Bounds(), pu.Bounds()) {
			continue
		}
		pu.Collect()
		w.ability.ApplyPowerUp(w.player, pu.PowerUp)

		px, py := w.player.Center()
		w.particles.Burst(px, py, 20, system.PowerUpColor(pu.PowerUp))
		w.logger.Debug("power-up collected", "type", pu.PowerUp)

		switch pu.PowerUp {
		case entity.PowerUpDoubleJump:
			w.unlock(progress.HighFlyer)
		case entity.PowerUpShield:
			w.unlock(progress.Protected)
		}
	}
}

// compactEnemies drops removed enemies from the entity list
func (w *World) compactEnemies() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Removed {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = kept
}

// advance performs a due level transition
func (w *World) advance() {
	w.ability.CancelTimed(w.player)
	w.applyPendingLevels()

	if w.progress.Advance() {
		w.win()
		return
	}

	w.player.Health = w.player.MaxHealth
	w.events.Push(Event{Kind: EventHealthChanged, Health: w.player.Health})
	w.loadLevel()
}
