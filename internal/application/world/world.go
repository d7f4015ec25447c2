// Package world owns the complete simulation state and advances it one
// fixed tick at a time.
package world

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyquest/internal/application/progress"
	"github.com/younwookim/skyquest/internal/application/system"
	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// Input is one tick's worth of player intent
type Input = system.Input

// Option configures a World
type Option func(*World)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// World is the single owner of all entities, progression and RNG state.
// It is not safe for concurrent use.
type World struct {
	config *config.Tuning
	logger *log.Logger
	rng    *rand.Rand
	seed   int64

	physics   *system.PhysicsSystem
	ability   *system.AbilitySystem
	combat    *system.CombatSystem
	particles *system.ParticleSystem
	generator *system.Generator
	enemyEnv  system.EnemyEnv

	progress     *progress.Controller
	achievements *progress.Achievements
	events       EventQueue

	player    *entity.Player
	platforms []*entity.Platform
	enemies   []*entity.Enemy
	coins     []*entity.Pickup
	keys      []*entity.Pickup
	powerUps  []*entity.Pickup
	levelName string

	// pendingLevels replaces the recipes at the next generation
	pendingLevels *config.LevelSet

	tick     int
	intent   int
	stepping bool
}

// New creates a world seeded for deterministic play and generates level 1
func New(tuning *config.Tuning, levels *config.LevelSet, seed int64, opts ...Option) *World {
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		config:       tuning,
		rng:          rng,
		seed:         seed,
		physics:      system.NewPhysicsSystem(tuning),
		ability:      system.NewAbilitySystem(tuning),
		combat:       system.NewCombatSystem(tuning),
		particles:    system.NewParticleSystem(&tuning.Particles, rng),
		generator:    system.NewGenerator(tuning, levels, rng),
		progress:     progress.NewController(tuning, levels.Count()),
		achievements: progress.NewAchievements(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	pc := tuning.Player
	w.player = entity.NewPlayer(0, 0, pc.Width, pc.Height, pc.MaxHealth)

	w.enemyEnv = system.EnemyEnv{
		Config: tuning,
		Player: w.player,
		OnFire: func(boss *entity.Enemy, proj *entity.Projectile) {
			w.logger.Debug("boss attack", "boss", boss.ID, "vx", proj.VX, "vy", proj.VY)
		},
	}

	w.loadLevel()
	return w
}

// SetLevels swaps the level recipes. The current level keeps running;
// the new recipes apply from the next generated level.
func (w *World) SetLevels(levels *config.LevelSet) {
	if levels == nil {
		return
	}
	w.pendingLevels = levels
}

// loadLevel populates the current level, or ends the game as won when the
// level number has no recipe
func (w *World) loadLevel() {
	level := w.progress.Level()
	layout, ok := w.generator.Generate(level)
	if !ok {
		w.logger.Warn("no recipe for level, finishing campaign", "level", level)
		w.win()
		return
	}

	w.levelName = layout.Name
	w.platforms = layout.Platforms
	w.enemies = layout.Enemies
	w.coins = layout.Coins
	w.keys = layout.Keys
	w.powerUps = layout.PowerUps
	w.progress.SetRequiredKeys(layout.RequiredKeys)
	w.particles.Clear()

	w.player.Respawn(layout.SpawnX, layout.SpawnY)
	w.ability.SetIntent(w.player, w.intent)

	w.logger.Info("level started", "level", level, "name", layout.Name,
		"enemies", len(layout.Enemies), "coins", len(layout.Coins), "keys", layout.RequiredKeys)
	w.events.Push(Event{Kind: EventLevelStarted, Level: level, Score: w.progress.Score()})
}

func (w *World) applyPendingLevels() {
	if w.pendingLevels == nil {
		return
	}
	w.generator.SetLevels(w.pendingLevels)
	w.progress.SetTotalLevels(w.pendingLevels.Count())
	w.logger.Info("level recipes reloaded", "levels", w.pendingLevels.Count())
	w.pendingLevels = nil
}

// Events drains pending notifications
func (w *World) Events() []Event {
	return w.events.Drain()
}

// Seed returns the RNG seed the world was created with
func (w *World) Seed() int64 { return w.seed }

// Tick returns the number of ticks simulated
func (w *World) Tick() int { return w.tick }

// ElapsedMs returns simulated time in milliseconds
func (w *World) ElapsedMs() float64 {
	return float64(w.tick) * 1000 / float64(w.config.World.TicksPerSecond)
}

// Config returns the tuning the world runs with
func (w *World) Config() *config.Tuning { return w.config }

// Player returns the player
func (w *World) Player() *entity.Player { return w.player }

// Platforms returns the level's platforms, ground first
func (w *World) Platforms() []*entity.Platform { return w.platforms }

// Enemies returns the enemies still in the world
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Coins returns the level's coins, collected ones included
func (w *World) Coins() []*entity.Pickup { return w.coins }

// Keys returns the level's keys, collected ones included
func (w *World) Keys() []*entity.Pickup { return w.keys }

// PowerUps returns the level's power-ups, collected ones included
func (w *World) PowerUps() []*entity.Pickup { return w.powerUps }

// Particles returns the live particles
func (w *World) Particles() []*entity.Particle { return w.particles.Particles() }

// Boss returns the living boss, or nil
func (w *World) Boss() *entity.Enemy {
	for _, e := range w.enemies {
		if e.IsBoss() && e.IsAlive() {
			return e
		}
	}
	return nil
}

// Level returns the current level number
func (w *World) Level() int { return w.progress.Level() }

// TotalLevels returns the campaign length
func (w *World) TotalLevels() int { return w.progress.TotalLevels() }

// LevelName returns the recipe name of the current level
func (w *World) LevelName() string { return w.levelName }

// Score returns the cumulative score
func (w *World) Score() int { return w.progress.Score() }

// Baseline returns the score at the start of the current level
func (w *World) Baseline() int { return w.progress.Baseline() }

// LevelScore returns the score earned on the current level
func (w *World) LevelScore() int { return w.progress.LevelScore() }

// Target returns the current level's score target
func (w *World) Target() int { return w.progress.Target() }

// KeysCollected returns the collected key count
func (w *World) KeysCollected() int { return w.progress.Keys() }

// RequiredKeys returns the key gate of the current level
func (w *World) RequiredKeys() int { return w.progress.RequiredKeys() }

// BossHealth returns the shared boss health scalar
func (w *World) BossHealth() int { return w.progress.BossHealth() }

// Achievements returns the unlocked achievements
func (w *World) Achievements() []progress.AchievementID { return w.achievements.List() }

// HasAchievement reports whether an achievement is unlocked
func (w *World) HasAchievement(id progress.AchievementID) bool { return w.achievements.Has(id) }

// Transitioning reports whether a level transition is pending
func (w *World) Transitioning() bool { return w.progress.Transitioning() }

// GameOver reports whether the player died
func (w *World) GameOver() bool { return w.progress.GameOver() }

// Won reports whether the campaign was completed
func (w *World) Won() bool { return w.progress.Won() }

// Terminal reports whether the game has ended
func (w *World) Terminal() bool { return w.progress.Terminal() }
