package system

import (
	"math"

	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// EnemyEnv is the read-mostly context an enemy behaviour runs against
type EnemyEnv struct {
	Config    *config.Tuning
	Platforms []*entity.Platform
	Player    *entity.Player

	// ElapsedMs drives the flying sinusoid
	ElapsedMs float64

	// OnFire is called when a boss spawns a projectile
	OnFire func(boss *entity.Enemy, proj *entity.Projectile)
}

type enemyBehavior func(env *EnemyEnv, e *entity.Enemy)

var enemyBehaviors = map[entity.EnemyKind]enemyBehavior{
	entity.EnemyGround: stepGround,
	entity.EnemyFlying: stepFlying,
	entity.EnemyBoss:   stepBoss,
}

// StepEnemy runs one tick of the enemy's behaviour variant
func StepEnemy(env *EnemyEnv, e *entity.Enemy) {
	if !e.IsAlive() {
		return
	}
	if step, ok := enemyBehaviors[e.Kind]; ok {
		step(env, e)
	}
}

// stepGround patrols, bounces off world edges and falls unless resting on a platform
func stepGround(env *EnemyEnv, e *entity.Enemy) {
	e.Integrate()
	bounceAtEdges(e, env.Config.World.Width)

	onPlatform := false
	for _, p := range env.Platforms {
		if entity.Overlaps(e.Bounds(), p.Bounds()) {
			e.Y = p.Y - e.H
			e.VY = 0
			onPlatform = true
		}
	}
	if !onPlatform {
		e.VY += env.Config.World.Gravity
	}
}

// stepFlying patrols horizontally on a sinusoid around BaseY
func stepFlying(env *EnemyEnv, e *entity.Enemy) {
	e.X += e.VX
	cfg := env.Config.Enemies
	e.Y = e.BaseY + math.Sin(env.ElapsedMs*cfg.FlyingFrequency)*cfg.FlyingAmplitude
	bounceAtEdges(e, env.Config.World.Width)
}

// stepBoss moves like a ground enemy, fires at the player every
// AttackInterval ticks and steps its own projectiles
func stepBoss(env *EnemyEnv, e *entity.Enemy) {
	stepGround(env, e)

	cfg := env.Config.Boss
	e.AttackTimer++
	if e.AttackTimer >= cfg.AttackInterval {
		e.AttackTimer = 0
		fire(env, e)
	}

	w, h := env.Config.World.Width, env.Config.World.Height
	kept := e.Projectiles[:0]
	for _, proj := range e.Projectiles {
		proj.Update()
		if proj.Spent || proj.Offscreen(w, h) {
			continue
		}
		kept = append(kept, proj)
	}
	e.Projectiles = kept
}

func fire(env *EnemyEnv, boss *entity.Enemy) {
	if env.Player == nil {
		return
	}
	cfg := env.Config.Boss
	bx, by := boss.Center()
	px, py := env.Player.Center()
	proj := entity.NewAimedProjectile(bx, by, px, py, cfg.ProjectileSpeed, cfg.ProjectileRadius, cfg.ProjectileDamage)
	boss.Projectiles = append(boss.Projectiles, proj)
	if env.OnFire != nil {
		env.OnFire(boss, proj)
	}
}

// bounceAtEdges points the velocity back into the world once an edge is reached
func bounceAtEdges(e *entity.Enemy, worldW float64) {
	if e.X <= 0 {
		e.VX = math.Abs(e.VX)
	} else if e.X+e.W >= worldW {
		e.VX = -math.Abs(e.VX)
	}
}
