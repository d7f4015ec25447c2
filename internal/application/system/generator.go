package system

import (
	"math/rand"

	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// Layout is the freshly generated population of one level
type Layout struct {
	Level     int
	Name      string
	Platforms []*entity.Platform
	Enemies   []*entity.Enemy
	Coins     []*entity.Pickup
	Keys      []*entity.Pickup
	PowerUps  []*entity.Pickup

	// RequiredKeys is zero on levels without keys
	RequiredKeys int
	SpawnX       float64
	SpawnY       float64
}

// Boss returns the level's boss, or nil
func (l *Layout) Boss() *entity.Enemy {
	for _, e := range l.Enemies {
		if e.IsBoss() {
			return e
		}
	}
	return nil
}

// Generator populates levels from recipes. Entity IDs are never reused.
type Generator struct {
	config *config.Tuning
	levels *config.LevelSet
	rng    *rand.Rand
	nextID entity.EntityID
}

// NewGenerator creates a level generator
func NewGenerator(cfg *config.Tuning, levels *config.LevelSet, rng *rand.Rand) *Generator {
	return &Generator{
		config: cfg,
		levels: levels,
		rng:    rng,
	}
}

// SetLevels replaces the recipe set used by later Generate calls
func (g *Generator) SetLevels(levels *config.LevelSet) {
	g.levels = levels
}

// TotalLevels returns the number of levels in the campaign
func (g *Generator) TotalLevels() int {
	return g.levels.Count()
}

// Generate builds the layout for a 1-based level number. It returns false
// for level numbers outside the campaign.
func (g *Generator) Generate(level int) (Layout, bool) {
	recipe, ok := g.levels.Recipe(level)
	if !ok {
		return Layout{}, false
	}

	w, h := g.config.World.Width, g.config.World.Height
	ph := g.config.World.PlatformHeight

	layout := Layout{
		Level: level,
		Name:  recipe.Name,
	}
	layout.SpawnX, layout.SpawnY = g.Spawn()

	// Full-width ground first
	layout.Platforms = append(layout.Platforms, entity.NewPlatform(0, h-ph, w, ph))
	for _, p := range recipe.Platforms {
		layout.Platforms = append(layout.Platforms, entity.NewPlatform(p.X, p.Y, p.Width, ph))
	}
	for _, p := range recipe.MovingPlatforms {
		layout.Platforms = append(layout.Platforms, entity.NewMovingPlatform(p.X, p.Y, p.Width, ph, p.Range, p.Speed))
	}

	for _, spec := range recipe.Enemies {
		kind, ok := entity.ParseEnemyKind(spec.Kind)
		if !ok {
			continue
		}
		layout.Enemies = append(layout.Enemies, g.newEnemy(kind, spec.X, spec.Y))
	}

	for _, spec := range recipe.PowerUps {
		t, ok := entity.ParsePowerUpType(spec.Type)
		if !ok {
			continue
		}
		layout.PowerUps = append(layout.PowerUps,
			entity.NewPowerUp(g.id(), spec.X, spec.Y, g.config.PowerUps.Size, t))
	}

	layout.Coins = g.placeCoins(recipe.Coins, layout.Platforms)

	kw, kh := g.config.Pickups.KeyWidth, g.config.Pickups.KeyHeight
	for i := 0; i < recipe.Keys; i++ {
		layout.Keys = append(layout.Keys, entity.NewKey(g.id(), 100+float64(i)*200, h-300, kw, kh))
	}
	layout.RequiredKeys = recipe.Keys

	return layout, true
}

// Spawn returns the player spawn point, just above the ground platform
func (g *Generator) Spawn() (float64, float64) {
	cfg := g.config
	x := cfg.World.Width / 4
	y := cfg.World.Height - cfg.Player.Height - cfg.World.PlatformHeight - cfg.Player.SpawnLift
	return x, y
}

func (g *Generator) newEnemy(kind entity.EnemyKind, x, y float64) *entity.Enemy {
	speed := g.config.Enemies.PatrolSpeed
	if g.rng.Float64() <= 0.5 {
		speed = -speed
	}

	switch kind {
	case entity.EnemyBoss:
		return entity.NewEnemy(g.id(), kind, x, y, g.config.Boss.Size, g.config.Boss.Health, speed)
	case entity.EnemyFlying:
		return entity.NewEnemy(g.id(), kind, x, y, g.config.Enemies.Size, g.config.Enemies.FlyingHealth, speed)
	default:
		return entity.NewEnemy(g.id(), kind, x, y, g.config.Enemies.Size, g.config.Enemies.GroundHealth, speed)
	}
}

// placeCoins drops coins at random positions clear of every platform.
// After CoinTries failed attempts the last candidate is kept.
func (g *Generator) placeCoins(n int, platforms []*entity.Platform) []*entity.Pickup {
	size := g.config.Pickups.CoinSize
	maxX := g.config.World.Width - size
	maxY := g.config.World.Height - size - g.config.Pickups.CoinFloorGap
	tries := g.config.Pickups.CoinTries
	if tries < 1 {
		tries = 1
	}

	coins := make([]*entity.Pickup, 0, n)
	for i := 0; i < n; i++ {
		var r entity.Rect
		for try := 0; try < tries; try++ {
			r = entity.Rect{X: g.rng.Float64() * maxX, Y: g.rng.Float64() * maxY, W: size, H: size}
			if clearOfPlatforms(r, platforms) {
				break
			}
		}
		coins = append(coins, entity.NewCoin(g.id(), r.X, r.Y, size))
	}
	return coins
}

func clearOfPlatforms(r entity.Rect, platforms []*entity.Platform) bool {
	for _, p := range platforms {
		if entity.Overlaps(r, p.Bounds()) {
			return false
		}
	}
	return true
}

func (g *Generator) id() entity.EntityID {
	g.nextID++
	return g.nextID
}
