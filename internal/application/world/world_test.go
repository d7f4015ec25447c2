package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyquest/internal/application/progress"
	"github.com/younwookim/skyquest/internal/domain/entity"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

const testSeed = 42

func createTestWorld() *World {
	return New(config.DefaultTuning(), config.DefaultLevels(), testSeed)
}

// clearLevel empties every dynamic collection except platforms
func clearLevel(w *World) {
	w.enemies = nil
	w.coins = nil
	w.keys = nil
	w.powerUps = nil
	w.Events()
}

// settle puts the player at rest on the ground platform
func settle(w *World) {
	w.player.X = 200
	w.player.Y = 540
	w.player.VX, w.player.VY = 0, 0
	w.player.Jumping = false
}

// skipTo forces transitions until the given level is loaded
func skipTo(w *World, level int) {
	for w.Level() < level {
		w.progress.Begin(progress.ReasonScore, 0)
		w.advance()
	}
	w.Events()
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNew_StartsAtLevelOne(t *testing.T) {
	w := createTestWorld()

	assert.Equal(t, 1, w.Level())
	assert.Equal(t, 5, w.TotalLevels())
	assert.Equal(t, "tutorial", w.LevelName())
	assert.Zero(t, w.Score())
	assert.Equal(t, 100, w.Player().Health)
	assert.Equal(t, 200.0, w.Player().X)
	assert.Equal(t, 530.0, w.Player().Y)
	assert.Len(t, w.Enemies(), 2)
	assert.Len(t, w.Coins(), 5)
	assert.Equal(t, int64(testSeed), w.Seed())

	events := w.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventLevelStarted, events[0].Kind)
	assert.Equal(t, 1, events[0].Level)
	assert.Nil(t, w.Events(), "drained")
}

func TestStep_PlayerLandsOnGround(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)

	for i := 0; i < 30; i++ {
		w.Step(Input{})
	}

	assert.Equal(t, 540.0, w.Player().Y)
	assert.False(t, w.Player().Jumping)
	assert.Equal(t, 30, w.Tick())
}

func TestStep_HorizontalIntent(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	w.Step(Input{Horizontal: 1})
	assert.Equal(t, 5.0, w.Player().VX)
	assert.Equal(t, 205.0, w.Player().X)

	w.Step(Input{Horizontal: -3})
	assert.Equal(t, -5.0, w.Player().VX)

	w.Step(Input{})
	assert.Zero(t, w.Player().VX)
}

func TestScenario_FiveCoinsCompleteLevelOne(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	for i := 0; i < 5; i++ {
		w.coins = append(w.coins, entity.NewCoin(entity.EntityID(900+i), 210, 550, 20))
	}

	w.Step(Input{})
	assert.Equal(t, 50, w.Score())
	assert.True(t, w.Transitioning())
	assert.Equal(t, 50, w.Baseline())

	events := w.Events()
	assert.Equal(t, 5, countEvents(events, EventScoreChanged))
	require.Equal(t, 1, countEvents(events, EventLevelComplete))
	for _, e := range events {
		if e.Kind == EventLevelComplete {
			assert.Equal(t, 1, e.Level)
			assert.Equal(t, 50, e.LevelScore)
			assert.Equal(t, 3, e.Stars)
		}
	}

	// Collected coins never pay out twice while the overlap persists
	w.Step(Input{})
	assert.Equal(t, 50, w.Score())

	for i := 0; i < 117; i++ {
		w.Step(Input{})
	}
	assert.Equal(t, 1, w.Level(), "delay still running")

	w.Step(Input{})
	assert.Equal(t, 2, w.Level())
	assert.Equal(t, 50, w.Baseline())
	assert.Zero(t, w.LevelScore())
	assert.False(t, w.Transitioning())
	assert.Equal(t, "flying", w.LevelName())

	events = w.Events()
	assert.Equal(t, 1, countEvents(events, EventLevelStarted))
}

func TestScenario_StompGroundEnemy(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)

	enemy := entity.NewEnemy(100, entity.EnemyGround, 300, 550, 30, 1, 0)
	w.enemies = []*entity.Enemy{enemy}
	w.player.X, w.player.Y = 295, 505
	w.player.VY = 5
	w.player.Jumping = true

	w.Step(Input{})

	assert.True(t, enemy.Removed)
	assert.Empty(t, w.Enemies(), "compacted at end of tick")
	assert.Equal(t, 10, w.Score())
	assert.Equal(t, -6.0, w.Player().VY, "stomp bounce")
	assert.Equal(t, 100, w.Player().Health)
}

func TestScenario_FlyingEnemyTakesThreeHits(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	enemy := entity.NewEnemy(100, entity.EnemyFlying, 250, 540, 30, 3, 0)
	w.enemies = []*entity.Enemy{enemy}

	for hit := 1; hit <= 3; hit++ {
		w.player.AttackCooldown = 0
		require.True(t, w.Attack())
		if hit < 3 {
			assert.Equal(t, 3-hit, enemy.Health)
			assert.Zero(t, w.Score())
		}
	}

	assert.True(t, enemy.Removed)
	assert.Equal(t, 30, w.Score())
	assert.Empty(t, w.Enemies())
}

func TestAttack_Cooldown(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	assert.True(t, w.Attack())
	assert.False(t, w.Attack(), "cooldown")
	assert.Equal(t, entity.DirRight, w.Player().LastAttack)

	for i := 0; i < 20; i++ {
		w.Step(Input{})
	}
	assert.True(t, w.Attack())
}

func TestAttack_ReversesSurvivor(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	enemy := entity.NewEnemy(100, entity.EnemyFlying, 250, 540, 30, 3, 2)
	w.enemies = []*entity.Enemy{enemy}

	require.True(t, w.Attack())
	assert.Equal(t, -2.0, enemy.VX)
	assert.Equal(t, 2, enemy.Health)
}

func TestScenario_ShieldAbsorbsOneHit(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)
	w.player.HasShield = true

	enemy := entity.NewEnemy(100, entity.EnemyGround, 220, 550, 30, 1, 0)
	w.enemies = []*entity.Enemy{enemy}

	w.Step(Input{})
	assert.Equal(t, 100, w.Player().Health, "shield absorbed")
	assert.False(t, w.Player().HasShield)

	w.Step(Input{})
	assert.Equal(t, 80, w.Player().Health, "next hit lands")
	assert.Equal(t, 60, w.Player().InvulnTicks)

	for i := 0; i < 10; i++ {
		w.Step(Input{})
	}
	assert.Equal(t, 80, w.Player().Health, "invulnerability window")
}

func TestScenario_StrengthBlocksDamage(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)
	w.player.StrengthTicks = 180

	w.enemies = []*entity.Enemy{entity.NewEnemy(100, entity.EnemyGround, 220, 550, 30, 1, 0)}

	for i := 0; i < 10; i++ {
		w.Step(Input{})
	}
	assert.Equal(t, 100, w.Player().Health)
}

func TestScenario_DoubleJump(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)
	w.Step(Input{})

	t.Run("not owned", func(t *testing.T) {
		assert.True(t, w.Jump())
		assert.True(t, w.Player().Jumping)
		assert.False(t, w.Jump())
	})

	for i := 0; i < 120; i++ {
		w.Step(Input{})
	}
	require.False(t, w.Player().Jumping)
	w.player.HasDoubleJump = true

	t.Run("owned", func(t *testing.T) {
		assert.True(t, w.Player().DoubleJumpAvailable)
		assert.True(t, w.Jump())
		assert.True(t, w.Jump(), "double jump")
		assert.InDelta(t, -9.6, w.Player().VY, 1e-9)
		assert.False(t, w.Player().DoubleJumpAvailable)
		assert.False(t, w.Jump(), "consumed")
	})

	for i := 0; i < 120; i++ {
		w.Step(Input{})
	}
	assert.False(t, w.Player().Jumping)
	assert.True(t, w.Player().DoubleJumpAvailable, "restored once grounded")
}

func TestScenario_SpeedPowerUp(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	w.SetHorizontalIntent(-1)
	require.Equal(t, -5.0, w.Player().VX)

	w.powerUps = []*entity.Pickup{entity.NewPowerUp(900, 190, 545, 30, entity.PowerUpSpeed)}

	w.Step(Input{Horizontal: -1})
	assert.Equal(t, -7.5, w.Player().VX)

	for i := 0; i < 299; i++ {
		w.Step(Input{Horizontal: -1})
	}
	assert.Equal(t, -7.5, w.Player().VX, "still boosted")

	w.Step(Input{Horizontal: -1})
	assert.Equal(t, -5.0, w.Player().VX, "restored to base speed, sign kept")
}

func TestScenario_PowerUpAchievements(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)

	w.powerUps = []*entity.Pickup{
		entity.NewPowerUp(900, 200, 545, 30, entity.PowerUpDoubleJump),
		entity.NewPowerUp(901, 205, 545, 30, entity.PowerUpShield),
	}

	w.Step(Input{})

	assert.True(t, w.Player().HasDoubleJump)
	assert.True(t, w.Player().HasShield)
	assert.True(t, w.HasAchievement(progress.HighFlyer))
	assert.True(t, w.HasAchievement(progress.Protected))
	assert.Equal(t, 2, countEvents(w.Events(), EventAchievementUnlocked))

	w.Step(Input{})
	assert.Empty(t, w.Events(), "collected power-ups stay collected")
}

func TestScenario_BossDefeatedOnce(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 5)
	settle(w)

	boss := w.Boss()
	require.NotNil(t, boss)
	boss.Projectiles = nil
	boss.X, boss.Y = 250, 520
	boss.Health = 1
	w.progress.DamageBoss(9)
	require.Equal(t, 1, w.BossHealth())

	w.Step(Input{Attack: true})

	events := w.Events()
	slayer := 0
	for _, e := range events {
		if e.Kind == EventAchievementUnlocked && e.Achievement == progress.BossSlayer {
			slayer++
		}
	}
	assert.Equal(t, 1, slayer)
	assert.Equal(t, 1, countEvents(events, EventLevelComplete))
	assert.Equal(t, 1, countEvents(events, EventGameWon))
	assert.True(t, boss.Removed)
	assert.Equal(t, 500, w.Score())
	assert.True(t, w.Won())
	assert.True(t, w.HasAchievement(progress.GameMaster))

	// A late hit on the dead boss changes nothing
	w.hitEnemy(boss, 10)
	assert.Equal(t, 500, w.Score())
	assert.Nil(t, w.Events())
}

func TestScenario_ProjectileKillFreezesBoss(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 5)
	w.platforms = w.platforms[:1]

	boss := w.Boss()
	require.NotNil(t, boss)
	boss.X, boss.Y = 300, 500
	boss.VX, boss.VY = 0, 0
	boss.AttackTimer = 0
	boss.Health = 1
	w.progress.DamageBoss(9)
	w.enemies = []*entity.Enemy{boss}

	w.player.X, w.player.Y = 320, 458
	w.player.VY = 5
	w.player.Jumping = true
	w.player.Health = 10
	w.player.InvulnTicks = 0
	w.player.HasShield = false
	boss.Projectiles = []*entity.Projectile{entity.NewProjectile(340, 480, 0, 0, 5, 10)}

	w.Step(Input{})

	require.True(t, w.GameOver())
	assert.False(t, boss.Removed)
	assert.Equal(t, 1, boss.Health)
	assert.Equal(t, 1, w.BossHealth())
	assert.False(t, w.HasAchievement(progress.BossSlayer))
	events := w.Events()
	assert.Zero(t, countEvents(events, EventAchievementUnlocked))
	assert.Zero(t, countEvents(events, EventLevelComplete))
	assert.Equal(t, 1, countEvents(events, EventGameOver))

	// Direct hits and unlocks are ignored once the game is over
	w.hitEnemy(boss, 10)
	w.unlock(progress.BossSlayer)
	assert.Equal(t, 1, w.BossHealth())
	assert.False(t, w.HasAchievement(progress.BossSlayer))
	assert.Nil(t, w.Events())
}

func TestScenario_KeysCutScoreDelay(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 3)
	w.enemies = nil
	w.coins = nil
	w.powerUps = nil
	settle(w)

	require.Len(t, w.keys, 3)
	for _, key := range w.keys[:2] {
		key.Collect()
		w.progress.CollectKey()
	}
	w.addScore(w.Target())
	require.True(t, w.Transitioning())
	w.Events()

	w.keys[2].X, w.keys[2].Y = 210, 545
	w.Step(Input{})

	assert.Equal(t, 4, w.Level(), "key completion does not wait for the score delay")
	assert.Zero(t, countEvents(w.Events(), EventLevelComplete), "completion reported once")
	assert.True(t, w.HasAchievement(progress.KeyMaster))
}

func TestBoss_HealthLockstep(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 5)

	boss := w.Boss()
	require.NotNil(t, boss)

	w.hitEnemy(boss, 1)
	assert.Equal(t, 9, boss.Health)
	assert.Equal(t, 9, w.BossHealth())
}

func TestBoss_ProjectileHitsPlayer(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 5)
	settle(w)

	boss := w.Boss()
	require.NotNil(t, boss)
	boss.Projectiles = []*entity.Projectile{entity.NewProjectile(220, 560, 0, 0, 5, 10)}

	w.Step(Input{})

	assert.Equal(t, 90, w.Player().Health)
	assert.Empty(t, boss.Projectiles)
}

func TestScenario_KeysAndScoreInSameTick(t *testing.T) {
	w := createTestWorld()
	skipTo(w, 3)
	w.enemies = nil
	w.coins = nil
	w.powerUps = nil
	settle(w)

	require.Len(t, w.keys, 3)
	require.Equal(t, 100, w.Target())
	w.award(90)
	for _, key := range w.keys[:2] {
		key.Collect()
		w.progress.CollectKey()
	}
	w.keys[2].X, w.keys[2].Y = 210, 545
	w.coins = []*entity.Pickup{entity.NewCoin(900, 215, 550, 20)}
	w.Events()

	w.Step(Input{})

	events := w.Events()
	assert.Equal(t, 1, countEvents(events, EventLevelComplete))
	assert.Equal(t, 4, w.Level(), "exactly one transition")
	assert.True(t, w.HasAchievement(progress.KeyMaster))
	assert.Zero(t, w.KeysCollected())
	assert.Equal(t, 100, w.Score())
}

func TestScenario_TransitionResetsPlayer(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)
	w.player.Health = 40
	w.player.SpeedTicks = 100
	w.player.StrengthTicks = 100
	w.player.HasShield = true

	w.progress.Begin(progress.ReasonScore, 0)
	w.Step(Input{})

	assert.Equal(t, 2, w.Level())
	p := w.Player()
	assert.Equal(t, 100, p.Health)
	assert.Zero(t, p.SpeedTicks)
	assert.Zero(t, p.StrengthTicks)
	assert.True(t, p.HasShield, "permanent abilities carry over")
	assert.Equal(t, 10, w.BossHealth())
}

func TestScenario_GameOverIsTerminal(t *testing.T) {
	w := createTestWorld()
	clearLevel(w)
	settle(w)
	w.player.Health = 20

	enemy := entity.NewEnemy(100, entity.EnemyGround, 220, 550, 30, 1, 2)
	w.enemies = []*entity.Enemy{enemy}
	w.coins = []*entity.Pickup{entity.NewCoin(900, 210, 550, 20)}

	w.Step(Input{})

	require.True(t, w.GameOver())
	assert.Zero(t, w.Player().Health)
	assert.Zero(t, w.Score(), "coins are not collected after death")
	events := w.Events()
	assert.Equal(t, 1, countEvents(events, EventGameOver))

	tick, x, ex := w.Tick(), w.Player().X, enemy.X
	for i := 0; i < 10; i++ {
		w.Step(Input{Horizontal: 1, Jump: true, Attack: true})
	}

	assert.Equal(t, tick, w.Tick())
	assert.Equal(t, x, w.Player().X)
	assert.Equal(t, ex, enemy.X)
	assert.Zero(t, w.Score())
	assert.False(t, w.Jump())
	assert.False(t, w.Attack())
	assert.Nil(t, w.Events())
}

func TestSetLevels_AppliesAtNextGeneration(t *testing.T) {
	w := createTestWorld()

	w.SetLevels(&config.LevelSet{Levels: []config.LevelRecipe{
		{Name: "first", Coins: 1},
		{Name: "second", Coins: 2},
	}})
	assert.Equal(t, "tutorial", w.LevelName(), "current level keeps running")

	w.progress.Begin(progress.ReasonScore, 0)
	w.Step(Input{})

	assert.Equal(t, 2, w.Level())
	assert.Equal(t, "second", w.LevelName())
	assert.Equal(t, 2, w.TotalLevels())
	assert.Len(t, w.Coins(), 2)
}

func TestStep_Deterministic(t *testing.T) {
	a := createTestWorld()
	b := createTestWorld()

	for i := 0; i < 600; i++ {
		in := Input{Horizontal: 1, Jump: i%40 == 0, Attack: i%25 == 0}
		a.Step(in)
		b.Step(in)
	}

	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.Level(), b.Level())
	assert.Equal(t, a.Player().Body, b.Player().Body)
	assert.Equal(t, a.Player().Health, b.Player().Health)
	require.Len(t, b.Enemies(), len(a.Enemies()))
	for i := range a.Enemies() {
		assert.Equal(t, a.Enemies()[i].Body, b.Enemies()[i].Body)
	}
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "ScoreChanged", EventScoreChanged.String())
	assert.Equal(t, "GameWon", EventGameWon.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}
