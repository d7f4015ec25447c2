// Package progress tracks the campaign: level counter, score, keys, boss
// health, level transitions and achievements.
package progress

import (
	"math"

	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// Reason identifies which condition completed a level
type Reason int

const (
	ReasonNone Reason = iota
	ReasonScore
	ReasonKeys
	ReasonBoss
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case ReasonScore:
		return "score"
	case ReasonKeys:
		return "keys"
	case ReasonBoss:
		return "boss"
	default:
		return "none"
	}
}

// Controller is the level and progression state machine.
// All invalid requests are silent no-ops.
type Controller struct {
	config      *config.Tuning
	totalLevels int

	level    int
	score    int
	baseline int

	requiredKeys  int
	collectedKeys int
	bossHealth    int

	transitioning bool
	reason        Reason
	delay         int
	completed     Completion

	gameOver bool
	won      bool
}

// Completion describes the level that was just completed
type Completion struct {
	Level      int
	LevelScore int
	Target     int
	Stars      int
	Reason     Reason
}

// NewController creates a controller positioned at level 1 with zero score
func NewController(cfg *config.Tuning, totalLevels int) *Controller {
	return &Controller{
		config:      cfg,
		totalLevels: totalLevels,
		level:       1,
		bossHealth:  cfg.Boss.Health,
	}
}

// Level returns the current 1-based level number
func (c *Controller) Level() int { return c.level }

// TotalLevels returns the campaign length
func (c *Controller) TotalLevels() int { return c.totalLevels }

// SetTotalLevels changes the campaign length, e.g. after a recipe reload
func (c *Controller) SetTotalLevels(n int) { c.totalLevels = n }

// Score returns the cumulative score
func (c *Controller) Score() int { return c.score }

// Baseline returns the score at the start of the current level
func (c *Controller) Baseline() int { return c.baseline }

// LevelScore returns the score earned since the baseline
func (c *Controller) LevelScore() int { return c.score - c.baseline }

// Target returns the score delta needed to clear the current level
func (c *Controller) Target() int { return c.config.LevelTarget(c.level) }

// AddScore adds points and returns the new total. Score never decreases.
func (c *Controller) AddScore(points int) int {
	if points > 0 && !c.Terminal() {
		c.score += points
	}
	return c.score
}

// ScoreReached reports whether the level score meets the current target
func (c *Controller) ScoreReached() bool {
	target := c.Target()
	return target > 0 && c.LevelScore() >= target
}

// Begin starts a level transition that becomes due after delay ticks.
// It returns false while a transition is already pending or the game has
// ended. A pending transition only ever gets shorter.
func (c *Controller) Begin(reason Reason, delay int) bool {
	if c.Terminal() {
		return false
	}
	if delay < 0 {
		delay = 0
	}
	if c.transitioning {
		if delay < c.delay {
			c.delay = delay
		}
		return false
	}

	levelScore := c.LevelScore()
	c.completed = Completion{
		Level:      c.level,
		LevelScore: levelScore,
		Target:     c.Target(),
		Stars:      Stars(levelScore, c.Target()),
		Reason:     reason,
	}
	c.transitioning = true
	c.reason = reason
	c.delay = delay
	c.baseline = c.score
	return true
}

// Transitioning reports whether a level transition is pending
func (c *Controller) Transitioning() bool { return c.transitioning }

// Completed returns the record captured by the last Begin
func (c *Controller) Completed() Completion { return c.completed }

// TickTransition counts the pending delay down and reports whether the
// transition is due
func (c *Controller) TickTransition() bool {
	if !c.transitioning {
		return false
	}
	if c.delay > 0 {
		c.delay--
	}
	return c.delay == 0
}

// Due reports whether a pending transition has no delay left
func (c *Controller) Due() bool {
	return c.transitioning && c.delay == 0
}

// Advance moves to the next level and resets per-level progress. It
// returns true when the campaign is finished and the game is won.
func (c *Controller) Advance() bool {
	if c.Terminal() {
		return c.won
	}

	c.transitioning = false
	c.reason = ReasonNone
	c.delay = 0
	c.level++
	c.requiredKeys = 0
	c.collectedKeys = 0
	c.ResetBoss()

	if c.level > c.totalLevels {
		c.won = true
	}
	return c.won
}

// SetRequiredKeys sets the key gate of the current level
func (c *Controller) SetRequiredKeys(n int) {
	if n < 0 {
		n = 0
	}
	c.requiredKeys = n
	c.collectedKeys = 0
}

// RequiredKeys returns the key gate of the current level
func (c *Controller) RequiredKeys() int { return c.requiredKeys }

// Keys returns the number of keys collected on the current level
func (c *Controller) Keys() int { return c.collectedKeys }

// CollectKey counts one key. It returns true exactly once, when the
// collected count reaches the required count.
func (c *Controller) CollectKey() bool {
	if c.requiredKeys == 0 || c.collectedKeys >= c.requiredKeys {
		return false
	}
	c.collectedKeys++
	return c.collectedKeys == c.requiredKeys
}

// BossHealth returns the shared boss health scalar
func (c *Controller) BossHealth() int { return c.bossHealth }

// DamageBoss decrements the boss health scalar and returns what is left
func (c *Controller) DamageBoss(damage int) int {
	c.bossHealth -= damage
	return c.bossHealth
}

// ResetBoss restores the boss health scalar to its starting value
func (c *Controller) ResetBoss() { c.bossHealth = c.config.Boss.Health }

// SetGameOver ends the game. It is a no-op once the game has ended.
func (c *Controller) SetGameOver() bool {
	if c.Terminal() {
		return false
	}
	c.gameOver = true
	c.transitioning = false
	return true
}

// Finish ends the campaign as won, e.g. when the next level has no recipe.
// It is a no-op after game over.
func (c *Controller) Finish() bool {
	if c.gameOver {
		return false
	}
	c.won = true
	c.transitioning = false
	return true
}

// GameOver reports whether the player died
func (c *Controller) GameOver() bool { return c.gameOver }

// Won reports whether every level was cleared
func (c *Controller) Won() bool { return c.won }

// Terminal reports whether the game has ended either way
func (c *Controller) Terminal() bool { return c.gameOver || c.won }

// Stars rates a level score against its target. Three stars meets the
// target; beating it earns more.
func Stars(levelScore, target int) int {
	if target <= 0 {
		return 3
	}
	stars := int(math.Ceil(float64(levelScore) / float64(target) * 3))
	if stars < 0 {
		return 0
	}
	return stars
}
