package config

// Tuning is the root config for tuning.json.
// All velocities and accelerations are per tick, durations are in ticks.
type Tuning struct {
	World     WorldConfig    `json:"world"`
	Player    PlayerConfig   `json:"player"`
	Attack    AttackConfig   `json:"attack"`
	Enemies   EnemiesConfig  `json:"enemies"`
	Boss      BossConfig     `json:"boss"`
	PowerUps  PowerUpConfig  `json:"powerUps"`
	Pickups   PickupConfig   `json:"pickups"`
	Scoring   ScoringConfig  `json:"scoring"`
	Particles ParticleConfig `json:"particles"`
}

type WorldConfig struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	TicksPerSecond int     `json:"ticksPerSecond"`
	Gravity        float64 `json:"gravity"`
	PlatformHeight float64 `json:"platformHeight"`
}

type PlayerConfig struct {
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	MaxHealth        int     `json:"maxHealth"`
	MoveSpeed        float64 `json:"moveSpeed"`
	JumpForce        float64 `json:"jumpForce"`        // negative is up
	DoubleJumpFactor float64 `json:"doubleJumpFactor"` // fraction of JumpForce
	InvulnTicks      int     `json:"invulnTicks"`
	SpawnLift        float64 `json:"spawnLift"` // gap above the ground platform on spawn
}

type AttackConfig struct {
	Reach      float64 `json:"reach"`
	Cooldown   int     `json:"cooldown"`
	Damage     int     `json:"damage"`
	BossDamage int     `json:"bossDamage"`
	Sweeps     int     `json:"sweeps"` // particle batches along the hitbox
}

type EnemiesConfig struct {
	Size            float64 `json:"size"`
	PatrolSpeed     float64 `json:"patrolSpeed"`
	GroundHealth    int     `json:"groundHealth"`
	FlyingHealth    int     `json:"flyingHealth"`
	FlyingAmplitude float64 `json:"flyingAmplitude"`
	FlyingFrequency float64 `json:"flyingFrequency"` // radians per millisecond
	ContactDamage   int     `json:"contactDamage"`
	StompDamage     int     `json:"stompDamage"`
	StompBounce     float64 `json:"stompBounce"` // fraction of player JumpForce
}

type BossConfig struct {
	Size             float64 `json:"size"`
	Health           int     `json:"health"`
	AttackInterval   int     `json:"attackInterval"`
	ProjectileSpeed  float64 `json:"projectileSpeed"`
	ProjectileRadius float64 `json:"projectileRadius"`
	ProjectileDamage int     `json:"projectileDamage"` // 0 disables projectile hits
}

type PowerUpConfig struct {
	Size            float64 `json:"size"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	SpeedTicks      int     `json:"speedTicks"`
	StrengthTicks   int     `json:"strengthTicks"`
}

type PickupConfig struct {
	CoinSize     float64 `json:"coinSize"`
	KeyWidth     float64 `json:"keyWidth"`
	KeyHeight    float64 `json:"keyHeight"`
	CoinTries    int     `json:"coinTries"`    // placement retries per coin
	CoinFloorGap float64 `json:"coinFloorGap"` // band above the floor kept free of coins
}

type ScoringConfig struct {
	Coin                 int   `json:"coin"`
	Ground               int   `json:"ground"`
	Flying               int   `json:"flying"`
	Boss                 int   `json:"boss"`
	LevelTargets         []int `json:"levelTargets"`
	TransitionDelayTicks int   `json:"transitionDelayTicks"`
}

type ParticleConfig struct {
	Gravity float64 `json:"gravity"`
	Fade    float64 `json:"fade"`
	MinSize float64 `json:"minSize"`
	MaxSize float64 `json:"maxSize"`
	Spread  float64 `json:"spread"` // initial velocity range per axis
}

// TicksFor converts seconds into ticks at the configured rate
func (t *Tuning) TicksFor(seconds float64) int {
	return int(seconds * float64(t.World.TicksPerSecond))
}

// LevelTarget returns the score delta required to finish a level (1-based).
// Levels beyond the table reuse its last entry.
func (t *Tuning) LevelTarget(level int) int {
	targets := t.Scoring.LevelTargets
	if len(targets) == 0 || level < 1 {
		return 0
	}
	if level > len(targets) {
		return targets[len(targets)-1]
	}
	return targets[level-1]
}
