package config

// DefaultTuning returns the built-in tuning. It mirrors cmd/game/configs/tuning.json.
func DefaultTuning() *Tuning {
	return &Tuning{
		World: WorldConfig{
			Width:          800,
			Height:         600,
			TicksPerSecond: 60,
			Gravity:        0.5,
			PlatformHeight: 20,
		},
		Player: PlayerConfig{
			Width:            40,
			Height:           40,
			MaxHealth:        100,
			MoveSpeed:        5,
			JumpForce:        -12,
			DoubleJumpFactor: 0.8,
			InvulnTicks:      60,
			SpawnLift:        10,
		},
		Attack: AttackConfig{
			Reach:      60,
			Cooldown:   20,
			Damage:     1,
			BossDamage: 10,
			Sweeps:     12,
		},
		Enemies: EnemiesConfig{
			Size:            30,
			PatrolSpeed:     2,
			GroundHealth:    1,
			FlyingHealth:    3,
			FlyingAmplitude: 100,
			FlyingFrequency: 0.005,
			ContactDamage:   20,
			StompDamage:     1,
			StompBounce:     0.5,
		},
		Boss: BossConfig{
			Size:             80,
			Health:           10,
			AttackInterval:   120,
			ProjectileSpeed:  5,
			ProjectileRadius: 5,
			ProjectileDamage: 10,
		},
		PowerUps: PowerUpConfig{
			Size:            30,
			SpeedMultiplier: 1.5,
			SpeedTicks:      300,
			StrengthTicks:   180,
		},
		Pickups: PickupConfig{
			CoinSize:     20,
			KeyWidth:     20,
			KeyHeight:    30,
			CoinTries:    100,
			CoinFloorGap: 100,
		},
		Scoring: ScoringConfig{
			Coin:                 10,
			Ground:               10,
			Flying:               30,
			Boss:                 500,
			LevelTargets:         []int{50, 50, 100, 150, 200},
			TransitionDelayTicks: 120,
		},
		Particles: ParticleConfig{
			Gravity: 0.2,
			Fade:    0.02,
			MinSize: 2,
			MaxSize: 7,
			Spread:  8,
		},
	}
}

// DefaultLevels returns the built-in five-level campaign.
// It mirrors cmd/game/configs/levels.yaml.
func DefaultLevels() *LevelSet {
	maze := make([]PlatformSpec, 0, 8)
	for i := 0; i < 8; i++ {
		maze = append(maze, PlatformSpec{
			X:     float64(i * 100),
			Y:     float64(450 - (i%2)*100),
			Width: 80,
		})
	}

	return &LevelSet{Levels: []LevelRecipe{
		{
			Name: "tutorial",
			Platforms: []PlatformSpec{
				{X: 100, Y: 450, Width: 200},
				{X: 400, Y: 400, Width: 200},
			},
			Enemies: []EnemySpec{
				{Kind: "ground", X: 300, Y: 0},
				{Kind: "ground", X: 500, Y: 0},
			},
			Coins: 5,
			PowerUps: []PowerUpSpec{
				{Type: "doubleJump", X: 200, Y: 400},
			},
		},
		{
			Name: "flying",
			Platforms: []PlatformSpec{
				{X: 100, Y: 400, Width: 150},
				{X: 350, Y: 300, Width: 150},
				{X: 600, Y: 400, Width: 150},
			},
			Enemies: []EnemySpec{
				{Kind: "flying", X: 200, Y: 200},
				{Kind: "flying", X: 400, Y: 300},
				{Kind: "flying", X: 600, Y: 250},
			},
			Coins: 8,
			PowerUps: []PowerUpSpec{
				{Type: "shield", X: 400, Y: 250},
			},
		},
		{
			Name:      "maze",
			Platforms: maze,
			Enemies: []EnemySpec{
				{Kind: "ground", X: 200, Y: 0},
				{Kind: "flying", X: 400, Y: 200},
				{Kind: "ground", X: 600, Y: 0},
			},
			Coins: 12,
			Keys:  3,
			PowerUps: []PowerUpSpec{
				{Type: "speed", X: 300, Y: 200},
				{Type: "strength", X: 500, Y: 300},
			},
		},
		{
			Name: "gauntlet",
			MovingPlatforms: []MovingPlatformSpec{
				{X: 100, Y: 400, Width: 100, Range: 200, Speed: 2},
				{X: 400, Y: 300, Width: 100, Range: 150, Speed: 3},
				{X: 600, Y: 200, Width: 100, Range: 100, Speed: 4},
			},
			Enemies: []EnemySpec{
				{Kind: "flying", X: 200, Y: 150},
				{Kind: "flying", X: 400, Y: 250},
				{Kind: "ground", X: 300, Y: 0},
				{Kind: "ground", X: 500, Y: 0},
			},
			Coins: 15,
			PowerUps: []PowerUpSpec{
				{Type: "doubleJump", X: 200, Y: 300},
				{Type: "shield", X: 600, Y: 200},
			},
		},
		{
			Name: "boss",
			Platforms: []PlatformSpec{
				{X: 200, Y: 400, Width: 400},
				{X: 100, Y: 250, Width: 200},
				{X: 500, Y: 250, Width: 200},
			},
			Enemies: []EnemySpec{
				{Kind: "boss", X: 350, Y: 100},
			},
			PowerUps: []PowerUpSpec{
				{Type: "shield", X: 100, Y: 200},
				{Type: "strength", X: 700, Y: 200},
			},
		},
	}}
}
