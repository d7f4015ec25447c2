package config

// LevelSet is the root config for levels.yaml
type LevelSet struct {
	Levels []LevelRecipe `yaml:"levels"`
}

// LevelRecipe describes the fixed population of one level.
// Coordinates are absolute world coordinates.
type LevelRecipe struct {
	Name            string               `yaml:"name"`
	Platforms       []PlatformSpec       `yaml:"platforms"`
	MovingPlatforms []MovingPlatformSpec `yaml:"moving_platforms"`
	Enemies         []EnemySpec          `yaml:"enemies"`
	Coins           int                  `yaml:"coins"`
	Keys            int                  `yaml:"keys"`
	PowerUps        []PowerUpSpec        `yaml:"power_ups"`
}

type PlatformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

type MovingPlatformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Range float64 `yaml:"range"`
	Speed float64 `yaml:"speed"`
}

type EnemySpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type PowerUpSpec struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Count returns the number of levels
func (s *LevelSet) Count() int {
	return len(s.Levels)
}

// Recipe returns the recipe for a 1-based level number
func (s *LevelSet) Recipe(level int) (*LevelRecipe, bool) {
	if level < 1 || level > len(s.Levels) {
		return nil, false
	}
	return &s.Levels[level-1], true
}

// HasBoss reports whether the recipe spawns a boss
func (r *LevelRecipe) HasBoss() bool {
	for _, e := range r.Enemies {
		if e.Kind == "boss" {
			return true
		}
	}
	return false
}
