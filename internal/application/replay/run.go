package replay

import (
	"github.com/younwookim/skyquest/internal/application/progress"
	"github.com/younwookim/skyquest/internal/application/world"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// Result summarizes a headless re-simulation
type Result struct {
	RunID        string
	Frames       int
	Score        int
	Level        int
	Health       int
	GameOver     bool
	Won          bool
	Achievements []progress.AchievementID
}

// Run re-simulates a replay without rendering. It stops early once the
// game ends.
func Run(data ReplayData, tuning *config.Tuning, levels *config.LevelSet, opts ...world.Option) Result {
	w := world.New(tuning, levels, data.Seed, opts...)
	replayer := NewReplayer(data)

	for !w.Terminal() {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		w.Step(in)
	}

	return Result{
		RunID:        data.RunID,
		Frames:       replayer.CurrentFrame(),
		Score:        w.Score(),
		Level:        w.Level(),
		Health:       w.Player().Health,
		GameOver:     w.GameOver(),
		Won:          w.Won(),
		Achievements: w.Achievements(),
	}
}
