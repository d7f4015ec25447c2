package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyquest/internal/application/game"
	"github.com/younwookim/skyquest/internal/application/replay"
	"github.com/younwookim/skyquest/internal/application/scene"
	"github.com/younwookim/skyquest/internal/application/scene/playing"
	"github.com/younwookim/skyquest/internal/application/scene/tutorial"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
	"github.com/younwookim/skyquest/internal/infrastructure/storage"
)

var (
	flagWatch        bool
	flagRecord       string
	flagAutoRecord   bool
	flagSeed         int64
	flagSkipTutorial bool
	flagScale        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play.

Controls:
  Arrows / A D       - Move
  Up / W / Space     - Jump (double jump once unlocked)
  X / J              - Attack
  Esc / P            - Pause
  Space              - Restart after the run ends

Examples:
  game play
  game play --seed 42 --record run.json
  game play --config ./configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config files on change (levels apply from the next level)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record run.json)")
	playCmd.Flags().BoolVar(&flagAutoRecord, "auto-record", false, "Record input to a timestamped file")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagSkipTutorial, "skip-tutorial", false, "Skip the intro screen")
	playCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)

	cfg, loader, err := loadConfig(flagConfigDir)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var reloads <-chan *config.GameConfig
	if flagWatch {
		if flagConfigDir == "" {
			return fmt.Errorf("--watch requires --config")
		}
		watcher, err := config.NewWatcher(loader)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
		reloads = watcher.Updates
		go logReloadErrors(logger, watcher.Errors)
		logger.Info("watching config", "dir", loader.BasePath())
	}

	recordPath := flagRecord
	if recordPath == "" && flagAutoRecord {
		recordPath = replay.GenerateFilename()
	}

	opts := playing.Options{
		Config:     cfg,
		Seed:       flagSeed,
		RecordPath: recordPath,
		Logger:     logger,
		Reloads:    reloads,
		OnFinish:   saveRunFunc(store, logger),
	}

	w, h := int(cfg.Tuning.World.Width), int(cfg.Tuning.World.Height)
	first := firstScene(store, opts, flagSkipTutorial, logger)

	g := game.New(first, w, h, game.WithLogger(logger), game.WithTPS(cfg.Tuning.World.TicksPerSecond))
	defer g.Close()

	scale := flagScale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle("Sky Quest")
	ebiten.SetTPS(cfg.Tuning.World.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// firstScene shows the tutorial until it has been dismissed once
func firstScene(store *storage.Store, opts playing.Options, skip bool, logger *log.Logger) scene.Scene {
	newPlaying := func() scene.Scene { return playing.New(opts) }

	seen, err := store.TutorialSeen()
	if err != nil {
		logger.Warn("cannot read tutorial flag", "err", err)
	}
	if seen || skip {
		return newPlaying()
	}

	w, h := int(opts.Config.Tuning.World.Width), int(opts.Config.Tuning.World.Height)
	return tutorial.New(newPlaying, func() {
		if err := store.MarkTutorialSeen(); err != nil {
			logger.Warn("cannot save tutorial flag", "err", err)
		}
	}, w, h)
}

// saveRunFunc persists finished runs
func saveRunFunc(store *storage.Store, logger *log.Logger) func(playing.Summary) {
	return func(s playing.Summary) {
		_, err := store.SaveRun(storage.Run{
			RunID:        s.RunID,
			Seed:         s.Seed,
			Score:        s.Score,
			Level:        s.Level,
			Achievements: s.Achievements,
			Won:          s.Won,
			Ticks:        s.Ticks,
		})
		if err != nil {
			logger.Error("failed to save run", "err", err)
			return
		}
		logger.Info("run saved", "run", s.RunID, "score", s.Score, "won", s.Won)
	}
}

func logReloadErrors(logger *log.Logger, errs <-chan error) {
	for err := range errs {
		logger.Warn("config reload failed", "err", err)
	}
}
