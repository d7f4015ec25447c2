// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/younwookim/skyquest/internal/application/replay"
	"github.com/younwookim/skyquest/internal/application/scene"
	"github.com/younwookim/skyquest/internal/application/state"
	"github.com/younwookim/skyquest/internal/application/system"
	"github.com/younwookim/skyquest/internal/application/world"
	"github.com/younwookim/skyquest/internal/infrastructure/config"
)

// messageTicks is how long a HUD message stays on screen
const messageTicks = 120

// Summary describes a finished run
type Summary struct {
	RunID        string
	Seed         int64
	Score        int
	Level        int
	Achievements int
	Won          bool
	Ticks        int
}

// Options configures a Playing scene
type Options struct {
	Config *config.GameConfig

	// Seed fixes the run seed; zero picks a time-based seed
	Seed int64

	// RecordPath enables input recording when not empty
	RecordPath string

	Logger *log.Logger

	// Reloads delivers hot-reloaded configuration
	Reloads <-chan *config.GameConfig

	// OnFinish is called once when the run ends
	OnFinish func(Summary)
}

type message struct {
	text  string
	ticks int
}

// Playing is the main gameplay scene
type Playing struct {
	opts   Options
	world  *world.World
	input  *system.InputSystem
	logger *log.Logger
	runID  string
	paused bool

	messages []message
	complete *world.Event

	recorder *replay.Recorder
	finished bool

	// recordBase and attempt number the recordings of restarted runs
	recordBase string
	attempt    int

	screenW int
	screenH int
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(opts Options) *Playing {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tuning := opts.Config.Tuning
	p := &Playing{
		opts:    opts,
		world:   world.New(tuning, opts.Config.Levels, seed, world.WithLogger(logger)),
		input:   system.NewInputSystem(),
		logger:  logger,
		screenW: int(tuning.World.Width),
		screenH: int(tuning.World.Height),

		recordBase: opts.RecordPath,
		attempt:    1,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed)
		p.runID = p.recorder.RunID()
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", seed)
	} else {
		p.runID = uuid.NewString()
	}

	p.consumeEvents()
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyReloads()
	p.ageMessages()

	keys := p.input.ReadKeys()
	if p.world.Terminal() {
		if keys.JumpPressed {
			return p.restart(), nil
		}
		return nil, nil
	}

	if keys.PausePressed {
		p.TogglePause()
	}
	if p.paused {
		return nil, nil
	}

	p.step(p.input.Translate(keys))
	return nil, nil // nil = stay on this scene
}

// step advances the world by one tick with the given input
func (p *Playing) step(in system.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.world.Step(in)
	p.consumeEvents()
}

// TogglePause pauses or resumes the simulation
func (p *Playing) TogglePause() {
	if p.world.Terminal() {
		return
	}
	p.paused = !p.paused
}

// State returns the scene's current game state
func (p *Playing) State() state.GameState {
	return state.Derive(p.world, p.paused)
}

func (p *Playing) consumeEvents() {
	for _, evt := range p.world.Events() {
		switch evt.Kind {
		case world.EventLevelStarted:
			p.complete = nil
			p.say(fmt.Sprintf("Level %d Start!", evt.Level))
		case world.EventLevelComplete:
			e := evt
			p.complete = &e
		case world.EventAchievementUnlocked:
			p.say(fmt.Sprintf("Achievement Unlocked: %s - %s", evt.Achievement.Title(), evt.Achievement.Description()))
		case world.EventGameOver, world.EventGameWon:
			p.finish()
		}
	}
}

func (p *Playing) say(text string) {
	p.messages = append(p.messages, message{text: text, ticks: messageTicks})
}

func (p *Playing) ageMessages() {
	kept := p.messages[:0]
	for _, m := range p.messages {
		m.ticks--
		if m.ticks > 0 {
			kept = append(kept, m)
		}
	}
	p.messages = kept
}

// finish stores the recording and reports the run exactly once
func (p *Playing) finish() {
	if p.finished {
		return
	}
	p.finished = true
	p.saveRecording()

	if p.opts.OnFinish != nil {
		p.opts.OnFinish(Summary{
			RunID:        p.runID,
			Seed:         p.world.Seed(),
			Score:        p.world.Score(),
			Level:        p.world.Level(),
			Achievements: len(p.world.Achievements()),
			Won:          p.world.Won(),
			Ticks:        p.world.Tick(),
		})
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", p.opts.RecordPath, "frames", p.recorder.FrameCount())
}

// applyReloads picks up hot-reloaded config. Level recipes apply from the
// next generated level; tuning applies from the next run.
func (p *Playing) applyReloads() {
	if p.opts.Reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.opts.Reloads:
			if !ok {
				p.opts.Reloads = nil
				return
			}
			p.world.SetLevels(cfg.Levels)
			p.opts.Config = cfg
			p.logger.Info("config reloaded")
		default:
			return
		}
	}
}

func (p *Playing) restart() scene.Scene {
	opts := p.opts
	opts.Seed = 0
	attempt := p.attempt + 1
	if p.recordBase != "" {
		opts.RecordPath = attemptPath(p.recordBase, attempt)
	}

	next := New(opts)
	next.recordBase = p.recordBase
	next.attempt = attempt
	return next
}

// attemptPath numbers a recording path, e.g. run.json becomes run_2.json
func attemptPath(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), attempt, ext)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("entering playing scene", "run", p.runID)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Name identifies the scene in logs
func (p *Playing) Name() string { return "playing" }
