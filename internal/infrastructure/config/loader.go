package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	TuningFile = "tuning.json"
	LevelsFile = "levels.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Levels *LevelSet
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads and validates tuning.json
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, TuningFile)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", TuningFile, err)
	}

	var cfg Tuning
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", TuningFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadLevels loads and validates levels.yaml
func (l *Loader) LoadLevels() (*LevelSet, error) {
	data, err := fs.ReadFile(l.fsys, LevelsFile)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", LevelsFile, err)
	}

	var set LevelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", LevelsFile, err)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return &set, nil
}

// LoadAll loads tuning and levels and checks them against each other
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Tuning: tuning,
		Levels: levels,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
