package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *TuningConfig
	Spawns *SpawnConfig
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Tuning: DefaultTuning(),
		Spawns: DefaultSpawns(),
	}
}

// Loader loads game configuration files using fs.FS interface
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

// LoadTuning loads tuning.json
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	cfg := DefaultTuning()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}

	return cfg, nil
}

// LoadSpawns loads and validates spawns.yaml
func (l *Loader) LoadSpawns() (*SpawnConfig, error) {
	data, err := fs.ReadFile(l.fsys, "spawns.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read spawns.yaml: %w", err)
	}

	var cfg SpawnConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse spawns.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spawns.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (tuning, spawns)
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	spawns, err := l.LoadSpawns()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Spawns: spawns,
	}, nil
}
