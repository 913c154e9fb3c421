package config

import "fmt"

// SpawnConfig is the root config for spawns.yaml
type SpawnConfig struct {
	MaxAlive  int             `yaml:"maxAlive"`
	Levels    []LevelSpawn    `yaml:"levels"`
	Weights   KindWeights     `yaml:"weights"`
	Size      SizeConfig      `yaml:"size"`
	Speed     RangeConfig     `yaml:"speed"` // Pixels per tick
	Lane      RangeConfig     `yaml:"lane"`  // Fraction of field height for the top edge
	CanPause  float64         `yaml:"canPause"`
	Ambiguous AmbiguousConfig `yaml:"ambiguous"`
	Pickup    PickupConfig    `yaml:"pickup"`
}

// LevelSpawn sets the spawn cadence for one level
type LevelSpawn struct {
	Level      int `yaml:"level"`
	IntervalMs int `yaml:"intervalMs"`
}

type KindWeights struct {
	Hostile   int `yaml:"hostile"`
	Neutral   int `yaml:"neutral"`
	Ambiguous int `yaml:"ambiguous"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// AmbiguousConfig controls what an ambiguous NPC resolves into
type AmbiguousConfig struct {
	HostileChance float64 `yaml:"hostileChance"`
	SpeedBoost    float64 `yaml:"speedBoost"`
	ReloadBoost   float64 `yaml:"reloadBoost"` // Multiplier on attack interval, < 1 is faster
}

type PickupConfig struct {
	Chance float64 `yaml:"chance"` // Per neutral that leaves the field unharmed
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// IntervalFor returns the spawn interval for level, falling back to the
// last configured entry
func (c *SpawnConfig) IntervalFor(level int) int {
	interval := 0
	for _, l := range c.Levels {
		if l.Level > level {
			break
		}
		interval = l.IntervalMs
	}
	if interval == 0 && len(c.Levels) > 0 {
		interval = c.Levels[0].IntervalMs
	}
	return interval
}

// Validate checks the spawn table for values the spawner cannot use
func (c *SpawnConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("levels cannot be empty")
	}
	prev := 0
	for _, l := range c.Levels {
		if l.Level <= prev {
			return fmt.Errorf("levels must be ascending, got %d after %d", l.Level, prev)
		}
		if l.IntervalMs <= 0 {
			return fmt.Errorf("level %d: intervalMs must be positive, got %d", l.Level, l.IntervalMs)
		}
		prev = l.Level
	}
	w := c.Weights
	if w.Hostile < 0 || w.Neutral < 0 || w.Ambiguous < 0 {
		return fmt.Errorf("weights cannot be negative")
	}
	if w.Hostile+w.Neutral+w.Ambiguous == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return fmt.Errorf("size must be positive, got %vx%v", c.Size.Width, c.Size.Height)
	}
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("invalid speed range [%v, %v]", c.Speed.Min, c.Speed.Max)
	}
	if c.Lane.Min < 0 || c.Lane.Max > 1 || c.Lane.Max < c.Lane.Min {
		return fmt.Errorf("lane must be within [0, 1], got [%v, %v]", c.Lane.Min, c.Lane.Max)
	}
	for name, p := range map[string]float64{
		"canPause":                c.CanPause,
		"ambiguous.hostileChance": c.Ambiguous.HostileChance,
		"pickup.chance":           c.Pickup.Chance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be a probability, got %v", name, p)
		}
	}
	if c.MaxAlive <= 0 {
		return fmt.Errorf("maxAlive must be positive, got %d", c.MaxAlive)
	}
	return nil
}

// DefaultSpawns returns the values shipped in configs/spawns.yaml
func DefaultSpawns() *SpawnConfig {
	return &SpawnConfig{
		MaxAlive: 6,
		Levels: []LevelSpawn{
			{Level: 1, IntervalMs: 1800},
			{Level: 2, IntervalMs: 1500},
			{Level: 3, IntervalMs: 1200},
			{Level: 4, IntervalMs: 1000},
		},
		Weights:  KindWeights{Hostile: 5, Neutral: 3, Ambiguous: 2},
		Size:     SizeConfig{Width: 50, Height: 50},
		Speed:    RangeConfig{Min: 1.5, Max: 3},
		Lane:     RangeConfig{Min: 0.1, Max: 0.75},
		CanPause: 0.3,
		Ambiguous: AmbiguousConfig{
			HostileChance: 0.5,
			SpeedBoost:    1.5,
			ReloadBoost:   0.6,
		},
		Pickup: PickupConfig{Chance: 0.25, Width: 30, Height: 30},
	}
}
