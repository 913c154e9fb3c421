package config

import "time"

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display  DisplayConfig  `json:"display"`
	Player   PlayerConfig   `json:"player"`
	Scoring  ScoringConfig  `json:"scoring"`
	Effects  EffectsConfig  `json:"effects"`
	Gesture  GestureConfig  `json:"gesture"`
	Movement MovementConfig `json:"movement"`
	Attack   AttackConfig   `json:"attack"`
	Lifetime LifetimeConfig `json:"lifetime"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PlayerConfig struct {
	StartingLives int `json:"startingLives"`
}

type ScoringConfig struct {
	HostileReward    int `json:"hostileReward"`
	LevelUpThreshold int `json:"levelUpThreshold"`
	LevelUpIncrement int `json:"levelUpIncrement"`
	ThemeCount       int `json:"themeCount"` // Levels wrap over this many backgrounds
}

type EffectsConfig struct {
	HitMarkerMs      int     `json:"hitMarkerMs"`
	HitRadius        float64 `json:"hitRadius"`
	AttackEffectMs   int     `json:"attackEffectMs"`
	PlayerHitFlashMs int     `json:"playerHitFlashMs"`
	ReloadFlashMs    int     `json:"reloadFlashMs"`
}

type GestureConfig struct {
	ShortPressMs   int     `json:"shortPressMs"`
	FireCooldownMs int     `json:"fireCooldownMs"`
	SwipeDistance  float64 `json:"swipeDistance"` // Upward drag (pixels) that triggers reload
	TapSlop        float64 `json:"tapSlop"`       // Max drag (pixels) still counted as a tap
}

type MovementConfig struct {
	PauseChance     float64 `json:"pauseChance"` // Per tick
	PauseMinMs      int     `json:"pauseMinMs"`
	PauseMaxMs      int     `json:"pauseMaxMs"`
	ReverseOnResume bool    `json:"reverseOnResume"`
	ReverseChance   float64 `json:"reverseChance"`
}

type AttackConfig struct {
	SpawnShotMinMs  int `json:"spawnShotMinMs"`
	SpawnShotMaxMs  int `json:"spawnShotMaxMs"`
	FirstShotMinMs  int `json:"firstShotMinMs"`
	FirstShotMaxMs  int `json:"firstShotMaxMs"`
	IntervalMinMs   int `json:"intervalMinMs"`
	IntervalMaxMs   int `json:"intervalMaxMs"`
	TelegraphLeadMs int `json:"telegraphLeadMs"`
	FlashPeriodMs   int `json:"flashPeriodMs"`
}

type LifetimeConfig struct {
	TransformDelayMs int `json:"transformDelayMs"`
	PickupLifespanMs int `json:"pickupLifespanMs"`
}

// Ms converts a millisecond config value to a duration
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// DefaultTuning returns the values shipped in configs/tuning.json
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Display: DisplayConfig{
			ScreenWidth:  400,
			ScreenHeight: 640,
			Scale:        1,
			Framerate:    60,
		},
		Player: PlayerConfig{StartingLives: 10},
		Scoring: ScoringConfig{
			HostileReward:    10,
			LevelUpThreshold: 50,
			LevelUpIncrement: 50,
			ThemeCount:       4,
		},
		Effects: EffectsConfig{
			HitMarkerMs:      100,
			HitRadius:        25,
			AttackEffectMs:   500,
			PlayerHitFlashMs: 200,
			ReloadFlashMs:    500,
		},
		Gesture: GestureConfig{
			ShortPressMs:   200,
			FireCooldownMs: 200,
			SwipeDistance:  50,
			TapSlop:        10,
		},
		Movement: MovementConfig{
			PauseChance:     0.005,
			PauseMinMs:      1000,
			PauseMaxMs:      2000,
			ReverseOnResume: true,
			ReverseChance:   0.4,
		},
		Attack: AttackConfig{
			SpawnShotMinMs:  2000,
			SpawnShotMaxMs:  5000,
			FirstShotMinMs:  2000,
			FirstShotMaxMs:  3000,
			IntervalMinMs:   1000,
			IntervalMaxMs:   3000,
			TelegraphLeadMs: 750,
			FlashPeriodMs:   125,
		},
		Lifetime: LifetimeConfig{
			TransformDelayMs: 1000,
			PickupLifespanMs: 3000,
		},
	}
}
