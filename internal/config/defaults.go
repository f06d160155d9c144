package config

import _ "embed"

//go:embed defaults/towergate.yaml
var defaultTowergateYAML []byte

// DefaultConfig returns the built-in towergate configuration.
// Used as the last-resort fallback and as the source of preset values
// for config files that omit a difficulty.
func DefaultConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Cards: CardsConfig{
			MinPower:       1,
			MaxPower:       9,
			StrongMinPower: 6,
			HandSize:       10,
		},
		Gates: GatesConfig{
			RewardChoices: 2,
		},
		Difficulties: map[string]DifficultyConfig{
			"easy": {
				MaxPoints:       1500,
				DecayPerSecond:  1,
				StoreUses:       5,
				MinimapRadius:   4,
				ScoreMultiplier: 1,
			},
			"normal": {
				MaxPoints:       1000,
				DecayPerSecond:  1,
				StoreUses:       3,
				MinimapRadius:   3,
				ScoreMultiplier: 2,
			},
			"hard": {
				MaxPoints:       800,
				DecayPerSecond:  2,
				StoreUses:       2,
				MinimapRadius:   2,
				ScoreMultiplier: 3,
			},
		},
	}
}
