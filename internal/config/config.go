// Package config provides YAML-based game configuration loading and
// difficulty presets for the towergate platform.
package config

// GameConfig contains all tunable parameters for towergate.
type GameConfig struct {
	Grid         GridConfig                  `yaml:"grid"`
	Cards        CardsConfig                 `yaml:"cards"`
	Gates        GatesConfig                 `yaml:"gates"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
}

// GridConfig defines the world grid dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CardsConfig defines the card economy parameters.
type CardsConfig struct {
	MinPower       int `yaml:"min_power"`
	MaxPower       int `yaml:"max_power"`
	StrongMinPower int `yaml:"strong_min_power"` // Lower bound for opening-hand powers
	HandSize       int `yaml:"hand_size"`
}

// GatesConfig defines gate protocol parameters.
type GatesConfig struct {
	RewardChoices int `yaml:"reward_choices"`
}

// DifficultyConfig is one named difficulty preset: the point budget, its
// decay rate, the store trade budget, how far the minimap reveals, and the
// multiplier applied to remaining points on a win.
type DifficultyConfig struct {
	MaxPoints       int `yaml:"max_points"`
	DecayPerSecond  int `yaml:"decay_per_second"`
	StoreUses       int `yaml:"store_uses"`
	MinimapRadius   int `yaml:"minimap_radius"`
	ScoreMultiplier int `yaml:"score_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in ascending order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ValidPreset reports whether the name matches a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
