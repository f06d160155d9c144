package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yamlContent := `
grid:
  width: 6
  height: 8
cards:
  min_power: 2
  max_power: 7
  strong_min_power: 5
  hand_size: 4
gates:
  reward_choices: 3
difficulties:
  normal:
    max_points: 500
    decay_per_second: 3
    store_uses: 1
    minimap_radius: 2
    score_multiplier: 4
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Grid.Width != 6 || cfg.Grid.Height != 8 {
		t.Errorf("grid = %dx%d, want 6x8", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Cards.HandSize != 4 {
		t.Errorf("hand_size = %d, want 4", cfg.Cards.HandSize)
	}
	if cfg.Gates.RewardChoices != 3 {
		t.Errorf("reward_choices = %d, want 3", cfg.Gates.RewardChoices)
	}

	normal := cfg.Difficulty(DifficultyNormal)
	if normal.MaxPoints != 500 || normal.ScoreMultiplier != 4 {
		t.Errorf("normal preset = %+v", normal)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/path/towergate.yaml")
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a mapping"), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and DefaultConfig must agree, otherwise the file
	// search order changes behavior silently.
	want := DefaultConfig()

	var got GameConfig
	if err := yaml.Unmarshal(defaultTowergateYAML, &got); err != nil {
		t.Fatalf("parsing embedded default: %v", err)
	}

	if got.Grid != want.Grid {
		t.Errorf("grid = %+v, want %+v", got.Grid, want.Grid)
	}
	if got.Cards != want.Cards {
		t.Errorf("cards = %+v, want %+v", got.Cards, want.Cards)
	}
	if got.Gates != want.Gates {
		t.Errorf("gates = %+v, want %+v", got.Gates, want.Gates)
	}
	for _, preset := range Presets {
		if got.Difficulties[string(preset)] != want.Difficulties[string(preset)] {
			t.Errorf("%s = %+v, want %+v",
				preset, got.Difficulties[string(preset)], want.Difficulties[string(preset)])
		}
	}
}

func TestDifficultyFallback(t *testing.T) {
	cfg := GameConfig{
		Difficulties: map[string]DifficultyConfig{
			"hard": {MaxPoints: 123},
		},
	}

	if got := cfg.Difficulty(DifficultyHard); got.MaxPoints != 123 {
		t.Errorf("defined preset MaxPoints = %d, want 123", got.MaxPoints)
	}

	want := DefaultConfig().Difficulties["normal"]
	if got := cfg.Difficulty(DifficultyNormal); got != want {
		t.Errorf("missing preset = %+v, want default %+v", got, want)
	}
}

func TestValidPreset(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"easy", true},
		{"normal", true},
		{"hard", true},
		{"extreme", false},
		{"", false},
		{"Normal", false},
	}

	for _, tt := range tests {
		if got := ValidPreset(tt.name); got != tt.want {
			t.Errorf("ValidPreset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
