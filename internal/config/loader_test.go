package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Rules.WinningTile != 2048 {
		t.Errorf("default winning tile = %d, want 2048", cfg.Rules.WinningTile)
	}
	if cfg.Rules.SpawnFourProb != 0.10 {
		t.Errorf("default spawn four prob = %v, want 0.10", cfg.Rules.SpawnFourProb)
	}
	if cfg.UI.TickRate != 60 {
		t.Errorf("default tick rate = %d, want 60", cfg.UI.TickRate)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	cfg.Normalize()

	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	data := []byte("rules:\n  winning_tile: 1024\n  spawn_four_prob: 0.25\nui:\n  tick_rate: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Rules.WinningTile != 1024 {
		t.Errorf("winning tile = %d, want 1024", cfg.Rules.WinningTile)
	}
	if cfg.Rules.SpawnFourProb != 0.25 {
		t.Errorf("spawn four prob = %v, want 0.25", cfg.Rules.SpawnFourProb)
	}
	if cfg.UI.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.UI.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	tests := []struct {
		name string
		in   Config
	}{
		{"non power of two winning tile", Config{Rules: RulesConfig{WinningTile: 1000, SpawnFourProb: 0.1}, UI: UIConfig{TickRate: 60}}},
		{"winning tile too small", Config{Rules: RulesConfig{WinningTile: 4, SpawnFourProb: 0.1}, UI: UIConfig{TickRate: 60}}},
		{"negative probability", Config{Rules: RulesConfig{WinningTile: 2048, SpawnFourProb: -0.5}, UI: UIConfig{TickRate: 60}}},
		{"probability above one", Config{Rules: RulesConfig{WinningTile: 2048, SpawnFourProb: 1.5}, UI: UIConfig{TickRate: 60}}},
		{"zero tick rate", Config{Rules: RulesConfig{WinningTile: 2048, SpawnFourProb: 0.1}, UI: UIConfig{TickRate: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()

			wt := cfg.Rules.WinningTile
			if wt < 8 || wt&(wt-1) != 0 {
				t.Errorf("normalized winning tile %d is still invalid", wt)
			}
			if cfg.Rules.SpawnFourProb < 0 || cfg.Rules.SpawnFourProb > 1 {
				t.Errorf("normalized probability %v is still invalid", cfg.Rules.SpawnFourProb)
			}
			if cfg.UI.TickRate <= 0 {
				t.Errorf("normalized tick rate %d is still invalid", cfg.UI.TickRate)
			}
		})
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := Config{
		Rules: RulesConfig{WinningTile: 64, SpawnFourProb: 0.5},
		UI:    UIConfig{TickRate: 30},
	}
	cfg.Normalize()

	if cfg.Rules.WinningTile != 64 || cfg.Rules.SpawnFourProb != 0.5 || cfg.UI.TickRate != 30 {
		t.Errorf("Normalize changed valid values: %+v", cfg)
	}
}
