package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration: classic rules,
// 60 fps.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			WinningTile:   2048,
			SpawnFourProb: 0.10,
		},
		UI: UIConfig{
			TickRate: 60,
		},
	}
}
