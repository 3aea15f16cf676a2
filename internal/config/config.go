// Package config provides YAML-based configuration for the game rules
// and UI settings.
package config

// Config contains all user-tunable settings.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	UI    UIConfig    `yaml:"ui"`
}

// RulesConfig holds the game-rule constants. The board stays 4x4; only
// the winning tile and the spawn split are tunable.
type RulesConfig struct {
	// WinningTile ends a classic game when any cell reaches it.
	WinningTile int `yaml:"winning_tile"`

	// SpawnFourProb is the probability (0.0-1.0) that a spawned tile is
	// a 4 instead of a 2.
	SpawnFourProb float64 `yaml:"spawn_four_prob"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// TickRate is the simulation rate in frames per second.
	TickRate int `yaml:"tick_rate"`
}

// Normalize clamps nonsensical values back to the defaults: the winning
// tile must be a power of two of at least 8, the spawn probability must
// lie in [0, 1], and the tick rate must be positive.
func (c *Config) Normalize() {
	def := Default()

	wt := c.Rules.WinningTile
	if wt < 8 || wt&(wt-1) != 0 {
		c.Rules.WinningTile = def.Rules.WinningTile
	}
	if c.Rules.SpawnFourProb < 0 || c.Rules.SpawnFourProb > 1 {
		c.Rules.SpawnFourProb = def.Rules.SpawnFourProb
	}
	if c.UI.TickRate <= 0 {
		c.UI.TickRate = def.UI.TickRate
	}
}
