package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the canonical cabinet tuning.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		StartLives:       3,
		DemoLives:        2,
		ExtraLifeScore:   1500,
		BulletCooldown:   20,
		RespawnFrames:    90,
		MysteryFirstWait: 35,
		MysteryWait:      25,
	}
}

// DefaultYAML returns the embedded default tuning file, handy for
// writing a starter config a player can edit.
func DefaultYAML() []byte {
	return defaultGameYAML
}
