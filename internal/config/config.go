// Package config provides YAML-based gameplay tuning with embedded
// defaults for the cabinet.
package config

import "fmt"

// GameConfig holds the pacing dials the simulation honors. A zero
// field means "keep the built-in default", so a tuning file may set a
// single dial and leave the rest alone.
type GameConfig struct {
	StartLives       int `yaml:"start_lives"`        // lives on a fresh credit
	DemoLives        int `yaml:"demo_lives"`         // lives in attract mode
	ExtraLifeScore   int `yaml:"extra_life_score"`   // bonus cannon threshold
	BulletCooldown   int `yaml:"bullet_cooldown"`    // frames added per shot resolved
	RespawnFrames    int `yaml:"respawn_frames"`     // invulnerable spawn-in
	MysteryFirstWait int `yaml:"mystery_first_wait"` // seconds before the first saucer
	MysteryWait      int `yaml:"mystery_wait"`       // seconds between saucers
}

// Validate reports the first nonsensical dial. Zero is always valid;
// it defers to the default.
func (c GameConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"start_lives", c.StartLives},
		{"demo_lives", c.DemoLives},
		{"extra_life_score", c.ExtraLifeScore},
		{"bullet_cooldown", c.BulletCooldown},
		{"respawn_frames", c.RespawnFrames},
		{"mystery_first_wait", c.MysteryFirstWait},
		{"mystery_wait", c.MysteryWait},
	}
	for _, ck := range checks {
		if ck.value < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d", ck.name, ck.value)
		}
	}
	return nil
}
