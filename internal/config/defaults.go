package config

import (
	_ "embed"
)

//go:embed defaults/zelda.yaml
var defaultZeldaYAML []byte

// DefaultZeldaConfig returns the built-in configuration.
func DefaultZeldaConfig() ZeldaConfig {
	return ZeldaConfig{
		Scene: SceneConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Width:        48,
			Height:       48,
			StartHearts:  5,
			Speed:        10,
			WaterSpeed:   5,
			InvincibleMs: 2000,
			SwordSpeed:   550,
			SwordSize:    28,
		},
		Enemies: EnemiesConfig{
			Leever: EnemyConfig{
				HP:     1,
				StepMs: 3000,
				Range:  80,
				Width:  48,
				Height: 48,
				Drops:  DropOdds{Heart: 9, BlueRing: 18, Triforce: 50},
			},
			RedLeever: EnemyConfig{
				HP:     2,
				StepMs: 1500,
				Range:  120,
				Width:  48,
				Height: 48,
				Drops:  DropOdds{Heart: 7, BlueRing: 14, Triforce: 50},
			},
			Octopus: EnemyConfig{
				HP:              1,
				Width:           56,
				Height:          56,
				ProjectileSpeed: 300,
				ProjectileSize:  16,
				Drops:           DropOdds{Heart: 8, BlueRing: 16, Triforce: 50},
			},
		},
		Pickups: PickupConfig{
			Size:            36,
			BlinkAfterMs:    3000,
			ExpireAfterMs:   6000,
			BoostDurationMs: 5000,
			CloudMs:         500,
		},
		Waves: WaveConfig{
			Roll:                 5,
			RedLeeverAfter:       2,
			OctopusAfter:         5,
			SpawnMargin:          50,
			MinPlayerDistance:    100,
			MaxPlacementAttempts: 64,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultZeldaYAML
}
