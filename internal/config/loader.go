package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "zelda.yaml"

// MaxHearts is the heart cap of the player; start_hearts may not exceed it.
const MaxHearts = 5

// LoadZelda loads the game configuration.
// Search order: customPath -> ~/.zelda/configs/zelda.yaml -> ./configs/zelda.yaml -> embedded default
//
// Missing keys in a file keep their default values.
func LoadZelda(customPath string) (ZeldaConfig, error) {
	cfg := DefaultZeldaConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, Validate(cfg)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultZeldaConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if Validate(candidate) == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultZeldaYAML, &cfg); err != nil {
		return DefaultZeldaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zelda", "configs", filename)
}

// ApplyZeldaPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config unchanged.
func ApplyZeldaPreset(cfg *ZeldaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.InvincibleMs = cfg.Player.InvincibleMs * 3 / 2
		cfg.Enemies.Leever.StepMs = cfg.Enemies.Leever.StepMs * 3 / 2
		cfg.Enemies.RedLeever.StepMs = cfg.Enemies.RedLeever.StepMs * 3 / 2
		cfg.Enemies.Octopus.ProjectileSpeed *= 0.75
	case DifficultyHard:
		if cfg.Player.StartHearts > 3 {
			cfg.Player.StartHearts = 3
		}
		cfg.Player.InvincibleMs /= 2
		cfg.Enemies.Leever.StepMs = cfg.Enemies.Leever.StepMs * 2 / 3
		cfg.Enemies.RedLeever.StepMs = cfg.Enemies.RedLeever.StepMs * 2 / 3
		cfg.Enemies.Octopus.ProjectileSpeed *= 1.5
	}
}

// Validate reports values the simulation cannot run with.
func Validate(cfg ZeldaConfig) error {
	var errs []error
	if cfg.Scene.Width <= 0 || cfg.Scene.Height <= 0 {
		errs = append(errs, errors.New("scene size must be positive"))
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if cfg.Player.StartHearts < 1 || cfg.Player.StartHearts > MaxHearts {
		errs = append(errs, fmt.Errorf("player.start_hearts must be within 1..%d", MaxHearts))
	}
	if cfg.Player.Speed <= 0 || cfg.Player.WaterSpeed <= 0 {
		errs = append(errs, errors.New("player speeds must be positive"))
	}
	if cfg.Player.InvincibleMs < 0 {
		errs = append(errs, errors.New("player.invincible_ms must not be negative"))
	}
	for _, enemy := range []struct {
		name string
		cfg  EnemyConfig
	}{
		{"leever", cfg.Enemies.Leever},
		{"red_leever", cfg.Enemies.RedLeever},
		{"octopus", cfg.Enemies.Octopus},
	} {
		name, e := enemy.name, enemy.cfg
		if e.HP < 1 {
			errs = append(errs, fmt.Errorf("enemies.%s.hp must be at least 1", name))
		}
		if e.StepMs < 0 {
			errs = append(errs, fmt.Errorf("enemies.%s.step_ms must not be negative", name))
		}
		if e.Width <= 0 || e.Height <= 0 {
			errs = append(errs, fmt.Errorf("enemies.%s size must be positive", name))
		}
	}
	if cfg.Waves.Roll < 1 {
		errs = append(errs, errors.New("waves.roll must be at least 1"))
	}
	if cfg.Waves.MaxPlacementAttempts < 1 {
		errs = append(errs, errors.New("waves.max_placement_attempts must be at least 1"))
	}
	if 2*cfg.Waves.SpawnMargin >= cfg.Scene.Height {
		errs = append(errs, errors.New("waves.spawn_margin leaves no room to spawn"))
	}
	return errors.Join(errs...)
}
