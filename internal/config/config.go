// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// ZeldaConfig contains all tunable parameters of the game.
// Distances are world pixels, durations milliseconds, speeds pixels per second
// unless noted otherwise.
type ZeldaConfig struct {
	Scene   SceneConfig   `yaml:"scene"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Pickups PickupConfig  `yaml:"pickups"`
	Waves   WaveConfig    `yaml:"waves"`
}

// SceneConfig defines the world size.
type SceneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player character.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartHearts  int     `yaml:"start_hearts"`
	Speed        float64 `yaml:"speed"`       // pixels per tick
	WaterSpeed   float64 `yaml:"water_speed"` // pixels per tick while wading
	InvincibleMs int     `yaml:"invincible_ms"`
	SwordSpeed   float64 `yaml:"sword_speed"`
	SwordSize    float64 `yaml:"sword_size"`
}

// EnemiesConfig groups the per-variant enemy settings.
type EnemiesConfig struct {
	Leever    EnemyConfig `yaml:"leever"`
	RedLeever EnemyConfig `yaml:"red_leever"`
	Octopus   EnemyConfig `yaml:"octopus"`
}

// EnemyConfig defines one enemy variant.
type EnemyConfig struct {
	HP              int      `yaml:"hp"`
	StepMs          int      `yaml:"step_ms"` // 0 = acts every tick
	Range           float64  `yaml:"range"`
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	ProjectileSpeed float64  `yaml:"projectile_speed,omitempty"`
	ProjectileSize  float64  `yaml:"projectile_size,omitempty"`
	Drops           DropOdds `yaml:"drops"`
}

// DropOdds holds 1-in-N chances for each pickup on death. 0 disables the drop.
type DropOdds struct {
	Heart    int `yaml:"heart"`
	BlueRing int `yaml:"blue_ring"`
	Triforce int `yaml:"triforce"`
}

// PickupConfig defines pickup and effect timings.
type PickupConfig struct {
	Size            float64 `yaml:"size"`
	BlinkAfterMs    int     `yaml:"blink_after_ms"`
	ExpireAfterMs   int     `yaml:"expire_after_ms"`
	BoostDurationMs int     `yaml:"boost_duration_ms"`
	CloudMs         int     `yaml:"cloud_ms"`
}

// WaveConfig defines wave composition and enemy placement.
type WaveConfig struct {
	Roll                 int     `yaml:"roll"`             // enemy kind roll is Intn(Roll)
	RedLeeverAfter       int     `yaml:"red_leever_after"` // red leevers need wave > this
	OctopusAfter         int     `yaml:"octopus_after"`    // octopuses need wave > this
	SpawnMargin          float64 `yaml:"spawn_margin"`
	MinPlayerDistance    float64 `yaml:"min_player_distance"`
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
	Script               string  `yaml:"script,omitempty"` // optional Lua wave rule
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
