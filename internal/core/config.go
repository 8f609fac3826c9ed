package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int   // Screen width in characters
	ScreenH      int   // Screen height in characters
	TickInterval int   // Milliseconds simulated by one Step (default 20)
	HoldWindow   int   // Milliseconds a key stays held without auto-repeat
	Seed         int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 20,
		HoldWindow:   250,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Waves cleared in the current run
	Best     int  // Best score seen this session (or loaded from storage)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Playing  bool // Whether a run is in progress (running or paused)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RunEnded is set on the tick where a run was scored; RunScore holds
	// that run's score and RunLevel the level it was played on.
	RunEnded bool
	RunScore int
	RunLevel string
}
