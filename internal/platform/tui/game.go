package tui

import (
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// Game is the contract between a simulation and the terminal platform.
// Games must be deterministic given the same seed and inputs.
type Game interface {
	// ID returns the identifier used for score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset initializes the game with the runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// BestScorer is implemented by games that show a best score loaded from storage.
type BestScorer interface {
	SetBestScore(best int)
}

// ScoreStore persists finished runs. *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(gameID, level string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}
