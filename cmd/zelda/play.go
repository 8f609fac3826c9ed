package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-zelda/internal/core"
	"github.com/vovakirdan/tui-zelda/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the title screen, or directly on a level.

Controls:
  Arrows     - Move
  W/A/S/D    - Throw the sword up/left/down/right
  Space      - Pause / resume
  Esc        - Back to the title (from pause or game over)
  Enter      - Back to the title after game over
  1/2/3      - Pick a level on the title screen
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer invincibility, slower enemies and rocks
  normal - Default tuning
  hard   - Three hearts, short invincibility, faster enemies

Examples:
  zelda play
  zelda play --level 2
  zelda play --difficulty hard --seed 42
  zelda play --config ./my-zelda.yaml --waves ./waves.lua`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start this level directly (1-3)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagLevel < 0 || flagLevel > 3 {
		return fmt.Errorf("--level must be between 1 and 3, got %d", flagLevel)
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	newGame, cleanup, err := gameFactory(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: flagTick,
		HoldWindow:   flagHoldWindow,
		Seed:         flagSeed,
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts = append(opts, tui.WithStore(store))
	}
	if flagLevel > 0 {
		opts = append(opts, tui.WithKeyPress(core.ActionLevel1+core.Action(flagLevel-1)))
	}

	logger.Info("starting", "tick", cfg.TickInterval, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(newGame(), cfg, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
