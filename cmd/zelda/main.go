// zelda is a top-down action game for the terminal: survive waves of
// enemies with a thrown sword.
//
// Usage:
//
//	zelda play              - Play on the title screen
//	zelda play --level 2    - Start level 2 directly
//	zelda levels            - List available levels
//	zelda scores            - Show high scores
//	zelda serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal or hard
//	--tick <ms>          - Milliseconds per simulation tick (default: 20)
//	--hold <ms>          - Milliseconds a key stays held without auto-repeat
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Scores database (default: ~/.zelda/scores.db)
//	--levels <dir>       - Load levels from a directory instead of the built-in set
//	--waves <file.lua>   - Lua script deciding wave composition
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTick       int
	flagHoldWindow int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagWaves      string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zelda",
	Short: "TUI Zelda - survive the waves in your terminal",
	Long: `TUI Zelda is a top-down action game played in the terminal.
Pick a level, throw your sword at leevers and octopuses, collect what they
drop and see how many waves you can clear.

Available commands:
  play     - Play the game
  levels   - List available levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  zelda play
  zelda play --level 3 --difficulty hard
  zelda levels --levels ./my-levels
  zelda scores --interactive
  zelda serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagTick, "tick", 20, "Milliseconds simulated per tick")
	pf.IntVar(&flagHoldWindow, "hold", 250, "Milliseconds a key counts as held after a press")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.zelda/scores.db", "Path to scores database")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	pf.StringVar(&flagWaves, "waves", "", "Lua script deciding wave composition")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
