package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zelda/internal/config"
	"github.com/vovakirdan/tui-zelda/internal/games/zelda"
	"github.com/vovakirdan/tui-zelda/internal/games/zelda/levels"
	"github.com/vovakirdan/tui-zelda/internal/platform/tui"
	"github.com/vovakirdan/tui-zelda/internal/scripting"
	"github.com/vovakirdan/tui-zelda/internal/storage"
)

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "zelda",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.zelda/zelda.log for appending. The terminal belongs
// to Bubble Tea while playing.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".zelda")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "zelda.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.ZeldaConfig, error) {
	cfg, err := config.LoadZelda(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyZeldaPreset(&cfg, preset)
	}
	return cfg, nil
}

// levelLoader returns the level source selected by --levels.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewDirLoader(flagLevelsDir)
	}
	return levels.Builtin()
}

// waveScript returns the Lua wave rule to load: --waves, then waves.script
// from the config file. Empty means the built-in rule.
func waveScript(cfg config.ZeldaConfig) string {
	if flagWaves != "" {
		return flagWaves
	}
	return cfg.Waves.Script
}

// gameFactory builds fresh games sharing one config. The returned cleanup
// releases the wave script, if any.
func gameFactory(logger *log.Logger) (func() tui.Game, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	loader := levelLoader()

	newGame := func() *zelda.Game {
		g := zelda.New(cfg)
		g.SetLogger(logger)
		g.SetLevels(loader)
		return g
	}

	script := waveScript(cfg)
	if script == "" {
		return func() tui.Game { return newGame() }, func() {}, nil
	}

	// Fail early on a broken script.
	probe, err := scripting.NewWaveRule(script)
	if err != nil {
		return nil, nil, err
	}
	probe.Close()

	// Lua states are single-goroutine: one per game.
	var (
		mu    sync.Mutex
		rules []*scripting.WaveRule
	)
	factory := func() tui.Game {
		g := newGame()
		rule, err := scripting.NewWaveRule(script)
		if err != nil {
			logger.Warn("wave script unavailable, using default waves", "err", err)
			return g
		}
		mu.Lock()
		rules = append(rules, rule)
		mu.Unlock()
		g.SetWaveRule(rule)
		return g
	}
	cleanup := func() {
		mu.Lock()
		defer mu.Unlock()
		for _, r := range rules {
			r.Close()
		}
	}
	return factory, cleanup, nil
}

// openStore opens the score database. A failure is logged and play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	if v, err := store.SchemaVersion(context.Background()); err == nil {
		logger.Debug("scores database ready", "path", flagDBPath, "schema", v)
	}
	return store
}
