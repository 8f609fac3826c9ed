package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zelda/internal/games/zelda"
	"github.com/vovakirdan/tui-zelda/internal/storage"
)

const testWaveScript = "function tally(wave) return { leever = wave } end\n"

// useFlags sets the wave-related globals for one test.
func useFlags(t *testing.T, configPath, waves string) {
	t.Helper()
	oldConfig, oldWaves, oldDifficulty := flagConfig, flagWaves, flagDifficulty
	flagConfig, flagWaves, flagDifficulty = configPath, waves, ""
	t.Cleanup(func() {
		flagConfig, flagWaves, flagDifficulty = oldConfig, oldWaves, oldDifficulty
	})
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGameFactoryReadsConfigScript(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.lua")
	script := writeFile(t, dir, "waves.lua", testWaveScript)

	tests := []struct {
		name    string
		config  string // waves.script in the config file
		flag    string
		wantErr bool
	}{
		{"config script", script, "", false},
		{"broken config script", missing, "", true},
		{"flag wins over config", missing, script, false},
		{"no script", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := writeFile(t, t.TempDir(), "zelda.yaml", "waves:\n  script: \""+tt.config+"\"\n")
			useFlags(t, cfgPath, tt.flag)

			factory, cleanup, err := gameFactory(log.New(io.Discard))
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "missing.lua") {
					t.Fatalf("gameFactory() error = %v, expected it to name the script", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("gameFactory() failed: %v", err)
			}
			defer cleanup()
			if g := factory(); g == nil || g.ID() != "zelda" {
				t.Errorf("factory built %v", g)
			}
		})
	}
}

func TestWaveScriptPrecedence(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "zelda.yaml", "waves:\n  script: from-config.lua\n")
	useFlags(t, cfgPath, "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got := waveScript(cfg); got != "from-config.lua" {
		t.Errorf("waveScript() = %q, expected the config value", got)
	}

	flagWaves = "from-flag.lua"
	if got := waveScript(cfg); got != "from-flag.lua" {
		t.Errorf("waveScript() = %q, expected --waves to win", got)
	}
}

func TestScoresClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	oldDB, oldClear := flagDBPath, flagClear
	flagDBPath, flagClear = dbPath, true
	t.Cleanup(func() { flagDBPath, flagClear = oldDB, oldClear })

	store := openStore(log.New(io.Discard))
	if store == nil {
		t.Fatal("openStore() returned nil")
	}
	store.SaveScore(zelda.GameID, "meadow", 4)
	store.SaveScore("other", "x", 1)
	store.Close()

	if err := runScores(nil, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if high, _ := store.HighScore(zelda.GameID); high != 0 {
		t.Errorf("high score after --clear = %d, expected 0", high)
	}
	if high, _ := store.HighScore("other"); high != 1 {
		t.Errorf("other game's scores should survive, high = %d", high)
	}
}
