// Package zelda implements a top-down action game: survive waves of enemies
// with a thrown sword, pick up what they drop, and push your best wave.
//
// The simulation runs on a fixed tick in world pixels (1280x720 by default)
// and knows nothing about the terminal; Render scales the world to cells.
package zelda

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zelda/internal/config"
	"github.com/vovakirdan/tui-zelda/internal/core"
	"github.com/vovakirdan/tui-zelda/internal/games/zelda/levels"
)

// GameID is used for score storage.
const GameID = "zelda"

var obstacleKinds = map[levels.ObstacleKind]Kind{
	levels.Decor: KindDecor,
	levels.Water: KindWater,
	levels.Fire:  KindFire,
}

type finishedRun struct {
	score int
	level string
}

// Game implements the game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ZeldaConfig
	rng     Roller
	timers  *core.Timers
	world   *World
	log     *log.Logger

	levels    *levels.Loader
	level     *levels.Level
	available []levels.Level // shown on the title screen
	rule      WaveRule

	mode     Mode
	playerID EntityID
	wave     int // next wave to spawn, starts at 1
	best     int
	kills    int
	tick     uint64
	message  string // HUD banner, "Wave N"
	overlay  string // centered pause / game over text
	finished *finishedRun
}

// New creates a game with the given configuration and the built-in levels.
func New(cfg config.ZeldaConfig) *Game {
	return &Game{
		cfg:    cfg,
		levels: levels.Builtin(),
		log:    log.New(io.Discard),
		world:  NewWorld(),
		timers: core.NewTimers(),
		wave:   1,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "TUI Zelda"
}

// SetLogger routes game events to l. The default discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// SetLevels replaces the level source. Takes effect on the next Reset.
func (g *Game) SetLevels(l *levels.Loader) {
	g.levels = l
}

// SetWaveRule replaces the wave composition rule. nil restores the default.
func (g *Game) SetWaveRule(r WaveRule) {
	g.rule = r
}

// SetBestScore seeds the best score, e.g. from storage.
func (g *Game) SetBestScore(best int) {
	g.best = max(g.best, best)
}

// Reset initializes the game on the title screen. The best score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickInterval <= 0 {
		runtime.TickInterval = core.DefaultConfig().TickInterval
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld()
	g.timers = core.NewTimers()
	g.tick = 0
	g.finished = nil
	g.restart()
	g.level = nil
	g.mode = ModeStart

	available, err := g.levels.LoadAll()
	if err != nil {
		g.log.Error("loading levels", "err", err)
	}
	g.available = available
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.handleInput(in)

	// Deferred effects keep their wall-clock timing through pause and game over.
	if g.mode != ModeStart {
		g.timers.Advance(int64(g.runtime.TickInterval))
	}
	if g.mode == ModeRunning {
		g.simulate(in, g.runtime.TickInterval)
	}

	result := core.StepResult{State: g.State()}
	if g.finished != nil {
		result.RunEnded = true
		result.RunScore = g.finished.score
		result.RunLevel = g.finished.level
		g.finished = nil
	}
	return result
}

// simulate runs one tick of play. It stops early once the player dies.
func (g *Game) simulate(in core.InputFrame, elapsedMs int) {
	g.tickPlayer(elapsedMs)

	for _, id := range g.world.OfKind(KindEnemy) {
		if g.mode != ModeRunning {
			return
		}
		g.stepEnemy(id, elapsedMs)
	}
	if g.mode != ModeRunning {
		return
	}

	g.generateWave()
	g.movePlayer(in)
	g.attack(in)
	g.resolvePlayerCollisions()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	playing := g.mode == ModeRunning || g.mode == ModePause
	score := 0
	if g.mode != ModeStart {
		score = max(0, g.wave-1)
	}
	return core.GameState{
		Score:    score,
		Best:     g.best,
		GameOver: g.mode == ModeEndedLose,
		Paused:   g.mode == ModePause,
		Playing:  playing,
	}
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Wave returns the number of the next wave to spawn.
func (g *Game) Wave() int {
	return g.wave
}

// Best returns the best score seen.
func (g *Game) Best() int {
	return g.best
}

// World exposes the entity arena, read-only by convention.
func (g *Game) World() *World {
	return g.world
}

// PlayerID returns the current player's handle, NilEntity outside a run.
func (g *Game) PlayerID() EntityID {
	return g.playerID
}
