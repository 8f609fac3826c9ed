package zelda

import (
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// Mode gates what a tick does and which keys are honored.
type Mode int

const (
	ModeStart     Mode = iota // title screen, no player, no spawning
	ModeRunning               // normal play
	ModePause                 // simulation halted, overlay shown
	ModeEndedLose             // player died, overlay shown
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeRunning:
		return "running"
	case ModePause:
		return "pause"
	case ModeEndedLose:
		return "ended_lose"
	default:
		return "unknown"
	}
}

const (
	msgPaused   = "Press space to continue"
	msgGameOver = "Game Over !"
)

// handleInput applies mode transitions. Keys without a transition in the
// current mode are ignored.
func (g *Game) handleInput(in core.InputFrame) {
	switch g.mode {
	case ModeStart:
		for _, a := range []core.Action{core.ActionLevel1, core.ActionLevel2, core.ActionLevel3} {
			if in.Has(a) {
				g.startLevel(a.LevelNumber())
				return
			}
		}
	case ModeRunning:
		if in.Has(core.ActionPause) {
			g.mode = ModePause
			g.overlay = msgPaused
		}
	case ModePause:
		switch {
		case in.Has(core.ActionPause):
			g.mode = ModeRunning
			g.overlay = ""
		case in.Has(core.ActionCancel):
			g.scoreRun()
			g.toStart()
		}
	case ModeEndedLose:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) || in.Has(core.ActionCancel) {
			g.toStart()
		}
	}
}

// startLevel loads level n and begins a fresh run on it.
func (g *Game) startLevel(n int) {
	lvl, err := g.levels.ByNumber(n)
	if err != nil {
		g.log.Warn("level not available", "number", n, "err", err)
		return
	}
	if err := lvl.CheckBounds(g.cfg.Scene.Width, g.cfg.Scene.Height); err != nil {
		g.log.Warn("level does not fit the scene", "level", lvl.ID, "err", err)
		return
	}

	g.restart()
	g.level = &lvl
	for _, o := range lvl.Obstacles {
		g.world.Spawn(&Entity{
			Kind:     obstacleKinds[o.Kind],
			Pos:      o.Bounds.Pos(),
			Size:     o.Bounds.Size(),
			Obstacle: &Obstacle{Glyph: o.Glyph, Color: o.Color},
		})
	}
	g.playerID = g.spawnPlayer(lvl.PlayerStart)
	g.mode = ModeRunning
	g.log.Info("level started", "level", lvl.ID, "obstacles", len(lvl.Obstacles), "best", g.best)
}

// lose ends the run after the player's death.
func (g *Game) lose() {
	g.mode = ModeEndedLose
	g.overlay = msgGameOver
	g.log.Info("player died", "wave", g.wave-1, "kills", g.kills)
	g.scoreRun()
}

// scoreRun records the run's result: waves reached minus one.
func (g *Game) scoreRun() {
	score := max(0, g.wave-1)
	g.best = max(g.best, score)
	levelID := ""
	if g.level != nil {
		levelID = g.level.ID
	}
	g.finished = &finishedRun{score: score, level: levelID}
	g.log.Info("run scored", "score", score, "best", g.best, "level", levelID)
}

// toStart returns to the title screen, dropping the run.
func (g *Game) toStart() {
	g.restart()
	g.level = nil
	g.mode = ModeStart
}

// restart clears every entity and pending timer and resets the wave counter.
// The best score survives.
func (g *Game) restart() {
	g.world.Clear()
	g.timers.Clear()
	g.playerID = NilEntity
	g.wave = 1
	g.kills = 0
	g.message = ""
	g.overlay = ""
}
