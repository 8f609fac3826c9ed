package zelda

import (
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-zelda/internal/config"
	"github.com/vovakirdan/tui-zelda/internal/core"
	"github.com/vovakirdan/tui-zelda/internal/games/zelda/levels"
)

// scriptedRNG replays fixed rolls, then answers n-1 (never a drop, always a leever).
type scriptedRNG struct {
	rolls []int
	asked []int
}

func (s *scriptedRNG) Intn(n int) int {
	s.asked = append(s.asked, n)
	if len(s.rolls) == 0 {
		return n - 1
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v % n
}

var emptyLevels = fstest.MapFS{
	"lv/empty.yaml": {Data: []byte("id: empty\nnumber: 1\nname: Empty\nobstacles: []\n")},
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: 20, HoldWindow: 250, Seed: 7}
}

// newTestGame returns a game on an empty level, already running, with a
// scripted RNG. The first wave has not spawned yet.
func newTestGame(t *testing.T, rolls ...int) (*Game, *scriptedRNG) {
	t.Helper()
	g := New(config.DefaultZeldaConfig())
	g.SetLevels(levels.NewLoader(emptyLevels, "lv"))
	g.Reset(testRuntime())

	press(g, core.ActionLevel1)
	if g.Mode() != ModeRunning {
		t.Fatalf("expected running after level select, got %v", g.Mode())
	}
	rng := &scriptedRNG{rolls: rolls}
	g.rng = rng
	return g, rng
}

// press runs the mode machine for one edge-triggered action.
func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.handleInput(in)
}

// holding builds a frame with keys held; the first move key is the most recent direction.
func holding(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Held[a] = true
		if a.IsMove() {
			in.Directions = append(in.Directions, a)
		}
	}
	return in
}

// placePlayer moves the player to a known spot away from the scene edges.
func placePlayer(g *Game, x, y float64) *Entity {
	pl := g.player()
	pl.Pos = core.V(x, y)
	return pl
}
