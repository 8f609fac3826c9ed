package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	resets []core.RuntimeConfig
	best   int
	endOn  int // ends a run on this step, 0 never
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	res := core.StepResult{State: g.State()}
	if len(g.frames) == g.endOn {
		res.RunEnded, res.RunScore, res.RunLevel = true, 4, "meadow"
	}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) State() core.GameState { return core.GameState{Best: g.best} }

func (g *fakeGame) SetBestScore(best int) { g.best = best }

type fakeStore struct {
	saved []string
	high  int
	err   error
}

func (s *fakeStore) SaveScore(gameID, level string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, gameID+"/"+level)
	s.high = max(s.high, score)
	return int64(len(s.saved)), nil
}

func (s *fakeStore) HighScore(string) (int, error) { return s.high, s.err }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickInterval: 20, HoldWindow: 100, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelResetsGameWithoutHelpRow(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, testConfig())
	if len(g.resets) != 1 || g.resets[0].ScreenH != 24 {
		t.Errorf("resets = %+v, expected one reset with 24 rows", g.resets)
	}
}

func TestModelSeedsBestScore(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), WithStore(&fakeStore{high: 9}))
	if g.best != 9 || m.State().Best != 9 {
		t.Errorf("best = %d, expected 9 from the store", g.best)
	}
}

func TestModelHeldKeysExpire(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})
	first := g.frames[0]
	if !first.Has(core.ActionMoveRight) || !first.Holding(core.ActionMoveRight) {
		t.Fatalf("first frame should press and hold right: %+v", first)
	}

	// Edge triggered once, held until the hold window passes
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}
	if g.frames[1].Has(core.ActionMoveRight) {
		t.Error("press should be consumed by the first tick")
	}
	if !g.frames[4].Holding(core.ActionMoveRight) {
		t.Error("right should still be held within the window")
	}
	if g.frames[5].Holding(core.ActionMoveRight) {
		t.Error("right should expire after the hold window")
	}
}

func TestModelDirectionOrder(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, TickMsg{})

	dir, ok := g.frames[0].Direction()
	if !ok || dir != core.ActionMoveLeft {
		t.Errorf("direction = %v, expected the most recent key", dir)
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	g := &fakeGame{endOn: 2}
	store := &fakeStore{}
	m := NewModel(g, testConfig(), WithStore(store))

	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg{})
	}
	if len(store.saved) != 1 || store.saved[0] != "fake/meadow" {
		t.Errorf("saved = %v, expected one fake/meadow run", store.saved)
	}
}

func TestModelStoreFailureIsNotFatal(t *testing.T) {
	g := &fakeGame{endOn: 1}
	m := NewModel(g, testConfig(), WithStore(&fakeStore{err: errors.New("disk full")}))
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})
	if len(g.frames) != 2 {
		t.Error("game should keep running after a failed save")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig())
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig())
	out := m.View()
	if !strings.Contains(out, "fake") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view should contain the help line")
	}
}

func TestModelQueuedKeyPress(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), WithKeyPress(core.ActionLevel2))
	update(t, m, TickMsg{})
	if !g.frames[0].Has(core.ActionLevel2) {
		t.Error("queued key should reach the first tick")
	}
}
