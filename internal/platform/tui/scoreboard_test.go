package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zelda/internal/storage"
)

type fakeScores struct {
	entries []storage.ScoreEntry
}

func (f *fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.entries, nil
}

func (f *fakeScores) TopScoresForLevel(_ string, level string, _ int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScores) LevelBests(string) ([]storage.LevelBest, error) {
	return []storage.LevelBest{{Level: "lake", Score: 2, Runs: 1}, {Level: "meadow", Score: 5, Runs: 1}}, nil
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeScores{entries: []storage.ScoreEntry{
		{ID: 1, Level: "meadow", Score: 5},
		{ID: 2, Level: "lake", Score: 2},
	}}
	m := NewScoreboardModel(src, "zelda", "TUI Zelda", 80, 24)

	if len(m.tabs) != 3 || m.tabs[0] != allLevels {
		t.Fatalf("tabs = %v", m.tabs)
	}
	if len(m.scores) != 2 {
		t.Errorf("all tab shows %d scores, expected 2", len(m.scores))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.cursor] != "lake" || len(m.scores) != 1 || m.scores[0].Score != 2 {
		t.Errorf("lake tab shows %+v", m.scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.cursor] != "meadow" {
		t.Errorf("shift+tab should wrap to the last tab, got %q", m.tabs[m.cursor])
	}

	if !strings.Contains(m.View(), "HIGH SCORES - TUI Zelda") {
		t.Error("title missing")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, "zelda", "TUI Zelda", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected the empty message")
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Score: 3}, {Score: 1, Level: "lake"}})
	if rows[0][0] != "#1" || rows[0][1] != "3" || rows[0][2] != "-" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "lake" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m.game.Render(m.screen)
	if !strings.Contains(RenderScreen(m.screen), "fake") {
		t.Error("rendered screen lost its text")
	}
}
