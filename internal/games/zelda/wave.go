package zelda

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// Roller draws uniform integers in [0, n). *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// WaveTally is the enemy composition of one wave.
type WaveTally struct {
	Leever    int
	RedLeever int
	Octopus   int
}

// Total returns the number of enemies in the wave.
func (t WaveTally) Total() int {
	return t.Leever + t.RedLeever + t.Octopus
}

// WaveRule decides how many enemies of each variant a wave brings.
// The total must equal the wave number.
type WaveRule interface {
	Tally(wave int, rng Roller) (WaveTally, error)
}

// DefaultWaveRule rolls Intn(Roll) once per enemy: 0 brings a red leever
// after wave RedLeeverAfter, 1 an octopus after wave OctopusAfter, anything
// else a leever.
type DefaultWaveRule struct {
	Roll           int
	RedLeeverAfter int
	OctopusAfter   int
}

// Tally implements WaveRule.
func (r DefaultWaveRule) Tally(wave int, rng Roller) (WaveTally, error) {
	var t WaveTally
	for i := 0; i < wave; i++ {
		roll := rng.Intn(r.Roll)
		switch {
		case roll == 0 && wave > r.RedLeeverAfter:
			t.RedLeever++
		case roll == 1 && wave > r.OctopusAfter:
			t.Octopus++
		default:
			t.Leever++
		}
	}
	return t, nil
}

// generateWave spawns the next wave once the field is clear.
func (g *Game) generateWave() {
	if g.mode != ModeRunning || g.world.Count(KindEnemy) != 0 {
		return
	}

	tally := g.tally()
	spawn := func(v EnemyVariant, n int) {
		ec := g.enemyConfig(v)
		for i := 0; i < n; i++ {
			g.spawnEnemy(v, g.placeEnemy(core.V(ec.Width, ec.Height)))
		}
	}
	spawn(Leever, tally.Leever)
	spawn(RedLeever, tally.RedLeever)
	spawn(Octopus, tally.Octopus)

	g.message = fmt.Sprintf("Wave %d", g.wave)
	g.log.Info("wave spawned", "wave", g.wave,
		"leever", tally.Leever, "red_leever", tally.RedLeever, "octopus", tally.Octopus)
	g.wave++
}

// tally asks the configured rule for the wave composition. A failing or
// inconsistent rule falls back to the built-in one.
func (g *Game) tally() WaveTally {
	fallback := g.defaultRule()
	if g.rule == nil {
		t, _ := fallback.Tally(g.wave, g.rng)
		return t
	}

	t, err := g.rule.Tally(g.wave, g.rng)
	if err == nil && t.Total() != g.wave {
		err = fmt.Errorf("tally has %d enemies, expected %d", t.Total(), g.wave)
	}
	if err == nil && (t.Leever < 0 || t.RedLeever < 0 || t.Octopus < 0) {
		err = fmt.Errorf("tally has negative counts: %+v", t)
	}
	if err != nil {
		g.log.Warn("wave rule failed, using default", "wave", g.wave, "err", err)
		t, _ = fallback.Tally(g.wave, g.rng)
	}
	return t
}

func (g *Game) defaultRule() DefaultWaveRule {
	return DefaultWaveRule{
		Roll:           g.cfg.Waves.Roll,
		RedLeeverAfter: g.cfg.Waves.RedLeeverAfter,
		OctopusAfter:   g.cfg.Waves.OctopusAfter,
	}
}

// placeEnemy picks a spawn position inside the vertical margins and away from
// the player on both axes. After the attempt cap it settles for the candidate
// farthest from the player.
func (g *Game) placeEnemy(size core.Vec2) core.Vec2 {
	wc := g.cfg.Waves
	spanX := max(1, int(g.cfg.Scene.Width-size.X))
	spanY := max(1, int(g.cfg.Scene.Height-2*wc.SpawnMargin-size.Y))

	var target core.Vec2
	if pl := g.player(); pl != nil {
		target = pl.Pos
	}

	var best core.Vec2
	bestScore := -1.0
	for i := 0; i < wc.MaxPlacementAttempts; i++ {
		pos := core.V(float64(g.rng.Intn(spanX)), wc.SpawnMargin+float64(g.rng.Intn(spanY)))
		dx, dy := math.Abs(pos.X-target.X), math.Abs(pos.Y-target.Y)
		if dx >= wc.MinPlayerDistance && dy >= wc.MinPlayerDistance {
			return pos
		}
		if score := math.Min(dx, dy); score > bestScore {
			best, bestScore = pos, score
		}
	}

	g.log.Warn("enemy placement fell back", "attempts", wc.MaxPlacementAttempts, "x", best.X, "y", best.Y)
	return best
}
