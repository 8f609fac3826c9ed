// Package scripting runs Lua scripts that customize game rules.
package scripting

import (
	"errors"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tui-zelda/internal/games/zelda"
)

// ErrNoTally is returned when a script does not define a tally function.
var ErrNoTally = errors.New("scripting: script defines no tally function")

// WaveRule is a zelda.WaveRule backed by a Lua script. The script defines a
// global function
//
//	tally(wave) -> { leever = n, red_leever = n, octopus = n }
//
// and may call roll(n) for a uniform integer in [0, n) from the game's RNG.
//
// Single-goroutine access only, like the game loop that calls it.
type WaveRule struct {
	vm  *lua.LState
	rng zelda.Roller
}

// NewWaveRule loads the wave rule from a Lua file.
func NewWaveRule(path string) (*WaveRule, error) {
	r := newWaveRule()
	if err := r.vm.DoFile(path); err != nil {
		r.Close()
		return nil, fmt.Errorf("scripting: load %s: %w", path, err)
	}
	return r.checked()
}

// NewWaveRuleString loads the wave rule from Lua source.
func NewWaveRuleString(src string) (*WaveRule, error) {
	r := newWaveRule()
	if err := r.vm.DoString(src); err != nil {
		r.Close()
		return nil, fmt.Errorf("scripting: load source: %w", err)
	}
	return r.checked()
}

func newWaveRule() *WaveRule {
	r := &WaveRule{vm: lua.NewState(lua.Options{SkipOpenLibs: false})}
	r.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	r.vm.SetGlobal("roll", r.vm.NewFunction(r.roll))
	return r
}

func (r *WaveRule) checked() (*WaveRule, error) {
	if _, ok := r.vm.GetGlobal("tally").(*lua.LFunction); !ok {
		r.Close()
		return nil, ErrNoTally
	}
	return r, nil
}

// roll is the Lua-side roll(n).
func (r *WaveRule) roll(L *lua.LState) int {
	n := L.CheckInt(1)
	if n <= 0 {
		L.ArgError(1, "roll needs a positive bound")
		return 0
	}
	if r.rng == nil {
		L.RaiseError("roll called outside tally")
		return 0
	}
	L.Push(lua.LNumber(r.rng.Intn(n)))
	return 1
}

// Tally implements zelda.WaveRule.
func (r *WaveRule) Tally(wave int, rng zelda.Roller) (zelda.WaveTally, error) {
	r.rng = rng
	defer func() { r.rng = nil }()

	if err := r.vm.CallByParam(lua.P{
		Fn:      r.vm.GetGlobal("tally"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave)); err != nil {
		return zelda.WaveTally{}, fmt.Errorf("scripting: tally(%d): %w", wave, err)
	}

	result := r.vm.Get(-1)
	r.vm.Pop(1)

	t, ok := result.(*lua.LTable)
	if !ok {
		return zelda.WaveTally{}, fmt.Errorf("scripting: tally(%d) returned %s, expected a table", wave, result.Type())
	}
	var tally zelda.WaveTally
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"leever", &tally.Leever},
		{"red_leever", &tally.RedLeever},
		{"octopus", &tally.Octopus},
	} {
		n, err := count(t, f.name)
		if err != nil {
			return zelda.WaveTally{}, fmt.Errorf("scripting: tally(%d): %w", wave, err)
		}
		*f.dst = n
	}
	return tally, nil
}

// count reads one integer field of a tally table. A missing field is zero.
func count(t *lua.LTable, field string) (int, error) {
	switch v := t.RawGetString(field).(type) {
	case *lua.LNilType:
		return 0, nil
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%s = %v is not an integer", field, f)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("%s is a %s, expected a number", field, v.Type())
	}
}

// Close releases the Lua state.
func (r *WaveRule) Close() {
	if r.vm != nil {
		r.vm.Close()
		r.vm = nil
	}
}
