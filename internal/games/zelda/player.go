package zelda

import (
	"github.com/vovakirdan/tui-zelda/internal/config"
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// MaxHearts caps the player's hit points.
const MaxHearts = config.MaxHearts

// Direction is one of the four cardinal directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directionFromRoll maps a roll in [0,4) to up, down, left, right.
func directionFromRoll(n int) Direction {
	return Direction(n & 3)
}

// Vec returns the unit vector of d (screen Y grows downwards).
func (d Direction) Vec() core.Vec2 {
	switch d {
	case DirUp:
		return core.V(0, -1)
	case DirDown:
		return core.V(0, 1)
	case DirLeft:
		return core.V(-1, 0)
	default:
		return core.V(1, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// Player is the payload of the player entity.
type Player struct {
	Hearts     int
	CooldownMs int     // invincibility left
	Opacity    float64 // 0.5 while invincible
	Facing     Direction

	Sword          EntityID // at most one sword in flight
	SwordSpeed     float64
	BaseSwordSpeed float64

	Speed float64 // pixels per tick, terrain dependent
	Dead  bool
}

// moveKeys maps held movement keys to directions.
var moveKeys = map[core.Action]Direction{
	core.ActionMoveUp:    DirUp,
	core.ActionMoveDown:  DirDown,
	core.ActionMoveLeft:  DirLeft,
	core.ActionMoveRight: DirRight,
}

// attackKeys lists attack keys in the order they are checked each tick.
var attackKeys = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionAttackUp, DirUp},
	{core.ActionAttackLeft, DirLeft},
	{core.ActionAttackDown, DirDown},
	{core.ActionAttackRight, DirRight},
}

// spawnPlayer creates a fresh player at start, or centered when start is nil.
func (g *Game) spawnPlayer(start *core.Vec2) EntityID {
	pc := g.cfg.Player
	size := core.V(pc.Width, pc.Height)
	pos := core.V((g.cfg.Scene.Width-size.X)/2, (g.cfg.Scene.Height-size.Y)/2)
	if start != nil {
		pos = *start
	}
	return g.world.Spawn(&Entity{
		Kind: KindPlayer,
		Pos:  pos,
		Size: size,
		Player: &Player{
			Hearts:         pc.StartHearts,
			Opacity:        1,
			Facing:         DirDown,
			SwordSpeed:     pc.SwordSpeed,
			BaseSwordSpeed: pc.SwordSpeed,
			Speed:          pc.Speed,
		},
	})
}

// player returns the live player entity, or nil outside a run.
func (g *Game) player() *Entity {
	return g.world.Get(g.playerID)
}

// tickPlayer counts down invincibility and moves the sword in flight.
func (g *Game) tickPlayer(elapsedMs int) {
	e := g.player()
	if e == nil {
		return
	}
	p := e.Player
	if p.CooldownMs > 0 {
		p.CooldownMs -= elapsedMs
		if p.CooldownMs < 0 {
			p.CooldownMs = 0
		}
	} else {
		p.Opacity = 1
	}

	if g.world.Alive(p.Sword) {
		g.stepProjectile(p.Sword, elapsedMs)
	}
}

// movePlayer moves the player toward the most recently pressed held direction.
// Holding any attack key pins the player in place.
func (g *Game) movePlayer(in core.InputFrame) {
	e := g.player()
	if e == nil {
		return
	}
	for _, k := range attackKeys {
		if in.Holding(k.action) {
			return
		}
	}
	action, ok := in.Direction()
	if !ok {
		return
	}
	dir := moveKeys[action]
	e.Player.Facing = dir

	next := e.Pos.Add(dir.Vec().Scale(e.Player.Speed))
	if next.X < 0 || next.X > g.cfg.Scene.Width-e.Size.X {
		return
	}
	if next.Y < 0 || next.Y > g.cfg.Scene.Height-e.Size.Y {
		return
	}
	e.Pos = next
}

// attack throws the sword for the first held attack key.
func (g *Game) attack(in core.InputFrame) {
	for _, k := range attackKeys {
		if in.Holding(k.action) {
			g.throwSword(k.dir)
			return
		}
	}
}

// throwSword spawns the sword at the player. No-op while a sword is in flight.
func (g *Game) throwSword(dir Direction) bool {
	e := g.player()
	if e == nil || g.world.Alive(e.Player.Sword) {
		return false
	}
	p := e.Player
	p.Facing = dir

	size := core.V(g.cfg.Player.SwordSize, g.cfg.Player.SwordSize)
	p.Sword = g.spawnProjectile(e.ID, KindPlayer, e.Center(), size, dir.Vec(), p.SwordSpeed)
	return true
}

// damagePlayer removes a heart unless the player is invincible.
// Losing the last heart ends the run.
func (g *Game) damagePlayer() bool {
	e := g.player()
	if e == nil || e.Player.Dead {
		return false
	}
	p := e.Player
	if p.CooldownMs > 0 {
		return false
	}

	p.CooldownMs = g.cfg.Player.InvincibleMs
	p.Opacity = 0.5
	p.Hearts--
	if p.Hearts <= 0 {
		p.Hearts = 0
		p.Dead = true
		g.lose()
	}
	return true
}
