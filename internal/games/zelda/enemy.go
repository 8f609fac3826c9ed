package zelda

import (
	"github.com/vovakirdan/tui-zelda/internal/config"
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// EnemyVariant selects enemy behavior.
type EnemyVariant int

const (
	Leever    EnemyVariant = iota // slow random walk
	RedLeever                     // faster, longer random walk, two hits
	Octopus                       // stands still, throws rocks
)

func (v EnemyVariant) String() string {
	switch v {
	case Leever:
		return "leever"
	case RedLeever:
		return "red_leever"
	case Octopus:
		return "octopus"
	default:
		return "unknown"
	}
}

// Enemy is the payload of an enemy entity.
type Enemy struct {
	Variant EnemyVariant
	HP      int
	TimerMs int // time since the last random step
	Facing  Direction
	Rock    EntityID // Octopus only, at most one in flight
}

func (g *Game) enemyConfig(v EnemyVariant) config.EnemyConfig {
	switch v {
	case RedLeever:
		return g.cfg.Enemies.RedLeever
	case Octopus:
		return g.cfg.Enemies.Octopus
	default:
		return g.cfg.Enemies.Leever
	}
}

// spawnEnemy places a new enemy of variant v at pos.
func (g *Game) spawnEnemy(v EnemyVariant, pos core.Vec2) EntityID {
	ec := g.enemyConfig(v)
	return g.world.Spawn(&Entity{
		Kind: KindEnemy,
		Pos:  pos,
		Size: core.V(ec.Width, ec.Height),
		Enemy: &Enemy{
			Variant: v,
			HP:      ec.HP,
			Facing:  DirDown,
		},
	})
}

// stepEnemy runs one tick of enemy behavior.
func (g *Game) stepEnemy(id EntityID, elapsedMs int) {
	e := g.world.Get(id)
	if e == nil || e.Kind != KindEnemy {
		return
	}

	switch e.Enemy.Variant {
	case Leever, RedLeever:
		g.stepWalker(e, elapsedMs)
	case Octopus:
		g.stepOctopus(e, elapsedMs)
	}
}

// stepWalker moves a leever by its range in a random direction once per period.
// A step that would leave the scene is skipped.
func (g *Game) stepWalker(e *Entity, elapsedMs int) {
	ec := g.enemyConfig(e.Enemy.Variant)
	e.Enemy.TimerMs += elapsedMs
	if e.Enemy.TimerMs < ec.StepMs {
		return
	}
	e.Enemy.TimerMs = 0

	dir := directionFromRoll(g.rng.Intn(4))
	e.Enemy.Facing = dir
	next := e.Pos.Add(dir.Vec().Scale(ec.Range))
	if next.X < 0 || next.X > g.cfg.Scene.Width-e.Size.X {
		return
	}
	if next.Y < 0 || next.Y > g.cfg.Scene.Height-e.Size.Y {
		return
	}
	e.Pos = next
}

// stepOctopus throws a rock in a random direction, or moves the rock in flight.
func (g *Game) stepOctopus(e *Entity, elapsedMs int) {
	if g.world.Alive(e.Enemy.Rock) {
		g.stepProjectile(e.Enemy.Rock, elapsedMs)
		return
	}

	ec := g.cfg.Enemies.Octopus
	dir := directionFromRoll(g.rng.Intn(4))
	e.Enemy.Facing = dir
	size := core.V(ec.ProjectileSize, ec.ProjectileSize)
	e.Enemy.Rock = g.spawnProjectile(e.ID, KindEnemy, e.Center(), size, dir.Vec(), ec.ProjectileSpeed)
}

// DamageEnemy takes one hit point from an enemy. At zero it dies: a cloud
// marks the spot, pickups may drop, and its rock goes with it.
// Returns true if the hit killed the enemy. Stale handles are ignored.
func (g *Game) DamageEnemy(id EntityID) bool {
	e := g.world.Get(id)
	if e == nil || e.Kind != KindEnemy {
		return false
	}
	e.Enemy.HP--
	if e.Enemy.HP > 0 {
		return false
	}

	g.spawnCloud(e.Pos)
	g.rollDrops(e.Enemy.Variant, e.Pos)
	rock := e.Enemy.Rock
	g.world.Despawn(id)
	g.world.Despawn(rock)
	g.kills++
	return true
}

// rollDrops rolls each pickup independently with its 1-in-N odds.
func (g *Game) rollDrops(v EnemyVariant, pos core.Vec2) {
	odds := g.enemyConfig(v).Drops
	for _, drop := range []struct {
		n int
		t PickupType
	}{
		{odds.Heart, PickupHeart},
		{odds.BlueRing, PickupBlueRing},
		{odds.Triforce, PickupTriforce},
	} {
		if drop.n > 0 && g.rng.Intn(drop.n) == 0 {
			g.spawnPickup(drop.t, pos)
		}
	}
}
