package zelda

import (
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// Projectile is the payload of a sword or rock. Owner is a back-reference
// only: the owner may be gone while the projectile is still in flight.
type Projectile struct {
	Owner     EntityID
	OwnerKind Kind // KindPlayer for swords, KindEnemy for rocks
	Dir       core.Vec2
	Speed     float64 // pixels per second
	Origin    core.Vec2
}

func (g *Game) spawnProjectile(owner EntityID, ownerKind Kind, center, size, dir core.Vec2, speed float64) EntityID {
	pos := center.Add(size.Scale(-0.5))
	return g.world.Spawn(&Entity{
		Kind: KindProjectile,
		Pos:  pos,
		Size: size,
		Projectile: &Projectile{
			Owner:     owner,
			OwnerKind: ownerKind,
			Dir:       dir,
			Speed:     speed,
			Origin:    pos,
		},
	})
}

// stepProjectile moves a projectile and resolves the first thing it touches.
func (g *Game) stepProjectile(id EntityID, elapsedMs int) {
	e := g.world.Get(id)
	if e == nil || e.Kind != KindProjectile {
		return
	}
	p := e.Projectile
	e.Pos = e.Pos.Add(p.Dir.Scale(p.Speed * float64(elapsedMs) / 1000))

	b := e.Bounds()
	if b.Bottom() < 0 || b.Y > g.cfg.Scene.Height || b.Right() < 0 || b.X > g.cfg.Scene.Width {
		g.world.Despawn(id)
		return
	}

	hits := g.world.Overlapping(id, p.Owner)
	if len(hits) == 0 {
		return
	}
	target := hits[0]
	other := g.world.Get(target)

	switch {
	case other.Kind == KindEnemy && p.OwnerKind == KindPlayer:
		g.world.Despawn(id)
		g.DamageEnemy(target)
	case other.Kind == KindDecor:
		g.world.Despawn(id)
	case other.Kind == KindPlayer && p.OwnerKind == KindEnemy:
		g.world.Despawn(id)
		g.damagePlayer()
	case other.Kind == KindProjectile:
		// Rocks break on anything thrown; swords fly on.
		if p.OwnerKind == KindEnemy {
			g.world.Despawn(id)
		} else if other.Projectile.OwnerKind == KindEnemy {
			g.world.Despawn(target)
		}
	}
}
