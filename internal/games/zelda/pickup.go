package zelda

import (
	"github.com/vovakirdan/tui-zelda/internal/core"
)

// PickupType selects the effect of a pickup.
type PickupType int

const (
	PickupHeart    PickupType = iota // +1 heart up to the cap
	PickupBlueRing                   // doubles sword speed for a while
	PickupTriforce                   // hits every enemy once
)

func (t PickupType) String() string {
	switch t {
	case PickupHeart:
		return "heart"
	case PickupBlueRing:
		return "blue_ring"
	case PickupTriforce:
		return "triforce"
	default:
		return "unknown"
	}
}

// Pickup is the payload of a pickup entity.
type Pickup struct {
	Type     PickupType
	Blinking bool // about to expire
}

// spawnPickup drops a pickup at pos. It starts blinking, then disappears
// if nobody takes it.
func (g *Game) spawnPickup(t PickupType, pos core.Vec2) EntityID {
	pc := g.cfg.Pickups
	id := g.world.Spawn(&Entity{
		Kind:   KindPickup,
		Pos:    pos,
		Size:   core.V(pc.Size, pc.Size),
		Pickup: &Pickup{Type: t},
	})

	g.timers.After(int64(pc.BlinkAfterMs), func() {
		if e := g.world.Get(id); e != nil {
			e.Pickup.Blinking = true
		}
	})
	g.timers.After(int64(pc.ExpireAfterMs), func() {
		g.world.Despawn(id)
	})
	return id
}

// spawnCloud shows a death cloud at pos for a short while.
func (g *Game) spawnCloud(pos core.Vec2) EntityID {
	id := g.world.Spawn(&Entity{
		Kind: KindCloud,
		Pos:  pos,
		Size: core.V(g.cfg.Pickups.Size, g.cfg.Pickups.Size),
	})
	g.timers.After(int64(g.cfg.Pickups.CloudMs), func() {
		g.world.Despawn(id)
	})
	return id
}

// collect applies a pickup's effect and removes it.
func (g *Game) collect(id EntityID) {
	item := g.world.Get(id)
	pl := g.player()
	if item == nil || item.Kind != KindPickup || pl == nil {
		return
	}
	g.world.Despawn(id)
	p := pl.Player

	switch item.Pickup.Type {
	case PickupHeart:
		if p.Hearts < MaxHearts {
			p.Hearts++
		}
	case PickupBlueRing:
		if p.SwordSpeed == p.BaseSwordSpeed {
			p.SwordSpeed = 2 * p.BaseSwordSpeed
		}
		owner := pl.ID
		g.timers.After(int64(g.cfg.Pickups.BoostDurationMs), func() {
			if e := g.world.Get(owner); e != nil {
				e.Player.SwordSpeed = e.Player.BaseSwordSpeed
			}
		})
	case PickupTriforce:
		for _, enemy := range g.world.OfKind(KindEnemy) {
			g.DamageEnemy(enemy)
		}
	}
	g.log.Debug("pickup collected", "type", item.Pickup.Type, "hearts", p.Hearts)
}
