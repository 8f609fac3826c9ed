package zelda

// resolvePlayerCollisions handles what the player touches after everything has
// moved. Only the first overlapping entity is resolved each tick.
func (g *Game) resolvePlayerCollisions() {
	pl := g.player()
	if pl == nil {
		return
	}
	p := pl.Player

	inWater, onDecor := false, false
	if hits := g.world.Overlapping(pl.ID, p.Sword); len(hits) > 0 {
		other := g.world.Get(hits[0])
		switch other.Kind {
		case KindDecor:
			onDecor = true
			g.pushBack(pl, other)
		case KindWater:
			inWater = true
		case KindEnemy, KindFire:
			g.damagePlayer()
		case KindPickup:
			g.collect(other.ID)
		}
	}

	if onDecor {
		return
	}
	if inWater {
		p.Speed = g.cfg.Player.WaterSpeed
	} else {
		p.Speed = g.cfg.Player.Speed
	}
}

// pushBack moves the player out of an obstacle by its current speed, along
// the axis with the smaller overlap.
func (g *Game) pushBack(pl, obstacle *Entity) {
	pb, ob := pl.Bounds(), obstacle.Bounds()
	overlapX, overlapY := pb.Overlap(ob)
	step := pl.Player.Speed

	if overlapX < overlapY {
		if pb.X < ob.X {
			pl.Pos.X -= step
		} else {
			pl.Pos.X += step
		}
		return
	}
	if pb.Y < ob.Y {
		pl.Pos.Y -= step
	} else {
		pl.Pos.Y += step
	}
}
