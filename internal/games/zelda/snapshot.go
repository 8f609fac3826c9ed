package zelda

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	Level       string
	Wave        int
	Best        int
	Hearts      int
	CooldownMs  int
	PlayerX     float64
	PlayerY     float64
	SwordSpeed  float64
	Enemies     int
	Projectiles int
	Pickups     int
	Entities    int
	Kills       int
	TimeMs      int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		Wave:        g.wave,
		Best:        g.best,
		Enemies:     g.world.Count(KindEnemy),
		Projectiles: g.world.Count(KindProjectile),
		Pickups:     g.world.Count(KindPickup),
		Entities:    g.world.Len(),
		Kills:       g.kills,
		TimeMs:      g.timers.Now(),
	}
	if g.level != nil {
		s.Level = g.level.ID
	}
	if pl := g.player(); pl != nil {
		s.Hearts = pl.Player.Hearts
		s.CooldownMs = pl.Player.CooldownMs
		s.PlayerX = pl.Pos.X
		s.PlayerY = pl.Pos.Y
		s.SwordSpeed = pl.Player.SwordSpeed
	}
	return s
}
