package zelda

import (
	"testing"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

func TestEnemyDeathFiresExactlyOnce(t *testing.T) {
	tests := []struct {
		variant EnemyVariant
		hp      int
	}{
		{Leever, 1},
		{RedLeever, 2},
		{Octopus, 1},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			g, _ := newTestGame(t)
			id := g.spawnEnemy(tt.variant, core.V(100, 100))

			for i := 1; i < tt.hp; i++ {
				if g.DamageEnemy(id) {
					t.Fatalf("hit %d of %d killed the enemy", i, tt.hp)
				}
			}
			if g.world.Count(KindCloud) != 0 {
				t.Fatal("non-fatal hits must not spawn a cloud")
			}

			if !g.DamageEnemy(id) {
				t.Fatalf("hit %d should kill", tt.hp)
			}
			if g.world.Alive(id) {
				t.Error("dead enemy still in the world")
			}

			// Further hits on the stale handle change nothing
			for i := 0; i < 3; i++ {
				if g.DamageEnemy(id) {
					t.Error("stale handle reported a kill")
				}
			}
			if got := g.world.Count(KindCloud); got != 1 {
				t.Errorf("death clouds = %d, expected 1", got)
			}
			if g.kills != 1 {
				t.Errorf("kills = %d, expected 1", g.kills)
			}
		})
	}
}

func TestLeeverDeathDrops(t *testing.T) {
	// heart roll hits, ring roll misses, triforce roll hits
	g, rng := newTestGame(t, 0, 1, 0)
	id := g.spawnEnemy(Leever, core.V(300, 300))

	g.DamageEnemy(id)

	if g.world.Alive(id) {
		t.Fatal("leever should be removed")
	}
	if g.world.Count(KindCloud) != 1 {
		t.Error("death cloud missing")
	}

	want := []int{9, 18, 50}
	if len(rng.asked) != len(want) {
		t.Fatalf("rolled %v, expected odds %v", rng.asked, want)
	}
	for i := range want {
		if rng.asked[i] != want[i] {
			t.Errorf("roll %d used 1-in-%d, expected 1-in-%d", i, rng.asked[i], want[i])
		}
	}

	var types []PickupType
	for _, pid := range g.world.OfKind(KindPickup) {
		p := g.world.Get(pid)
		types = append(types, p.Pickup.Type)
		if p.Pos != core.V(300, 300) {
			t.Errorf("pickup at %v, expected the enemy position", p.Pos)
		}
	}
	if len(types) != 2 || types[0] != PickupHeart || types[1] != PickupTriforce {
		t.Errorf("drops = %v, expected [heart triforce]", types)
	}
}

func TestDropOddsPerVariant(t *testing.T) {
	want := map[EnemyVariant][]int{
		Leever:    {9, 18, 50},
		RedLeever: {7, 14, 50},
		Octopus:   {8, 16, 50},
	}
	for v, odds := range want {
		g, rng := newTestGame(t)
		g.rollDrops(v, core.V(0, 0))
		for i := range odds {
			if rng.asked[i] != odds[i] {
				t.Errorf("%v roll %d = 1-in-%d, expected 1-in-%d", v, i, rng.asked[i], odds[i])
			}
		}
		if g.world.Count(KindPickup) != 0 {
			t.Errorf("%v: missed rolls should not drop", v)
		}
	}
}

func TestLeeverWalksOnItsPeriod(t *testing.T) {
	g, _ := newTestGame(t, 3) // right
	id := g.spawnEnemy(Leever, core.V(400, 400))

	for i := 0; i < 149; i++ {
		g.stepEnemy(id, 20)
	}
	if got := g.world.Get(id).Pos; got != core.V(400, 400) {
		t.Fatalf("leever moved before 3000ms: %v", got)
	}

	g.stepEnemy(id, 20)
	e := g.world.Get(id)
	if e.Pos != core.V(480, 400) {
		t.Errorf("leever at %v, expected (480,400)", e.Pos)
	}
	if e.Enemy.TimerMs != 0 {
		t.Errorf("timer should reset, got %d", e.Enemy.TimerMs)
	}
}

func TestWalkerTimersAreIndependent(t *testing.T) {
	g, _ := newTestGame(t)
	a := g.spawnEnemy(Leever, core.V(400, 400))
	b := g.spawnEnemy(Leever, core.V(600, 400))

	for i := 0; i < 100; i++ {
		g.stepEnemy(a, 20)
	}
	if g.world.Get(b).Enemy.TimerMs != 0 {
		t.Error("stepping one enemy advanced another's timer")
	}
}

func TestWalkerStaysInScene(t *testing.T) {
	g, _ := newTestGame(t, 0, 2) // up, then left
	id := g.spawnEnemy(RedLeever, core.V(50, 50))

	g.stepEnemy(id, 1500)
	g.stepEnemy(id, 1500)

	if got := g.world.Get(id).Pos; got != core.V(50, 50) {
		t.Errorf("red leever left the scene: %v", got)
	}
}

func TestOctopusThrowsOneRock(t *testing.T) {
	g, _ := newTestGame(t, 1) // down
	id := g.spawnEnemy(Octopus, core.V(600, 200))

	g.stepEnemy(id, 20)
	oct := g.world.Get(id).Enemy
	if !g.world.Alive(oct.Rock) {
		t.Fatal("octopus should throw a rock")
	}
	if oct.Facing != DirDown {
		t.Errorf("facing = %v, expected down", oct.Facing)
	}
	rock := oct.Rock
	start := g.world.Get(rock).Pos

	g.stepEnemy(id, 100)
	if oct.Rock != rock || g.world.Count(KindProjectile) != 1 {
		t.Fatal("a second rock was thrown while one is in flight")
	}
	moved := g.world.Get(rock).Pos
	if moved.X != start.X || moved.Y != start.Y+30 {
		t.Errorf("rock at %v, expected 30px below %v", moved, start)
	}

	g.DamageEnemy(id)
	if g.world.Alive(rock) {
		t.Error("rock should go with its octopus")
	}
}
