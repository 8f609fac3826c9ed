package zelda

import (
	"slices"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// EntityID is a stable handle into the World. IDs are never reused.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// Kind tags an entity. Exactly one payload pointer of Entity matches the kind.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindPickup
	KindDecor
	KindWater
	KindFire
	KindCloud
)

var kindNames = [...]string{"player", "enemy", "projectile", "pickup", "decor", "water", "fire", "cloud"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Entity is one object in the world.
type Entity struct {
	ID   EntityID
	Kind Kind
	Pos  core.Vec2 // top-left corner, world pixels
	Size core.Vec2

	Player     *Player
	Enemy      *Enemy
	Projectile *Projectile
	Pickup     *Pickup
	Obstacle   *Obstacle // decor, water and fire
}

// Bounds returns the collision box.
func (e *Entity) Bounds() core.RectF {
	return core.NewRectF(e.Pos, e.Size)
}

// Center returns the middle of the collision box.
func (e *Entity) Center() core.Vec2 {
	return e.Pos.Add(e.Size.Scale(0.5))
}

// Obstacle holds the drawing data of a static obstacle.
type Obstacle struct {
	Glyph rune
	Color core.Color
}

// World owns every entity. All other references are EntityID handles.
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	order    []EntityID // insertion order
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: make(map[EntityID]*Entity),
	}
}

// Spawn attaches e to the world and returns its new handle.
func (w *World) Spawn(e *Entity) EntityID {
	id := w.nextID
	w.nextID++
	e.ID = id
	w.entities[id] = e
	w.order = append(w.order, id)
	return id
}

// Despawn detaches and frees the entity. Returns false if it was not alive.
func (w *World) Despawn(id EntityID) bool {
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return true
}

// Get returns the entity behind id, or nil if it is gone.
func (w *World) Get(id EntityID) *Entity {
	return w.entities[id]
}

// Alive reports whether id still refers to an entity.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Snapshot returns a copy of all live IDs in insertion order.
// Safe to iterate while spawning or despawning.
func (w *World) Snapshot() []EntityID {
	return slices.Clone(w.order)
}

// OfKind returns a snapshot of the live IDs of one kind, in insertion order.
func (w *World) OfKind(kind Kind) []EntityID {
	var ids []EntityID
	for _, id := range w.order {
		if w.entities[id].Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of live entities of one kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, id := range w.order {
		if w.entities[id].Kind == kind {
			n++
		}
	}
	return n
}

// Overlapping returns the entities whose boxes intersect id's box, in insertion
// order. The entity itself, clouds and any id in skip are left out.
func (w *World) Overlapping(id EntityID, skip ...EntityID) []EntityID {
	self := w.entities[id]
	if self == nil {
		return nil
	}
	box := self.Bounds()

	var hits []EntityID
	for _, other := range w.order {
		if other == id || slices.Contains(skip, other) {
			continue
		}
		e := w.entities[other]
		if e.Kind == KindCloud {
			continue
		}
		if box.Intersects(e.Bounds()) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Clear removes every entity. Handles issued before stay invalid.
func (w *World) Clear() {
	clear(w.entities)
	w.order = w.order[:0]
}
