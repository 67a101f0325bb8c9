package world

import (
	"log"
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/loco/parameter"
	"github.com/lixenwraith/loco/physics"
	"github.com/lixenwraith/loco/vmath"
)

// Kind distinguishes entity behavior during Step
type Kind uint8

const (
	KindPlayer Kind = iota
	KindExplosive
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindExplosive:
		return "explosive"
	}
	return "unknown"
}

// Entity is a snapshot of one hosted entity
type Entity struct {
	ID       uuid.UUID
	Kind     Kind
	Position vmath.Vec3
	// Velocity is zero for KindPlayer; player motion lives in physics.Controller
	Velocity vmath.Vec3
	Grounded bool
}

type entity struct {
	kind Kind
	physics.Kinetic
}

// Bounds describes the playable volume: a floor plane and an X range
type Bounds struct {
	Floor float64
	MinX  float64
	MaxX  float64
}

// DefaultBounds returns the parameter defaults
func DefaultBounds() Bounds {
	return Bounds{
		Floor: parameter.FloorHeight,
		MinX:  parameter.WorldMinX,
		MaxX:  parameter.WorldMaxX,
	}
}

// World hosts player and explosive entities on a flat floor
// Player entities are moved by their controller through Body; explosives are integrated by Step
// Not safe for concurrent use
type World struct {
	bounds   Bounds
	gravity  float64
	friction float64

	entities map[uuid.UUID]*entity
	order    []uuid.UUID
}

// New creates an empty world
func New(bounds Bounds, gravity float64) *World {
	if bounds.MinX >= bounds.MaxX {
		panic("world: inverted x bounds")
	}
	return &World{
		bounds:   bounds,
		gravity:  gravity,
		friction: parameter.ExplosiveGroundFriction,
		entities: make(map[uuid.UUID]*entity),
	}
}

// Bounds returns the playable volume
func (w *World) Bounds() Bounds { return w.bounds }

func (w *World) add(kind Kind, origin vmath.Vec3) uuid.UUID {
	id := uuid.New()
	e := &entity{kind: kind}
	e.Pos = origin
	w.resolve(e)
	w.entities[id] = e
	w.order = append(w.order, id)
	return id
}

// SpawnPlayer places a player entity at origin, clamped into bounds
func (w *World) SpawnPlayer(origin vmath.Vec3) uuid.UUID {
	id := w.add(KindPlayer, origin)
	log.Printf("[World] spawned player %s at %v", id, w.entities[id].Pos)
	return id
}

// Instantiate places an explosive entity at origin, clamped into bounds
func (w *World) Instantiate(origin vmath.Vec3) uuid.UUID {
	return w.add(KindExplosive, origin)
}

// Destroy removes the entity; unknown ids are ignored
func (w *World) Destroy(id uuid.UUID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
}

// Position returns the entity position
func (w *World) Position(id uuid.UUID) (vmath.Vec3, bool) {
	e, ok := w.entities[id]
	if !ok {
		return vmath.Vec3{}, false
	}
	return e.Pos, true
}

// Grounded reports whether the entity rests on the floor
func (w *World) Grounded(id uuid.UUID) bool {
	e, ok := w.entities[id]
	return ok && e.Grounded
}

// Launch sets the entity velocity; returns false for unknown ids
func (w *World) Launch(id uuid.UUID, velocity vmath.Vec3) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	physics.SetImpulse(&e.Kinetic, velocity)
	return true
}

// Move displaces the entity by delta, stopping at the floor and X bounds
// Returns false for unknown ids
func (w *World) Move(id uuid.UUID, delta vmath.Vec3) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	e.Pos = e.Pos.Add(delta)
	w.resolve(e)
	return true
}

// Place teleports the entity and clears its velocity
func (w *World) Place(id uuid.UUID, pos vmath.Vec3) bool {
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	e.Pos = pos
	e.Vel = vmath.Vec3{}
	w.resolve(e)
	return true
}

// Step integrates explosives: gravity while airborne, rolling friction on the floor
func (w *World) Step(dt float64) {
	accel := vmath.Vec3{0, w.gravity, 0}
	for _, id := range w.order {
		e := w.entities[id]
		if e.kind != KindExplosive {
			continue
		}
		if e.Grounded && e.Vel[1] <= 0 {
			physics.Roll(&e.Kinetic, w.friction, dt)
			e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		} else {
			physics.Integrate(&e.Kinetic, accel, dt)
		}
		w.resolve(e)
	}
}

func (w *World) resolve(e *entity) {
	physics.StopBoundsX(&e.Kinetic, w.bounds.MinX, w.bounds.MaxX)
	physics.RestOnFloor(&e.Kinetic, w.bounds.Floor)
}

// Entities returns a snapshot in spawn order
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.order))
	for _, id := range w.order {
		e := w.entities[id]
		snap := Entity{
			ID:       id,
			Kind:     e.kind,
			Position: e.Pos,
			Grounded: e.Grounded,
		}
		if e.kind != KindPlayer {
			snap.Velocity = e.Vel
		}
		out = append(out, snap)
	}
	return out
}

// Len returns the number of hosted entities
func (w *World) Len() int { return len(w.order) }

// Count returns the number of hosted entities of kind
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.kind == kind {
			n++
		}
	}
	return n
}
