package explosive

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/loco/vmath"
)

// fakeWorld keeps entity positions in a map and records destruction order
type fakeWorld struct {
	positions map[uuid.UUID]vmath.Vec3
	destroyed []uuid.UUID
	created   int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{positions: make(map[uuid.UUID]vmath.Vec3)}
}

func (w *fakeWorld) Instantiate(origin vmath.Vec3) uuid.UUID {
	id := uuid.New()
	w.positions[id] = origin
	w.created++
	return id
}

func (w *fakeWorld) Position(id uuid.UUID) (vmath.Vec3, bool) {
	p, ok := w.positions[id]
	return p, ok
}

func (w *fakeWorld) Destroy(id uuid.UUID) {
	delete(w.positions, id)
	w.destroyed = append(w.destroyed, id)
}

// fakeTarget accumulates impulses into a velocity
type fakeTarget struct {
	pos      vmath.Vec3
	velocity vmath.Vec3
	hits     int
}

func (t *fakeTarget) Position() vmath.Vec3 { return t.pos }

func (t *fakeTarget) ApplyImpulse(p vmath.Vec3) {
	t.velocity = t.velocity.Add(p)
	t.hits++
}

func newTestInventory(capacity int) (*Inventory, *fakeWorld) {
	w := newFakeWorld()
	return NewInventory(w, capacity, NewForce(5, -50, 50), nil), w
}
