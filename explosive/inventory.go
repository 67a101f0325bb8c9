package explosive

import (
	"log"
	"sync/atomic"

	"github.com/gammazero/deque"

	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/vmath"
)

// Inventory tracks the live explosives one player has thrown, oldest first
// Capacity 0 disables throwing, negative is unlimited, positive is a hard cap
type Inventory struct {
	world    World
	capacity int
	items    deque.Deque[*Unit]
	force    *Force

	statSpawned   *atomic.Int64
	statEvicted   *atomic.Int64
	statDetonated *atomic.Int64
	statHits      *atomic.Int64
	statRejected  *atomic.Int64
	statLive      *status.Gauge
	statForce     *status.Gauge
}

// NewInventory creates an empty inventory
// Panics on a nil world or force
func NewInventory(world World, capacity int, force *Force, stats *status.Registry) *Inventory {
	if world == nil {
		panic("explosive: inventory requires a world")
	}
	if force == nil {
		panic("explosive: inventory requires a force")
	}
	if stats == nil {
		stats = status.NewRegistry()
	}

	inv := &Inventory{
		world:         world,
		capacity:      capacity,
		force:         force,
		statSpawned:   stats.Counter(status.ExplosiveSpawned),
		statEvicted:   stats.Counter(status.ExplosiveEvicted),
		statDetonated: stats.Counter(status.ExplosiveDetonated),
		statHits:      stats.Counter(status.ExplosiveHits),
		statRejected:  stats.Counter(status.ExplosiveRejected),
		statLive:      stats.Gauge(status.ExplosiveLive),
		statForce:     stats.Gauge(status.ExplosiveForce),
	}
	inv.statForce.Set(float64(force.Value()))
	return inv
}

// Spawn places a new explosive at origin, evicting the oldest when over capacity
func (inv *Inventory) Spawn(origin vmath.Vec3, force, radius float64) (*Unit, error) {
	if inv.capacity == 0 {
		inv.statRejected.Add(1)
		log.Printf("[Inventory] cannot throw, capacity is 0")
		return nil, ErrDisabled
	}
	if radius <= 0 {
		panic("explosive: radius must be positive")
	}

	id := inv.world.Instantiate(origin)
	u := newUnit(inv.world, id, force, radius)
	inv.items.PushBack(u)
	inv.statSpawned.Add(1)
	log.Printf("[Inventory] threw explosive %s", id)

	if inv.capacity > 0 && inv.items.Len() > inv.capacity {
		oldest := inv.items.PopFront()
		oldest.Despawn()
		inv.statEvicted.Add(1)
		log.Printf("[Inventory] evicted oldest explosive %s", oldest.ID())
	}

	inv.statLive.Set(float64(inv.items.Len()))
	return u, nil
}

// DetonateMostRecent detonates the last thrown explosive with its own force
func (inv *Inventory) DetonateMostRecent(target Target) error {
	if inv.items.Len() == 0 {
		inv.statRejected.Add(1)
		log.Printf("[Inventory] nothing to detonate")
		return ErrEmpty
	}
	u := inv.items.Back()
	return inv.DetonateMostRecentWithForce(target, u.Force())
}

// DetonateMostRecentWithForce detonates the last thrown explosive with the given force
func (inv *Inventory) DetonateMostRecentWithForce(target Target, force float64) error {
	if inv.items.Len() == 0 {
		inv.statRejected.Add(1)
		log.Printf("[Inventory] nothing to detonate")
		return ErrEmpty
	}

	u := inv.items.PopBack()
	inv.statLive.Set(float64(inv.items.Len()))
	inv.statDetonated.Add(1)
	log.Printf("[Inventory] detonating explosive %s", u.ID())

	if u.Detonate(target, force) {
		inv.statHits.Add(1)
	}
	return nil
}

// SetExplosionForce adjusts the global force by delta and returns the clamped value
func (inv *Inventory) SetExplosionForce(delta int) int {
	v := inv.force.Adjust(delta)
	inv.statForce.Set(float64(v))
	return v
}

// Force returns the shared force value
func (inv *Inventory) Force() *Force { return inv.force }

// Len returns the number of live explosives
func (inv *Inventory) Len() int { return inv.items.Len() }

// Capacity returns the configured capacity
func (inv *Inventory) Capacity() int { return inv.capacity }

// Units returns the live explosives, oldest first
func (inv *Inventory) Units() []*Unit {
	out := make([]*Unit, inv.items.Len())
	for i := range out {
		out[i] = inv.items.At(i)
	}
	return out
}

// Clear despawns every live explosive
func (inv *Inventory) Clear() {
	for inv.items.Len() > 0 {
		inv.items.PopFront().Despawn()
	}
	inv.statLive.Set(0)
}
