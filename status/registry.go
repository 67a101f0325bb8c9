package status

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	MovementImpulses = "movement.impulses"
	MovementSpeed    = "movement.speed"

	ExplosiveSpawned   = "explosive.spawned"
	ExplosiveEvicted   = "explosive.evicted"
	ExplosiveDetonated = "explosive.detonated"
	ExplosiveHits      = "explosive.hits"
	ExplosiveRejected  = "explosive.rejected"
	ExplosiveLive      = "explosive.live"
	ExplosiveForce     = "explosive.force"

	SceneTicks  = "scene.ticks"
	SceneEvents = "scene.events"

	EventsDropped = "events.dropped"
)

// Gauge is a float64 metric stored as IEEE-754 bits, zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Get() float64  { return math.Float64frombits(g.bits.Load()) }

// metricSet lazily allocates one metric per key
type metricSet[T any] struct {
	m sync.Map // string -> *T
}

func (s *metricSet[T]) get(key string) *T {
	if v, ok := s.m.Load(key); ok {
		return v.(*T)
	}
	v, _ := s.m.LoadOrStore(key, new(T))
	return v.(*T)
}

// each visits metrics in key order
func (s *metricSet[T]) each(fn func(key string, v *T)) {
	var keys []string
	s.m.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := s.m.Load(k)
		fn(k, v.(*T))
	}
}

// Registry holds the simulation counters and gauges
// Components cache pointers at construction; tick code writes the atomics directly
type Registry struct {
	counters metricSet[atomic.Int64]
	gauges   metricSet[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Counter returns the counter for key, creating it if absent
func (r *Registry) Counter(key string) *atomic.Int64 {
	return r.counters.get(key)
}

// Gauge returns the gauge for key, creating it if absent
func (r *Registry) Gauge(key string) *Gauge {
	return r.gauges.get(key)
}

// Snapshot copies every metric into a plain map, counters converted to float64
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64)
	r.counters.each(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.gauges.each(func(key string, v *Gauge) {
		out[key] = v.Get()
	})
	return out
}

// Keys lists registered metric names in order
func (r *Registry) Keys() []string {
	var keys []string
	r.counters.each(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	r.gauges.each(func(key string, _ *Gauge) { keys = append(keys, key) })
	slices.Sort(keys)
	return keys
}
