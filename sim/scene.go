package sim

import (
	"context"
	"sync/atomic"

	"github.com/lixenwraith/loco/config"
	"github.com/lixenwraith/loco/event"
	"github.com/lixenwraith/loco/player"
	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/world"
)

// Scene wires a world, one player and the input event pipeline
// Push may be called from any goroutine; everything else belongs to the tick loop
type Scene struct {
	cfg    config.Config
	stats  *status.Registry
	world  *world.World
	player *player.Player
	queue  *event.Queue
	router *event.Router

	statTicks  *atomic.Int64
	statEvents *atomic.Int64
}

// NewScene builds a scene from a validated config
func NewScene(cfg config.Config, stats *status.Registry) *Scene {
	if stats == nil {
		stats = status.NewRegistry()
	}

	w := world.New(world.Bounds{
		Floor: cfg.Sandbox.Floor,
		MinX:  cfg.Sandbox.MinX,
		MaxX:  cfg.Sandbox.MaxX,
	}, cfg.Movement.Gravity)
	p := player.New(w, cfg, stats)

	q := event.NewQueue(stats)
	r := event.NewRouter(q)
	r.Register(p)

	return &Scene{
		cfg:        cfg,
		stats:      stats,
		world:      w,
		player:     p,
		queue:      q,
		router:     r,
		statTicks:  stats.Counter(status.SceneTicks),
		statEvents: stats.Counter(status.SceneEvents),
	}
}

// Push enqueues an action for the next tick
func (s *Scene) Push(t event.EventType) {
	s.queue.Push(event.Event{Type: t})
}

// PushEvent enqueues a fully specified event
func (s *Scene) PushEvent(ev event.Event) {
	s.queue.Push(ev)
}

// Tick dispatches pending events, then advances the player and the world by dt seconds
func (s *Scene) Tick(ctx context.Context, dt float64) {
	n := s.router.DispatchAll(ctx)
	s.statEvents.Add(int64(n))

	s.player.Tick(dt)
	s.world.Step(dt)
	s.statTicks.Add(1)
}

// Config returns the scene configuration
func (s *Scene) Config() config.Config { return s.cfg }

// Stats returns the metrics registry
func (s *Scene) Stats() *status.Registry { return s.stats }

// World returns the host world
func (s *Scene) World() *world.World { return s.world }

// Player returns the player
func (s *Scene) Player() *player.Player { return s.player }

// Pending returns the number of queued events
func (s *Scene) Pending() int { return s.queue.Len() }
