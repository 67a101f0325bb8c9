package sim

import (
	"context"
	"sync"
	"testing"

	"github.com/lixenwraith/loco/config"
	"github.com/lixenwraith/loco/event"
	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/vmath"
	"github.com/lixenwraith/loco/world"
)

const dt = 1.0 / 60

func TestScene_EventsAppliedOnTick(t *testing.T) {
	ctx := context.Background()
	s := NewScene(config.Default(), nil)

	s.Push(event.EventThrow)
	s.Push(event.EventForceIncrease)
	if s.World().Count(world.KindExplosive) != 0 {
		t.Fatal("events applied before Tick")
	}
	if s.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", s.Pending())
	}

	s.Tick(ctx, dt)

	if n := s.World().Count(world.KindExplosive); n != 1 {
		t.Errorf("explosives = %d, want 1", n)
	}
	if f := s.Player().Inventory().Force().Value(); f != 6 {
		t.Errorf("force = %d, want 6", f)
	}
	if got := s.Stats().Counter(status.SceneEvents).Load(); got != 2 {
		t.Errorf("scene.events = %d, want 2", got)
	}
	if got := s.Stats().Counter(status.SceneTicks).Load(); got != 1 {
		t.Errorf("scene.ticks = %d, want 1", got)
	}
}

func TestScene_RocketJump(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Explosive.Force = 10
	cfg.Explosive.SpawnOffset = [3]float64{1, 0, 0}
	cfg.Explosive.ThrowVelocity = [3]float64{}
	s := NewScene(cfg, nil)

	// Charge placed at the feet
	s.Push(event.EventThrow)
	for i := 0; i < 30; i++ {
		s.Tick(ctx, dt)
	}
	if !s.Player().Controller().Grounded() {
		t.Fatal("player should be grounded before the jump")
	}

	s.Player().Controller().ApplyImpulse(vmath.Vec3{0, 5, 0})
	for i := 0; i < 10; i++ {
		s.Tick(ctx, dt)
	}
	before := s.Player().Controller().Position()
	vyBefore := s.Player().Controller().Velocity()[1]

	s.Push(event.EventDetonate)
	s.Tick(ctx, dt)

	v := s.Player().Controller().Velocity()
	if v[1] <= vyBefore {
		t.Errorf("velocity.y = %v, want boosted above %v", v[1], vyBefore)
	}
	if v[0] >= 0 {
		t.Errorf("velocity.x = %v, want pushed toward -X", v[0])
	}

	peak := 0.0
	for i := 0; i < 600; i++ {
		s.Tick(ctx, dt)
		if y := s.Player().Controller().Position()[1]; y > peak {
			peak = y
		}
	}

	if peak <= before[1] {
		t.Errorf("peak = %v, want above pre-detonation height %v", peak, before[1])
	}
	pos := s.Player().Controller().Position()
	if pos[1] != cfg.Sandbox.Floor {
		t.Errorf("final y = %v, want floor %v", pos[1], cfg.Sandbox.Floor)
	}
	if pos[0] >= before[0] {
		t.Errorf("final x = %v, want left of %v", pos[0], before[0])
	}
	if v := s.Player().Controller().Velocity(); v[0] != 0 {
		t.Errorf("velocity.x = %v, want 0 after friction", v[0])
	}
}

func TestScene_ConcurrentPush(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Explosive.Capacity = -1
	s := NewScene(cfg, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				s.Push(event.EventThrow)
			}
		}()
	}
	wg.Wait()
	s.Tick(ctx, dt)

	if n := s.World().Count(world.KindExplosive); n != 32 {
		t.Errorf("explosives = %d, want 32", n)
	}
}

func TestScene_Reset(t *testing.T) {
	ctx := context.Background()
	s := NewScene(config.Default(), nil)

	s.Push(event.EventThrow)
	s.Push(event.EventThrow)
	s.Push(event.EventDetonate)
	s.Tick(ctx, dt)
	s.Push(event.EventReset)
	s.Tick(ctx, dt)

	if n := s.World().Count(world.KindExplosive); n != 0 {
		t.Errorf("explosives = %d, want 0", n)
	}
	if s.Player().Inventory().Len() != 0 {
		t.Errorf("inventory Len() = %d, want 0", s.Player().Inventory().Len())
	}
}

func TestScene_PushEventRepeats(t *testing.T) {
	s := NewScene(config.Default(), nil)
	s.PushEvent(event.Event{Type: event.EventForceDecrease, Amount: 4})
	s.Tick(context.Background(), dt)

	if f := s.Player().Inventory().Force().Value(); f != 1 {
		t.Errorf("force = %d, want 1", f)
	}
	if d := s.Player().Display().Value(); d != 1 {
		t.Errorf("display = %d, want 1", d)
	}
}
