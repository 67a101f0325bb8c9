package player

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/loco/config"
	"github.com/lixenwraith/loco/event"
	"github.com/lixenwraith/loco/explosive"
	"github.com/lixenwraith/loco/physics"
	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/vmath"
)

// Facing is the horizontal direction the player throws toward
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player owns a movement controller and an explosive inventory bound to one host entity
type Player struct {
	world  World
	id     uuid.UUID
	spawn  vmath.Vec3
	facing Facing
	cfg    config.Explosive

	controller *physics.Controller
	inventory  *explosive.Inventory
	display    *Display
}

// New spawns the player entity at the floor origin and wires its controller and inventory
func New(world World, cfg config.Config, stats *status.Registry) *Player {
	if world == nil {
		panic("player: requires a world")
	}
	if stats == nil {
		stats = status.NewRegistry()
	}

	spawn := vmath.Vec3{0, cfg.Sandbox.Floor, 0}
	id := world.SpawnPlayer(spawn)

	force := explosive.NewForce(cfg.Explosive.Force, cfg.Explosive.ForceMin, cfg.Explosive.ForceMax)
	display := &Display{}
	force.Subscribe(display)
	// Initial refresh, the force has not changed yet
	display.ForceChanged(force.Value())

	return &Player{
		world:      world,
		id:         id,
		spawn:      spawn,
		facing:     FacingRight,
		cfg:        cfg.Explosive,
		controller: physics.NewController(world.Body(id), cfg.Movement.Tuning(), stats),
		inventory:  explosive.NewInventory(world, cfg.Explosive.Capacity, force, stats),
		display:    display,
	}
}

// ID returns the host entity id
func (p *Player) ID() uuid.UUID { return p.id }

// Controller returns the movement controller
func (p *Player) Controller() *physics.Controller { return p.controller }

// Inventory returns the explosive inventory
func (p *Player) Inventory() *explosive.Inventory { return p.inventory }

// Display returns the force display
func (p *Player) Display() *Display { return p.display }

// Facing returns the throw direction
func (p *Player) Facing() Facing { return p.facing }

// Face turns the player
func (p *Player) Face(dir Facing) {
	if dir != FacingLeft {
		dir = FacingRight
	}
	p.facing = dir
}

// Throw spawns an explosive at the hand and launches it forward
func (p *Player) Throw() error {
	left := p.facing == FacingLeft
	origin := p.controller.Position().Add(vmath.MirrorX(p.cfg.Offset(), left))

	u, err := p.inventory.Spawn(origin, float64(p.inventory.Force().Value()), p.cfg.Radius)
	if err != nil {
		return err
	}
	p.world.Launch(u.ID(), vmath.MirrorX(p.cfg.Throw(), left))
	return nil
}

// Detonate blows up the most recently thrown explosive against the player
func (p *Player) Detonate() error {
	if p.cfg.ForceAtDetonation {
		return p.inventory.DetonateMostRecentWithForce(p.controller, float64(p.inventory.Force().Value()))
	}
	return p.inventory.DetonateMostRecent(p.controller)
}

// AdjustForce changes the global explosion force, returns the clamped value
func (p *Player) AdjustForce(delta int) int {
	return p.inventory.SetExplosionForce(delta)
}

// Tick advances movement by dt seconds
func (p *Player) Tick(dt float64) {
	p.controller.Tick(dt)
}

// Reset despawns all explosives and returns the player to spawn at rest
// The global force is kept
func (p *Player) Reset() {
	p.inventory.Clear()
	p.controller.Reset()
	p.world.Place(p.id, p.spawn)
	p.facing = FacingRight
	log.Printf("[Player] reset to %v", p.spawn)
}

// HandleEvent implements event.Handler
func (p *Player) HandleEvent(_ context.Context, ev event.Event) {
	switch ev.Type {
	case event.EventThrow:
		for range ev.Steps() {
			if err := p.Throw(); err != nil {
				logRejected("throw", err)
				return
			}
		}
	case event.EventDetonate:
		for range ev.Steps() {
			if err := p.Detonate(); err != nil {
				logRejected("detonate", err)
				return
			}
		}
	case event.EventForceIncrease:
		p.AdjustForce(p.forceDelta(ev.Steps()))
	case event.EventForceDecrease:
		p.AdjustForce(-p.forceDelta(ev.Steps()))
	case event.EventFaceLeft:
		p.Face(FacingLeft)
	case event.EventFaceRight:
		p.Face(FacingRight)
	case event.EventReset:
		p.Reset()
	}
}

// EventTypes implements event.Handler
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventThrow,
		event.EventDetonate,
		event.EventForceIncrease,
		event.EventForceDecrease,
		event.EventFaceLeft,
		event.EventFaceRight,
		event.EventReset,
	}
}

// forceDelta returns ForceStep*steps, saturated just past the force range
// Any larger delta clamps to the same bound
func (p *Player) forceDelta(steps int) int {
	lo, hi := p.inventory.Force().Bounds()
	limit := hi - lo + 1
	if steps > limit/p.cfg.ForceStep {
		return limit
	}
	return p.cfg.ForceStep * steps
}

func logRejected(action string, err error) {
	switch {
	case errors.Is(err, explosive.ErrDisabled), errors.Is(err, explosive.ErrEmpty):
		log.Printf("[Player] %s ignored: %v", action, err)
	default:
		log.Printf("[Player] %s failed: %v", action, err)
	}
}
