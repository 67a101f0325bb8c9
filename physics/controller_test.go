package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/loco/status"
	"github.com/lixenwraith/loco/vmath"
)

// stubBody is a point on an infinite floor plane
type stubBody struct {
	pos      vmath.Vec3
	floor    float64
	grounded bool
	moves    []vmath.Vec3
}

func (b *stubBody) Position() vmath.Vec3 { return b.pos }
func (b *stubBody) IsGrounded() bool     { return b.grounded }

func (b *stubBody) Move(delta vmath.Vec3) {
	b.moves = append(b.moves, delta)
	b.pos = b.pos.Add(delta)
	if b.pos[1] <= b.floor {
		b.pos[1] = b.floor
		b.grounded = true
		return
	}
	b.grounded = false
}

func newAirborneBody() *stubBody {
	return &stubBody{pos: vmath.Vec3{0, 10, 0}, floor: math.Inf(-1)}
}

func TestNewController_NilBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewController(nil) should panic")
		}
	}()
	NewController(nil, DefaultTuning(), nil)
}

func TestTick_GravityWhileAirborne(t *testing.T) {
	body := newAirborneBody()
	c := NewController(body, DefaultTuning(), nil)

	prev := c.Velocity()[1]
	for i := 0; i < 10; i++ {
		c.Tick(0.1)
		vy := c.Velocity()[1]
		if vy >= prev {
			t.Fatalf("tick %d: velocity.y = %v, want < %v", i, vy, prev)
		}
		prev = vy
	}

	want := 10 * 0.1 * DefaultTuning().Gravity
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("velocity.y after 10 ticks = %v, want %v", prev, want)
	}
	if c.Grounded() {
		t.Error("controller should not be grounded over a bottomless floor")
	}
}

func TestTick_LandsAndZeroesFall(t *testing.T) {
	body := &stubBody{pos: vmath.Vec3{0, 1, 0}}
	c := NewController(body, DefaultTuning(), nil)

	for i := 0; i < 200 && !c.Grounded(); i++ {
		c.Tick(1.0 / 60)
	}
	if !c.Grounded() {
		t.Fatal("controller never landed")
	}
	if body.pos[1] != 0 {
		t.Errorf("body y = %v, want 0", body.pos[1])
	}

	c.Tick(1.0 / 60)
	if vy := c.Velocity()[1]; vy != 0 {
		t.Errorf("velocity.y on the ground = %v, want 0", vy)
	}
	if last := body.moves[len(body.moves)-1]; last[1] != 0 {
		t.Errorf("grounded move delta.y = %v, want 0", last[1])
	}
}

func TestTick_MovesByVelocityTimesDt(t *testing.T) {
	body := newAirborneBody()
	c := NewController(body, DefaultTuning(), nil)
	c.ApplyImpulse(vmath.Vec3{10, 0, -4})

	c.Tick(0.5)

	g := DefaultTuning().Gravity
	want := vmath.Vec3{5, g * 0.5 * 0.5, -2}
	if got := body.moves[0]; !got.ApproxEqual(want) {
		t.Errorf("move delta = %v, want %v", got, want)
	}

	// Airborne decay uses AirDrag
	wantVel := vmath.Vec3{10 - 0.5, g * 0.5, -4 + 0.5}
	if got := c.Velocity(); !got.ApproxEqual(wantVel) {
		t.Errorf("velocity = %v, want %v", got, wantVel)
	}
}

func TestDecayAxis(t *testing.T) {
	tuning := Tuning{GroundFriction: 3, AirDrag: 1, StopThreshold: 0.001, ClampDecay: true}
	overshoot := tuning
	overshoot.ClampDecay = false

	tests := []struct {
		name     string
		tuning   Tuning
		grounded bool
		v, dt    float64
		want     float64
	}{
		{"zero", tuning, true, 0, 1, 0},
		{"zero no dt", tuning, false, 0, 0, 0},
		{"minuscule positive", tuning, true, 0.0009, 1, 0},
		{"minuscule at threshold", tuning, false, -0.001, 1, 0},
		{"air drag", tuning, false, 5, 0.5, 4.5},
		{"ground friction", tuning, true, 5, 0.5, 3.5},
		{"negative ground friction", tuning, true, -5, 0.5, -3.5},
		{"clamped at zero", tuning, true, 0.5, 1, 0},
		{"clamped negative at zero", tuning, true, -0.5, 1, 0},
		{"overshoot", overshoot, true, 0.5, 1, -2.5},
		{"overshoot negative", overshoot, true, -0.5, 1, 2.5},
		{"zero dt keeps value", tuning, true, 2, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(newAirborneBody(), tt.tuning, nil)
			c.grounded = tt.grounded
			if got := c.DecayAxis(tt.v, tt.dt); got != tt.want {
				t.Errorf("DecayAxis(%v, %v) = %v, want %v", tt.v, tt.dt, got, tt.want)
			}
		})
	}
}

func TestDecayAxis_SnapsResidue(t *testing.T) {
	tuning := Tuning{AirDrag: 1, StopThreshold: 0.001}
	c := NewController(newAirborneBody(), tuning, nil)

	if got := c.DecayAxis(1.0005, 1); got != 0 {
		t.Errorf("DecayAxis residue = %v, want 0", got)
	}
}

func TestApplyImpulse(t *testing.T) {
	stats := status.NewRegistry()
	c := NewController(newAirborneBody(), DefaultTuning(), stats)

	c.ApplyImpulse(vmath.Vec3{1, 2, 3})
	c.ApplyImpulse(vmath.Vec3{1e6, 0, -3})

	want := vmath.Vec3{1e6 + 1, 2, 0}
	if got := c.Velocity(); got != want {
		t.Errorf("velocity = %v, want %v", got, want)
	}
	if n := stats.Counter(status.MovementImpulses).Load(); n != 2 {
		t.Errorf("impulse counter = %d, want 2", n)
	}
}

func TestReset(t *testing.T) {
	body := &stubBody{}
	c := NewController(body, DefaultTuning(), nil)
	c.Tick(0.1)
	c.ApplyImpulse(vmath.Vec3{3, 3, 3})

	c.Reset()

	if c.Velocity() != (vmath.Vec3{}) || c.Grounded() {
		t.Errorf("after Reset velocity = %v grounded = %v", c.Velocity(), c.Grounded())
	}
}
