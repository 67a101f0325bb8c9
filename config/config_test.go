package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/loco/asset"
	"github.com/lixenwraith/loco/parameter"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedConfigMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(asset.DefaultConfig))
	if err != nil {
		t.Fatalf("Parse(asset.DefaultConfig) error: %v", err)
	}
	def := Default()
	if cfg.Movement != def.Movement {
		t.Errorf("Movement = %+v, want %+v", cfg.Movement, def.Movement)
	}
	if cfg.Explosive != def.Explosive {
		t.Errorf("Explosive = %+v, want %+v", cfg.Explosive, def.Explosive)
	}
	if cfg.Sandbox != def.Sandbox {
		t.Errorf("Sandbox = %+v, want %+v", cfg.Sandbox, def.Sandbox)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := `
[movement]
air_drag = 0.5
clamp_decay = false

[explosive]
capacity = -1

[keys]
x = "detonate"
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Movement.AirDrag != 0.5 {
		t.Errorf("AirDrag = %v, want 0.5", cfg.Movement.AirDrag)
	}
	if cfg.Movement.ClampDecay {
		t.Error("ClampDecay = true, want false")
	}
	if cfg.Movement.GroundFriction != parameter.GroundFriction {
		t.Errorf("GroundFriction = %v, want default %v", cfg.Movement.GroundFriction, parameter.GroundFriction)
	}
	if cfg.Explosive.Capacity != -1 {
		t.Errorf("Capacity = %d, want -1", cfg.Explosive.Capacity)
	}
	if cfg.Explosive.Radius != parameter.ExplosionRadius {
		t.Errorf("Radius = %v, want default %v", cfg.Explosive.Radius, parameter.ExplosionRadius)
	}
	if got := cfg.Keys["x"]; got != "detonate" {
		t.Errorf("Keys[x] = %q, want detonate", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"negative friction", "[movement]\nground_friction = -1", "ground_friction"},
		{"negative drag", "[movement]\nair_drag = -0.1", "air_drag"},
		{"negative threshold", "[movement]\nstop_threshold = -1", "stop_threshold"},
		{"zero radius", "[explosive]\nradius = 0", "radius"},
		{"inverted bounds", "[explosive]\nforce_min = 10\nforce_max = -10", "force_min"},
		{"force out of bounds", "[explosive]\nforce = 60", "explosive.force"},
		{"zero step", "[explosive]\nforce_step = 0", "force_step"},
		{"zero tick rate", "[sandbox]\ntick_rate = 0", "tick_rate"},
		{"inverted x bounds", "[sandbox]\nmin_x = 5\nmax_x = 5", "min_x"},
		{"unknown key", "[movement]\ngravty = 1", "gravty"},
		{"bad syntax", "[movement\n", "parse"},
		{"wrong type", "[explosive]\ncapacity = \"three\"", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.data)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Movement.AirDrag = -1
	cfg.Sandbox.TickRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"air_drag", "tick_rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loco.toml")
	if err := os.WriteFile(path, []byte("[sandbox]\ntick_rate = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Sandbox.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.Sandbox.TickRate)
	}
	if got, want := cfg.Sandbox.DT(), 1.0/30; got != want {
		t.Errorf("DT() = %v, want %v", got, want)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestMovementTuning(t *testing.T) {
	m := Default().Movement
	m.ClampDecay = false
	tu := m.Tuning()

	if tu.Gravity != m.Gravity || tu.GroundFriction != m.GroundFriction || tu.AirDrag != m.AirDrag {
		t.Errorf("Tuning() = %+v, want fields from %+v", tu, m)
	}
	if tu.StopThreshold != m.StopThreshold || tu.ClampDecay {
		t.Errorf("Tuning() = %+v, want threshold %v clamp false", tu, m.StopThreshold)
	}
}

func TestExplosiveVectors(t *testing.T) {
	e := Default().Explosive
	if got := e.Offset(); got.X() != e.SpawnOffset[0] || got.Y() != e.SpawnOffset[1] {
		t.Errorf("Offset() = %v, want %v", got, e.SpawnOffset)
	}
	if got := e.Throw(); got.X() != e.ThrowVelocity[0] || got.Y() != e.ThrowVelocity[1] {
		t.Errorf("Throw() = %v, want %v", got, e.ThrowVelocity)
	}
}
