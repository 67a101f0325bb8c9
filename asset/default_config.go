package asset

// DefaultConfig is the sample sandbox configuration, equal to the built-in defaults
// Written by loco-sandbox -dump-config as a starting point for tuning
const DefaultConfig = `
# === Player movement ===
[movement]
# signed vertical acceleration while airborne (units/s²)
gravity = -9.81
# horizontal deceleration while grounded (units/s²)
ground_friction = 3.0
# horizontal deceleration while airborne (units/s²)
air_drag = 1.0
# components at or below this magnitude snap to zero
stop_threshold = 0.001
# false lets a decaying component overshoot past zero within one tick
clamp_decay = true


# === Explosives ===
[explosive]
# live explosives per player; 0 disables throwing, negative is unlimited
capacity = 3
radius = 5.0
force = 5
force_min = -50
force_max = 50
force_step = 1
# true detonates with the current global force, false with the force at throw time
force_at_detonation = true
# relative to the player origin, facing +X
spawn_offset = [0.5, 1.2, 0.0]
throw_velocity = [6.0, 4.0, 0.0]


# === Sandbox host ===
[sandbox]
tick_rate = 60
floor = 0.0
min_x = -60.0
max_x = 60.0


# === Key overrides ===
# key = "action"; keys are single characters, "space", or tcell names ("enter", "f1")
# actions: throw, detonate, force_up, force_down, face_left, face_right, reset, quit, none
[keys]
# "x" = "detonate"
# "f1" = "reset"
`
