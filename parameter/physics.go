package parameter

// Player movement
const (
	// Gravity is the signed vertical acceleration applied while airborne (units/s²)
	Gravity = -9.81

	// GroundFriction is the horizontal deceleration while grounded (units/s²)
	GroundFriction = 3.0

	// AirDrag is the horizontal deceleration while airborne (units/s²)
	AirDrag = 1.0

	// StopThreshold snaps velocity components at or below this magnitude to zero
	StopThreshold = 0.001

	// ClampDecay prevents a decaying component from crossing zero within one tick
	ClampDecay = true
)

// World host
const (
	// FloorHeight is the Y coordinate of the supporting plane
	FloorHeight = 0.0

	// WorldMinX and WorldMaxX bound horizontal displacement
	WorldMinX = -60.0
	WorldMaxX = 60.0

	// ExplosiveGroundFriction stops rolling explosives on the floor (units/s²)
	ExplosiveGroundFriction = 6.0
)
