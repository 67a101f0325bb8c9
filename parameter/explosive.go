package parameter

// Explosive inventory
const (
	// ExplosiveCapacity is the number of live explosives a player may own
	// 0 disables throwing, negative is unlimited
	ExplosiveCapacity = 3

	// ExplosionRadius is the default blast radius (units)
	ExplosionRadius = 5.0

	// ExplosionForceInitial is the starting global explosion force
	ExplosionForceInitial = 5

	// ExplosionForceMin and ExplosionForceMax bound the global explosion force
	ExplosionForceMin = -50
	ExplosionForceMax = 50

	// ExplosionForceStep is the force change per increase/decrease action
	ExplosionForceStep = 1

	// ForceAtDetonation applies the current global force at detonation instead of the throw-time force
	ForceAtDetonation = true
)

// Throw geometry, expressed for a player facing +X
var (
	// SpawnOffset is the hand position relative to the player origin
	SpawnOffset = [3]float64{0.5, 1.2, 0}

	// ThrowVelocity is the initial velocity of a thrown explosive
	ThrowVelocity = [3]float64{6, 4, 0}
)
