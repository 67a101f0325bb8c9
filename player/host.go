package player

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/loco/explosive"
	"github.com/lixenwraith/loco/physics"
	"github.com/lixenwraith/loco/vmath"
)

// World is the host a player lives in
type World interface {
	explosive.World

	// SpawnPlayer creates the player entity
	SpawnPlayer(origin vmath.Vec3) uuid.UUID
	// Body binds a movement body to an entity
	Body(id uuid.UUID) physics.Body
	// Launch sets a thrown explosive's initial velocity
	Launch(id uuid.UUID, velocity vmath.Vec3) bool
	// Place teleports an entity and clears its velocity
	Place(id uuid.UUID, pos vmath.Vec3) bool
}
