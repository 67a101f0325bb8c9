package explosive

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/loco/vmath"
)

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . World,Target,ForceObserver

// World creates, locates and destroys explosive entities on the host
type World interface {
	Instantiate(origin vmath.Vec3) uuid.UUID
	Position(id uuid.UUID) (vmath.Vec3, bool)
	Destroy(id uuid.UUID)
}

// Target is anything a blast can push
type Target interface {
	Position() vmath.Vec3
	ApplyImpulse(p vmath.Vec3)
}

// ForceObserver is notified after the global explosion force changes
type ForceObserver interface {
	ForceChanged(value int)
}
