package physics

import (
	"github.com/lixenwraith/loco/vmath"
)

//go:generate go tool mockgen -destination=./mocks/body_mock.go -package=mocks . Body

// Body is the host-side entity a Controller moves
// Move must respect world geometry; IsGrounded reports contact after the last Move
type Body interface {
	Position() vmath.Vec3
	Move(delta vmath.Vec3)
	IsGrounded() bool
}
