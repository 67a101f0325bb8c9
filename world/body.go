package world

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/loco/physics"
	"github.com/lixenwraith/loco/vmath"
)

// body adapts one hosted entity to physics.Body
type body struct {
	w  *World
	id uuid.UUID
}

// Body returns a physics.Body bound to id
// Panics if id is not hosted
func (w *World) Body(id uuid.UUID) physics.Body {
	if _, ok := w.entities[id]; !ok {
		panic("world: body for unknown entity " + id.String())
	}
	return &body{w: w, id: id}
}

func (b *body) Position() vmath.Vec3 {
	pos, ok := b.w.Position(b.id)
	if !ok {
		panic("world: body entity destroyed " + b.id.String())
	}
	return pos
}

func (b *body) Move(delta vmath.Vec3) {
	if !b.w.Move(b.id, delta) {
		panic("world: body entity destroyed " + b.id.String())
	}
}

func (b *body) IsGrounded() bool {
	return b.w.Grounded(b.id)
}
