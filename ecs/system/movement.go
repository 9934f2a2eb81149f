package system

import (
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

// MovementSystem integrates velocity into position: pixels per second scaled
// by the frame's elapsed time.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World, dt float64) error {
	if w == nil {
		return nil
	}
	ecs.ForEach2(w, component.VelocityComponent, component.TransformComponent,
		func(_ ecs.Entity, vel *component.Velocity, tr *component.Transform) {
			tr.X += vel.X * dt
			tr.Y += vel.Y * dt
		})
	return nil
}
