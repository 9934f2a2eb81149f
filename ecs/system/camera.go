package system

import (
	"github.com/ianarawjo/overworld/common"
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
)

const cameraSmoothness = 8.0

// CameraSystem eases the camera transform toward the player each frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World, dt float64) error {
	if w == nil {
		return nil
	}

	player, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	target, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return nil
	}

	t := cameraSmoothness * dt
	if t > 1 {
		t = 1
	}
	ecs.ForEach2(w, component.CameraComponent, component.TransformComponent,
		func(_ ecs.Entity, _ *component.Camera, tr *component.Transform) {
			tr.X = common.Lerp(tr.X, target.X, t)
			tr.Y = common.Lerp(tr.Y, target.Y, t)
		})
	return nil
}
