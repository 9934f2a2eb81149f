package entity

import (
	"github.com/ianarawjo/overworld/ecs"
	"github.com/ianarawjo/overworld/ecs/component"
	"github.com/ianarawjo/overworld/prefabs"
)

// NewCamera spawns the camera from prefabs/camera.yaml.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, err
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{Zoom: zoom}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
